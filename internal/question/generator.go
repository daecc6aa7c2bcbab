package question

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/skillcheck/skillcheck/internal/catalog"
	"github.com/skillcheck/skillcheck/internal/llm"
)

// imageQuestionPrefix frames an image question for the learner; the raw
// description travels separately in MediaDescription for rendering.
const imageQuestionPrefix = "Look at the image and answer the following question:\n\n"

// LLMGenerator implements Generator against an llm.Provider, falling back
// to the static question table whenever the backend fails or returns an
// unusable shape.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	logger   *slog.Logger
}

var _ Generator = (*LLMGenerator)(nil)

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{
		provider: provider,
		config:   cfg,
		logger:   slog.Default().With("component", "question-generator"),
	}
}

// Generate produces a question of the requested modality. It never fails:
// a backend or validation failure yields the level's fallback content.
func (g *LLMGenerator) Generate(ctx context.Context, skill catalog.Skill, level catalog.Level, qtype catalog.Modality) *Question {
	ctx = llm.WithPurpose(ctx, "question-gen")
	g.logger.Info("generating question", "skill", skill, "level", level, "type", qtype)

	switch qtype {
	case catalog.ModalityText:
		return g.generateText(ctx, skill, level)
	case catalog.ModalityAudio:
		return g.generateAudio(ctx, skill, level)
	case catalog.ModalityImage:
		return g.generateImage(ctx, skill, level)
	default:
		g.logger.Error("unsupported question type", "type", qtype)
		fb := fallbackFor(skill, level)
		return &Question{
			Content:        fb.Question,
			ExpectedAnswer: fb.ExpectedAnswer,
			Type:           catalog.ModalityText,
		}
	}
}

func (g *LLMGenerator) generateText(ctx context.Context, skill catalog.Skill, level catalog.Level) *Question {
	var out struct {
		Question       string `json:"question"`
		ExpectedAnswer string `json:"expected_answer"`
	}

	err := g.complete(ctx, buildTextPrompt(skill, level), TextQuestionSchema, &out)
	if err == nil && out.Question != "" && out.ExpectedAnswer != "" {
		return &Question{
			Content:        out.Question,
			ExpectedAnswer: out.ExpectedAnswer,
			Type:           catalog.ModalityText,
		}
	}
	g.logger.Error("text question generation failed, using fallback", "error", err)

	fb := fallbackFor(skill, level)
	return &Question{
		Content:        fb.Question,
		ExpectedAnswer: fb.ExpectedAnswer,
		Type:           catalog.ModalityText,
	}
}

func (g *LLMGenerator) generateAudio(ctx context.Context, skill catalog.Skill, level catalog.Level) *Question {
	var out struct {
		AudioScenario  string `json:"audio_scenario"`
		Question       string `json:"question"`
		ExpectedAnswer string `json:"expected_answer"`
	}

	err := g.complete(ctx, buildAudioPrompt(skill, level), AudioQuestionSchema, &out)
	if err == nil && out.AudioScenario != "" && out.Question != "" && out.ExpectedAnswer != "" {
		return &Question{
			Content:        fmt.Sprintf("Audio Scenario: %s\n\nQuestion: %s", out.AudioScenario, out.Question),
			ExpectedAnswer: out.ExpectedAnswer,
			Type:           catalog.ModalityAudio,
		}
	}
	g.logger.Error("audio question generation failed, using fallback", "error", err)

	fb := fallbackFor(skill, level)
	return &Question{
		Content:        fmt.Sprintf("Audio Scenario: %s\n\nQuestion: %s", fallbackAudioScenario(skill), fb.Question),
		ExpectedAnswer: fb.ExpectedAnswer,
		Type:           catalog.ModalityAudio,
	}
}

func (g *LLMGenerator) generateImage(ctx context.Context, skill catalog.Skill, level catalog.Level) *Question {
	var out struct {
		ImageDescription string `json:"image_description"`
		Question         string `json:"question"`
		ExpectedAnswer   string `json:"expected_answer"`
	}

	err := g.complete(ctx, buildImagePrompt(skill, level), ImageQuestionSchema, &out)
	if err == nil && out.ImageDescription != "" && out.Question != "" && out.ExpectedAnswer != "" {
		return &Question{
			Content:          imageQuestionPrefix + out.Question,
			ExpectedAnswer:   out.ExpectedAnswer,
			Type:             catalog.ModalityImage,
			MediaDescription: out.ImageDescription,
		}
	}
	g.logger.Error("image question generation failed, using fallback", "error", err)

	fb := fallbackFor(skill, level)
	return &Question{
		Content:          "Look at the image and answer: " + fb.Question,
		ExpectedAnswer:   fb.ExpectedAnswer,
		Type:             catalog.ModalityImage,
		MediaDescription: fallbackImageDescription(skill),
	}
}

// complete runs one backend call and decodes the JSON object into out.
// Shape problems surface as errors so every caller can fall back uniformly.
func (g *LLMGenerator) complete(ctx context.Context, prompt string, schema *llm.Schema, out any) error {
	resp, err := g.provider.Generate(ctx, llm.Request{
		Prompt:      prompt,
		Schema:      schema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return fmt.Errorf("decode question payload: %w", err)
	}
	return nil
}
