package evaluate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/skillcheck/skillcheck/internal/catalog"
	"github.com/skillcheck/skillcheck/internal/llm"
	"github.com/skillcheck/skillcheck/internal/media"
)

const (
	defaultEvalMaxTokens   = 512
	defaultEvalTemperature = 0.3

	unavailableExplanation = "Evaluation service is unavailable and fallback grading is disabled."
)

// Config tunes the LLM grading call.
type Config struct {
	MaxTokens         int
	Temperature       float64
	HeuristicFallback bool
}

func DefaultConfig() Config {
	return Config{
		MaxTokens:         defaultEvalMaxTokens,
		Temperature:       defaultEvalTemperature,
		HeuristicFallback: true,
	}
}

// LLMEvaluator grades answers with a language model, normalizing media
// questions and answers to text first. When the model path fails it falls
// back to keyword grading, so Evaluate never fails.
type LLMEvaluator struct {
	provider    llm.Provider
	transcriber media.Transcriber
	captioner   media.Captioner
	heuristic   HeuristicGrader
	config      Config
	logger      *slog.Logger
}

func NewLLMEvaluator(provider llm.Provider, transcriber media.Transcriber, captioner media.Captioner, cfg Config, logger *slog.Logger) *LLMEvaluator {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultEvalMaxTokens
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaultEvalTemperature
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LLMEvaluator{
		provider:    provider,
		transcriber: transcriber,
		captioner:   captioner,
		config:      cfg,
		logger:      logger,
	}
}

func (e *LLMEvaluator) Evaluate(ctx context.Context, in Input) Evaluation {
	question := e.normalizeQuestion(ctx, in)
	answer := e.normalizeAnswer(ctx, in)

	normalized := in
	normalized.Question = question
	normalized.Answer = answer

	if verdict, ok := e.gradeWithModel(ctx, normalized); ok {
		return verdict
	}

	if !e.config.HeuristicFallback {
		return Evaluation{IsCorrect: false, Explanation: unavailableExplanation}
	}
	e.logger.Info("falling back to keyword grading")
	return e.heuristic.Evaluate(ctx, normalized)
}

// normalizeQuestion appends the audio transcript to audio questions so the
// grading model sees the full stimulus. Image question text already embeds
// the scene description.
func (e *LLMEvaluator) normalizeQuestion(ctx context.Context, in Input) string {
	if in.QuestionType == catalog.ModalityAudio && in.AudioRef != "" && e.transcriber != nil {
		transcript := e.transcriber.Transcribe(ctx, in.AudioRef)
		return in.Question + "\n\nAudio Transcript: " + transcript
	}
	return in.Question
}

// normalizeAnswer resolves media answers to labelled text. An empty answer
// becomes an explicit marker so the grader has something to judge.
func (e *LLMEvaluator) normalizeAnswer(ctx context.Context, in Input) string {
	switch in.AnswerType {
	case catalog.ModalityAudio:
		if e.transcriber != nil && in.AnswerAudioRef != "" {
			return "Audio Answer Transcript: " + e.transcriber.Transcribe(ctx, in.AnswerAudioRef)
		}
	case catalog.ModalityImage:
		if e.captioner != nil && in.AnswerImageRef != "" {
			return "Image Answer Description: " + e.captioner.Caption(ctx, in.AnswerImageRef)
		}
	}
	if strings.TrimSpace(in.Answer) == "" {
		return "No answer provided"
	}
	return in.Answer
}

func (e *LLMEvaluator) gradeWithModel(ctx context.Context, in Input) (Evaluation, bool) {
	if e.provider == nil {
		return Evaluation{}, false
	}

	ctx = llm.WithPurpose(ctx, "answer-eval")
	resp, err := e.provider.Generate(ctx, llm.Request{
		Prompt:      buildGradingPrompt(in),
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	})
	if err != nil {
		e.logger.Warn("model evaluation failed", "error", err)
		return Evaluation{}, false
	}

	verdict, err := parseVerdict(resp.Content)
	if err != nil {
		e.logger.Warn("unparseable evaluation response", "error", err)
		return Evaluation{}, false
	}
	return verdict, true
}

// parseVerdict decodes the model's verdict. Both is_correct and explanation
// must be present; is_correct may arrive as a bool or as the strings
// "true"/"false" in any case.
func parseVerdict(raw json.RawMessage) (Evaluation, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Evaluation{}, fmt.Errorf("decode verdict: %w", err)
	}

	correctRaw, ok := fields["is_correct"]
	if !ok {
		return Evaluation{}, fmt.Errorf("verdict missing is_correct")
	}
	correct, err := coerceBool(correctRaw)
	if err != nil {
		return Evaluation{}, err
	}

	expRaw, ok := fields["explanation"]
	if !ok {
		return Evaluation{}, fmt.Errorf("verdict missing explanation")
	}
	var explanation string
	if err := json.Unmarshal(expRaw, &explanation); err != nil {
		return Evaluation{}, fmt.Errorf("decode explanation: %w", err)
	}

	return Evaluation{IsCorrect: correct, Explanation: explanation}, nil
}

func coerceBool(raw json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, fmt.Errorf("is_correct is neither bool nor true/false string")
}

var _ Evaluator = (*LLMEvaluator)(nil)
