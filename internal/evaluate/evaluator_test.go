package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/skillcheck/skillcheck/internal/catalog"
	"github.com/skillcheck/skillcheck/internal/llm"
)

type fixedTranscriber struct{ text string }

func (f fixedTranscriber) Transcribe(ctx context.Context, ref string) string { return f.text }

type fixedCaptioner struct{ text string }

func (f fixedCaptioner) Caption(ctx context.Context, ref string) string { return f.text }

func newTestEvaluator(mock *llm.MockProvider) *LLMEvaluator {
	return NewLLMEvaluator(mock,
		fixedTranscriber{text: "transcript text"},
		fixedCaptioner{text: "caption text"},
		DefaultConfig(), nil)
}

func TestEvaluateCorrectVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct": true, "explanation": "Covers the main ideas."}`),
	})
	e := newTestEvaluator(mock)

	ev := e.Evaluate(context.Background(), Input{
		Question:       "What is empathy?",
		ExpectedAnswer: "Understanding others' feelings.",
		Answer:         "Putting yourself in someone else's shoes.",
		QuestionType:   catalog.ModalityText,
		AnswerType:     catalog.ModalityText,
	})

	if !ev.IsCorrect {
		t.Errorf("expected correct verdict, got %+v", ev)
	}
	if ev.Explanation != "Covers the main ideas." {
		t.Errorf("Explanation = %q", ev.Explanation)
	}
}

func TestEvaluateStringCoercion(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		want bool
	}{
		{`{"is_correct": "true", "explanation": "x"}`, true},
		{`{"is_correct": "False", "explanation": "x"}`, false},
		{`{"is_correct": "TRUE", "explanation": "x"}`, true},
	} {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tc.raw)})
		e := newTestEvaluator(mock)
		// Answer shares no long keywords with the expected answer, so a
		// heuristic fallback would disagree with the coerced verdict.
		ev := e.Evaluate(context.Background(), Input{
			ExpectedAnswer: "precision accountability",
			Answer:         "something else entirely",
			QuestionType:   catalog.ModalityText,
			AnswerType:     catalog.ModalityText,
		})
		if ev.IsCorrect != tc.want {
			t.Errorf("raw %s: IsCorrect = %v, want %v", tc.raw, ev.IsCorrect, tc.want)
		}
	}
}

func TestEvaluateUnusableVerdictFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct": "maybe", "explanation": "x"}`),
	})
	e := newTestEvaluator(mock)

	ev := e.Evaluate(context.Background(), Input{
		ExpectedAnswer: "listening empathy",
		Answer:         "active listening and empathy",
		QuestionType:   catalog.ModalityText,
		AnswerType:     catalog.ModalityText,
	})

	if !ev.IsCorrect {
		t.Errorf("heuristic fallback should accept, got %+v", ev)
	}
}

func TestEvaluateProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("down")})
	e := newTestEvaluator(mock)

	ev := e.Evaluate(context.Background(), Input{
		ExpectedAnswer: "delegation clarity",
		Answer:         "no relevant content",
		QuestionType:   catalog.ModalityText,
		AnswerType:     catalog.ModalityText,
	})

	if ev.IsCorrect {
		t.Errorf("heuristic fallback should reject, got %+v", ev)
	}
}

func TestEvaluateFallbackDisabled(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("down")})
	cfg := DefaultConfig()
	cfg.HeuristicFallback = false
	e := NewLLMEvaluator(mock, nil, nil, cfg, nil)

	ev := e.Evaluate(context.Background(), Input{
		ExpectedAnswer: "anything",
		Answer:         "anything",
	})

	if ev.IsCorrect {
		t.Error("disabled fallback should yield an incorrect verdict")
	}
	if !strings.Contains(ev.Explanation, "unavailable") {
		t.Errorf("Explanation = %q", ev.Explanation)
	}
}

func TestEvaluateAudioQuestionNormalization(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct": true, "explanation": "ok"}`),
	})
	e := newTestEvaluator(mock)

	e.Evaluate(context.Background(), Input{
		Question:       "What did the speaker emphasize?",
		ExpectedAnswer: "Deadlines.",
		Answer:         "Deadlines.",
		QuestionType:   catalog.ModalityAudio,
		AnswerType:     catalog.ModalityText,
		AudioRef:       "audio/q.wav",
	})

	if len(mock.Calls) != 1 {
		t.Fatalf("Calls = %d, want 1", len(mock.Calls))
	}
	if !strings.Contains(mock.Calls[0].Prompt, "Audio Transcript: transcript text") {
		t.Errorf("prompt missing transcript: %q", mock.Calls[0].Prompt)
	}
}

func TestEvaluateMediaAnswerNormalization(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"is_correct": true, "explanation": "ok"}`)},
		llm.MockResponse{Content: json.RawMessage(`{"is_correct": true, "explanation": "ok"}`)},
	)
	e := newTestEvaluator(mock)

	e.Evaluate(context.Background(), Input{
		ExpectedAnswer: "x",
		AnswerType:     catalog.ModalityAudio,
		AnswerAudioRef: "audio/a.wav",
	})
	e.Evaluate(context.Background(), Input{
		ExpectedAnswer: "x",
		AnswerType:     catalog.ModalityImage,
		AnswerImageRef: "images/a.png",
	})

	if !strings.Contains(mock.Calls[0].Prompt, "Audio Answer Transcript: transcript text") {
		t.Errorf("audio answer not normalized: %q", mock.Calls[0].Prompt)
	}
	if !strings.Contains(mock.Calls[1].Prompt, "Image Answer Description: caption text") {
		t.Errorf("image answer not normalized: %q", mock.Calls[1].Prompt)
	}
}

func TestEvaluateEmptyAnswerMarker(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct": false, "explanation": "no answer"}`),
	})
	e := newTestEvaluator(mock)

	e.Evaluate(context.Background(), Input{
		ExpectedAnswer: "x",
		Answer:         "   ",
		AnswerType:     catalog.ModalityText,
	})

	if !strings.Contains(mock.Calls[0].Prompt, "No answer provided") {
		t.Errorf("empty answer marker missing: %q", mock.Calls[0].Prompt)
	}
}

func TestEvaluateEvalTuning(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct": true, "explanation": "ok"}`),
	})
	e := newTestEvaluator(mock)

	e.Evaluate(context.Background(), Input{ExpectedAnswer: "x", Answer: "x"})

	req := mock.Calls[0]
	if req.Temperature != 0.3 {
		t.Errorf("Temperature = %v, want 0.3", req.Temperature)
	}
	if req.MaxTokens != 512 {
		t.Errorf("MaxTokens = %d, want 512", req.MaxTokens)
	}
	if req.Schema != nil {
		t.Error("grading request should not carry a schema")
	}
}

func TestParseVerdictRequiresBothFields(t *testing.T) {
	if _, err := parseVerdict(json.RawMessage(`{"is_correct": true}`)); err == nil {
		t.Error("expected error for verdict without explanation")
	}
	if _, err := parseVerdict(json.RawMessage(`{"explanation": "x"}`)); err == nil {
		t.Error("expected error for verdict without is_correct")
	}
}

func TestEvaluatePromptEmbedsContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct": true, "explanation": "ok"}`),
	})
	e := newTestEvaluator(mock)

	e.Evaluate(context.Background(), Input{
		Skill:          catalog.SkillLeadership,
		Level:          catalog.LevelAdvanced,
		Question:       "How do you delegate?",
		ExpectedAnswer: "Match tasks to strengths.",
		Answer:         "By matching tasks to strengths.",
		QuestionType:   catalog.ModalityText,
		AnswerType:     catalog.ModalityText,
	})

	prompt := mock.Calls[0].Prompt
	for _, want := range []string{
		"Skill being assessed: Leadership",
		"Level: Advanced",
		"Question Type: Text",
		"Answer Type: Text",
		"Expected key points in the answer: Match tasks to strengths.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
