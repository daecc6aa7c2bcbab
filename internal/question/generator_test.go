package question

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/skillcheck/skillcheck/internal/catalog"
	"github.com/skillcheck/skillcheck/internal/llm"
)

func TestGenerateTextSuccess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question": "How do you handle disagreement in a team?", "expected_answer": "Listen actively and seek common ground."}`),
	})
	gen := New(mock, DefaultConfig())

	q := gen.Generate(context.Background(), catalog.SkillTeamwork, catalog.LevelIntermediate, catalog.ModalityText)

	if q.Type != catalog.ModalityText {
		t.Errorf("Type = %q, want Text", q.Type)
	}
	if q.Content != "How do you handle disagreement in a team?" {
		t.Errorf("unexpected content %q", q.Content)
	}
	if q.ExpectedAnswer == "" {
		t.Error("expected answer missing")
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}

func TestGenerateAudioSuccess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"audio_scenario": "Two colleagues argue over a deadline.", "question": "How should they resolve it?", "expected_answer": "Discuss priorities openly."}`),
	})
	gen := New(mock, DefaultConfig())

	q := gen.Generate(context.Background(), catalog.SkillConflictResolution, catalog.LevelBeginner, catalog.ModalityAudio)

	if q.Type != catalog.ModalityAudio {
		t.Errorf("Type = %q, want Audio", q.Type)
	}
	if !strings.Contains(q.Content, "Audio Scenario: Two colleagues argue over a deadline.") {
		t.Errorf("content missing scenario: %q", q.Content)
	}
	if !strings.Contains(q.Content, "Question: How should they resolve it?") {
		t.Errorf("content missing question: %q", q.Content)
	}
}

func TestGenerateImageSuccess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"image_description": "A manager presenting to a team.", "question": "What does the body language convey?", "expected_answer": "Engagement and openness."}`),
	})
	gen := New(mock, DefaultConfig())

	q := gen.Generate(context.Background(), catalog.SkillLeadership, catalog.LevelAdvanced, catalog.ModalityImage)

	if q.Type != catalog.ModalityImage {
		t.Errorf("Type = %q, want Image", q.Type)
	}
	if !strings.HasPrefix(q.Content, "Look at the image and answer the following question:\n\n") {
		t.Errorf("content missing image prefix: %q", q.Content)
	}
	if q.MediaDescription != "A manager presenting to a team." {
		t.Errorf("MediaDescription = %q", q.MediaDescription)
	}
}

func TestGenerateMissingFieldFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question": "Only a question, no expected answer"}`),
	})
	gen := New(mock, DefaultConfig())

	q := gen.Generate(context.Background(), catalog.SkillCommunication, catalog.LevelIntermediate, catalog.ModalityText)

	want := fallbackFor(catalog.SkillCommunication, catalog.LevelIntermediate)
	if q.Content != want.Question {
		t.Errorf("expected fallback question, got %q", q.Content)
	}
}

func TestGenerateProviderFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("backend down")})
	gen := New(mock, DefaultConfig())

	q := gen.Generate(context.Background(), catalog.SkillCommunication, catalog.LevelBeginner, catalog.ModalityText)

	if !strings.Contains(q.Content, "Explain the core concepts of Communication at a beginner level.") {
		t.Errorf("expected beginner fallback, got %q", q.Content)
	}
	if !strings.Contains(q.ExpectedAnswer, "basic principles of Communication") {
		t.Errorf("expected beginner fallback answer, got %q", q.ExpectedAnswer)
	}
}

func TestGenerateUnknownLevelUsesIntermediateFallback(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: every call fails
	gen := New(mock, DefaultConfig())

	q := gen.Generate(context.Background(), catalog.SkillCreativity, catalog.Level("Expert"), catalog.ModalityText)

	want := fallbackFor(catalog.SkillCreativity, catalog.LevelIntermediate)
	if q.Content != want.Question {
		t.Errorf("unknown level should use Intermediate fallback, got %q", q.Content)
	}
}

func TestGenerateImageFallbackPrefix(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	q := gen.Generate(context.Background(), catalog.SkillNegotiation, catalog.LevelIntermediate, catalog.ModalityImage)

	if !strings.HasPrefix(q.Content, "Look at the image and answer: ") {
		t.Errorf("fallback image question has wrong prefix: %q", q.Content)
	}
	if q.MediaDescription == "" {
		t.Error("fallback image question missing media description")
	}
}

func TestGenerateSendsSchemaAndTuning(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question": "q", "expected_answer": "a"}`),
	})
	gen := New(mock, DefaultConfig())

	gen.Generate(context.Background(), catalog.SkillAdaptability, catalog.LevelIntermediate, catalog.ModalityText)

	if len(mock.Calls) != 1 {
		t.Fatalf("Calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil {
		t.Error("expected schema on generation request")
	}
	if req.MaxTokens != 512 {
		t.Errorf("MaxTokens = %d, want 512", req.MaxTokens)
	}
	if req.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", req.Temperature)
	}
}
