package session

import (
	"testing"

	"github.com/skillcheck/skillcheck/internal/catalog"
	"github.com/skillcheck/skillcheck/internal/evaluate"
	"github.com/skillcheck/skillcheck/internal/question"
)

func answeredSession(t *testing.T, verdicts []bool) *Session {
	t.Helper()
	s := New(catalog.SkillCommunication, catalog.LevelIntermediate, catalog.ModalityText)
	for i, correct := range verdicts {
		if err := s.AskQuestion(question.Question{Content: "q", Type: catalog.ModalityText}); err != nil {
			t.Fatalf("AskQuestion %d: %v", i, err)
		}
		if err := s.RecordEvaluation("a", evaluate.Evaluation{IsCorrect: correct}); err != nil {
			t.Fatalf("RecordEvaluation %d: %v", i, err)
		}
	}
	return s
}

func TestScoreTwoOfThree(t *testing.T) {
	s := answeredSession(t, []bool{true, false, true})
	if score := s.Finalize(); score != 67 {
		t.Errorf("score = %d, want 67", score)
	}
}

func TestScoreAllCorrect(t *testing.T) {
	s := answeredSession(t, []bool{true, true, true})
	if score := s.Finalize(); score != 100 {
		t.Errorf("score = %d, want 100", score)
	}
}

func TestScoreNoneCorrect(t *testing.T) {
	s := answeredSession(t, []bool{false, false})
	if score := s.Finalize(); score != 0 {
		t.Errorf("score = %d, want 0", score)
	}
}

func TestScoreNoAnswers(t *testing.T) {
	s := New(catalog.SkillTeamwork, catalog.LevelBeginner, catalog.ModalityText)
	if score := s.Finalize(); score != 0 {
		t.Errorf("empty session score = %d, want 0", score)
	}
	if !s.Complete {
		t.Error("session should be complete after Finalize")
	}
}

func TestRecordWithoutQuestion(t *testing.T) {
	s := New(catalog.SkillTeamwork, catalog.LevelBeginner, catalog.ModalityText)
	if err := s.RecordEvaluation("a", evaluate.Evaluation{}); err != ErrNoOpenQuestion {
		t.Errorf("err = %v, want ErrNoOpenQuestion", err)
	}
}

func TestDoubleRecordRejected(t *testing.T) {
	s := New(catalog.SkillTeamwork, catalog.LevelBeginner, catalog.ModalityText)
	if err := s.AskQuestion(question.Question{Content: "q"}); err != nil {
		t.Fatalf("AskQuestion: %v", err)
	}
	if err := s.RecordEvaluation("a", evaluate.Evaluation{}); err != nil {
		t.Fatalf("RecordEvaluation: %v", err)
	}
	if err := s.RecordEvaluation("b", evaluate.Evaluation{}); err != ErrNoOpenQuestion {
		t.Errorf("err = %v, want ErrNoOpenQuestion", err)
	}
}

func TestCompleteSessionRejectsChanges(t *testing.T) {
	s := answeredSession(t, []bool{true})
	s.Finalize()

	if err := s.AskQuestion(question.Question{Content: "q"}); err != ErrComplete {
		t.Errorf("AskQuestion after Finalize: err = %v, want ErrComplete", err)
	}
	if err := s.RecordEvaluation("a", evaluate.Evaluation{}); err != ErrComplete {
		t.Errorf("RecordEvaluation after Finalize: err = %v, want ErrComplete", err)
	}
}

func TestSessionIDsUnique(t *testing.T) {
	a := New(catalog.SkillCommunication, catalog.LevelBeginner, catalog.ModalityText)
	b := New(catalog.SkillCommunication, catalog.LevelBeginner, catalog.ModalityText)
	if a.ID == b.ID {
		t.Error("sessions should get distinct IDs")
	}
}
