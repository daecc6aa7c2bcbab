package session

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/skillcheck/skillcheck/internal/catalog"
	"github.com/skillcheck/skillcheck/internal/evaluate"
	"github.com/skillcheck/skillcheck/internal/question"
)

var (
	ErrNoOpenQuestion = errors.New("no question awaiting an answer")
	ErrComplete       = errors.New("session already complete")
)

// Exchange pairs a question with the answer given and its verdict.
type Exchange struct {
	Question   question.Question
	Answer     string
	Evaluation evaluate.Evaluation
	Answered   bool
}

// Session tracks one assessment run: the questions asked, answers given, and
// the final score once complete.
type Session struct {
	ID        string
	Skill     catalog.Skill
	Level     catalog.Level
	Modality  catalog.Modality
	Exchanges []Exchange
	Score     int
	Complete  bool
	StartedAt time.Time
	EndedAt   time.Time
	LastSeen  time.Time
}

func New(skill catalog.Skill, level catalog.Level, modality catalog.Modality) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Skill:     skill,
		Level:     level,
		Modality:  modality,
		StartedAt: now,
		LastSeen:  now,
	}
}

// AskQuestion appends a new question awaiting an answer.
func (s *Session) AskQuestion(q question.Question) error {
	if s.Complete {
		return ErrComplete
	}
	s.Exchanges = append(s.Exchanges, Exchange{Question: q})
	s.touch()
	return nil
}

// RecordEvaluation attaches the answer and verdict to the most recent
// unanswered question.
func (s *Session) RecordEvaluation(answer string, ev evaluate.Evaluation) error {
	if s.Complete {
		return ErrComplete
	}
	n := len(s.Exchanges)
	if n == 0 || s.Exchanges[n-1].Answered {
		return ErrNoOpenQuestion
	}
	s.Exchanges[n-1].Answer = answer
	s.Exchanges[n-1].Evaluation = ev
	s.Exchanges[n-1].Answered = true
	s.touch()
	return nil
}

// CorrectCount returns how many answered questions were judged correct.
func (s *Session) CorrectCount() int {
	correct := 0
	for _, ex := range s.Exchanges {
		if ex.Answered && ex.Evaluation.IsCorrect {
			correct++
		}
	}
	return correct
}

// AnsweredCount returns how many questions have been answered.
func (s *Session) AnsweredCount() int {
	answered := 0
	for _, ex := range s.Exchanges {
		if ex.Answered {
			answered++
		}
	}
	return answered
}

// Finalize computes the score as the rounded percentage of correct answers
// and marks the session complete. A session with no answers scores zero.
func (s *Session) Finalize() int {
	answered := s.AnsweredCount()
	if answered > 0 {
		s.Score = int(math.Round(float64(s.CorrectCount()) / float64(answered) * 100))
	}
	s.Complete = true
	s.EndedAt = time.Now()
	s.touch()
	return s.Score
}

func (s *Session) touch() {
	s.LastSeen = time.Now()
}
