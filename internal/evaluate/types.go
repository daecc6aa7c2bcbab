package evaluate

import (
	"context"

	"github.com/skillcheck/skillcheck/internal/catalog"
)

// Evaluation is the verdict on a single answer.
type Evaluation struct {
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation"`
}

// Input carries everything needed to grade one answer. Question and Answer
// hold text content; AudioRef and similar media references, when present,
// are resolved to text during normalization.
type Input struct {
	Skill          catalog.Skill
	Level          catalog.Level
	Question       string
	ExpectedAnswer string
	Answer         string
	QuestionType   catalog.Modality
	AnswerType     catalog.Modality
	AudioRef       string
	ImageRef       string
	AnswerAudioRef string
	AnswerImageRef string
}

// Evaluator grades answers. Implementations must not fail: when the primary
// grading path is unavailable they degrade to a simpler strategy and always
// return a verdict.
type Evaluator interface {
	Evaluate(ctx context.Context, in Input) Evaluation
}
