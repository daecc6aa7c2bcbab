package question

import (
	"context"

	"github.com/skillcheck/skillcheck/internal/catalog"
)

// Question is a single generated assessment question, immutable once built.
type Question struct {
	// Content is the full question text shown to the learner. For audio
	// questions it embeds the scenario; for image questions it carries the
	// "Look at the image..." framing.
	Content string

	// ExpectedAnswer lists the key points a correct answer should cover.
	// It is a grading aid, not a literal match target.
	ExpectedAnswer string

	// Type is the question's modality.
	Type catalog.Modality

	// MediaDescription is set for image questions: the raw description used
	// by the placeholder renderer. Empty otherwise.
	MediaDescription string

	// MediaRef is an opaque storage handle for rendered/attached media,
	// set by the caller after the media is materialized.
	MediaRef string
}

// Generator produces assessment questions. Implementations never fail
// outward: a usable Question comes back even when every backend call fails.
type Generator interface {
	Generate(ctx context.Context, skill catalog.Skill, level catalog.Level, qtype catalog.Modality) *Question
}
