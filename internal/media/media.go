// Package media handles uploaded audio/image content: persisting it under
// the uploads directory, converting it to textual surrogates for grading,
// and rendering placeholder images for image questions.
package media

import "context"

// Transcriber converts stored audio into text. Implementations never fail:
// any internal error surfaces as a placeholder string, so the evaluation
// pipeline sees transcription as infallible.
type Transcriber interface {
	Transcribe(ctx context.Context, audioRef string) string
}

// Captioner produces a textual description of a stored image under the same
// no-fail contract.
type Captioner interface {
	Caption(ctx context.Context, imageRef string) string
}
