package llm

import (
	"encoding/json"
	"fmt"
)

// ErrModelNotFound indicates the backend rejected the model identifier
// (HTTP 404 with the "Model not found" marker). The completion provider
// treats it as a signal to advance to the next candidate model.
type ErrModelNotFound struct {
	Model string
}

func (e *ErrModelNotFound) Error() string {
	return fmt.Sprintf("model %q not found", e.Model)
}

// ErrInvalidResponse indicates the backend returned content that is not a
// parseable JSON object or does not conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the backend is down, unreachable, or
// returned a non-success status. A single model attempt failing this way
// advances the candidate walk; SDK backends surface it directly.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrModelsExhausted indicates every candidate model was tried without a
// usable JSON result. Callers must catch it and substitute a deterministic
// fallback; it never reaches the end user. LastModel names the final
// candidate attempted, for audit attribution.
type ErrModelsExhausted struct {
	Attempts  int
	LastModel string
	LastErr   error
}

func (e *ErrModelsExhausted) Error() string {
	if e.LastErr != nil {
		return fmt.Sprintf("all %d candidate models failed, last error: %v", e.Attempts, e.LastErr)
	}
	return fmt.Sprintf("all %d candidate models failed", e.Attempts)
}

func (e *ErrModelsExhausted) Unwrap() error { return e.LastErr }
