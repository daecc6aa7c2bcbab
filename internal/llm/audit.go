package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AuditRecord captures one backend call for the persistent audit log.
type AuditRecord struct {
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AuditRepo persists audit records. Implemented by the store.
type AuditRepo interface {
	RecordLLMRequest(ctx context.Context, rec AuditRecord) error
}

// AuditProvider is a decorator that records every backend call.
type AuditProvider struct {
	inner Provider
	repo  AuditRepo
}

// WithAudit wraps a Provider with audit recording.
func WithAudit(p Provider, repo AuditRepo) Provider {
	return &AuditProvider{inner: p, repo: repo}
}

func (a *AuditProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := a.inner.Generate(ctx, req)

	rec := AuditRecord{
		Model:     a.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		rec.Model = resp.Model
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
		// On an exhausted candidate walk the primary model did not serve the
		// final failure; attribute the row to the last model attempted.
		var exhausted *ErrModelsExhausted
		if errors.As(err, &exhausted) && exhausted.LastModel != "" {
			rec.Model = exhausted.LastModel
		}
	}

	// Record the call but never fail the request over audit problems.
	if logErr := a.repo.RecordLLMRequest(ctx, rec); logErr != nil {
		slog.Warn("failed to record LLM audit entry", "error", logErr)
	}

	return resp, err
}

func (a *AuditProvider) ModelID() string {
	return a.inner.ModelID()
}
