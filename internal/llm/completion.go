package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// modelNotFoundMarker is the body substring that distinguishes "this model
// identifier does not exist" from other 404s.
const modelNotFoundMarker = "Model not found"

// CompletionProvider implements Provider against a bare text-completion
// endpoint (POST {model, prompt, max_tokens, temperature}). The available
// model name on such services is not reliably known in advance, so the
// provider walks an ordered candidate list: primary first, then alternates.
// "Model not found" advances the walk explicitly; every other failure on an
// attempt (non-200, network error, unparseable body) advances it too. There
// is no backoff and no re-attempt of the same model.
type CompletionProvider struct {
	url    string
	apiKey string
	models []string // primary first, then alternates
	client *http.Client
	logger *slog.Logger
}

var _ Provider = (*CompletionProvider)(nil)

// NewCompletionProvider creates a provider for the given endpoint and
// candidate model list.
func NewCompletionProvider(cfg CompletionConfig) (*CompletionProvider, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("completion endpoint URL is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("completion primary model is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	models := append([]string{cfg.Model}, cfg.AlternateModels...)

	return &CompletionProvider{
		url:    cfg.BaseURL,
		apiKey: cfg.APIKey,
		models: models,
		client: &http.Client{Timeout: timeout},
		logger: slog.Default().With("component", "completion"),
	}, nil
}

// completionRequest is the wire payload for one model attempt.
type completionRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// Generate walks the candidate models until one yields a parseable JSON
// object, or fails with ErrModelsExhausted.
func (p *CompletionProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	var lastModel string

	for _, model := range p.models {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p.logger.Info("trying model", "model", model)

		resp, err := p.generateOnce(ctx, model, req)
		if err == nil {
			p.logger.Info("successful completion call", "model", model)
			return resp, nil
		}
		lastErr = err
		lastModel = model

		var notFound *ErrModelNotFound
		if errors.As(err, &notFound) {
			p.logger.Warn("model not found, trying next model", "model", model)
			continue
		}
		p.logger.Error("completion attempt failed", "model", model, "error", err)
	}

	return nil, &ErrModelsExhausted{Attempts: len(p.models), LastModel: lastModel, LastErr: lastErr}
}

// generateOnce performs a single synchronous attempt against one model.
func (p *CompletionProvider) generateOnce(ctx context.Context, model string, req Request) (*Response, error) {
	payload := completionRequest{
		Model:       model,
		Prompt:      req.Prompt,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("read response: %w", err)}
	}

	if httpResp.StatusCode == http.StatusNotFound && strings.Contains(string(respBody), modelNotFoundMarker) {
		return nil, &ErrModelNotFound{Model: model}
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, &ErrProviderUnavailable{
			Err: fmt.Errorf("status %d: %s", httpResp.StatusCode, truncateBody(respBody)),
		}
	}

	content := extractResponseText(respBody)

	raw, err := ExtractJSON(content)
	if err != nil {
		return nil, err
	}

	if req.Schema != nil {
		if err := validateResponse(req.Schema, raw); err != nil {
			return nil, err
		}
	}

	return &Response{
		Content: raw,
		Model:   model,
		Usage:   extractUsage(respBody),
	}, nil
}

func (p *CompletionProvider) ModelID() string {
	return p.models[0]
}

// Models returns the full candidate list, primary first.
func (p *CompletionProvider) Models() []string {
	return p.models
}

// shapeMatcher attempts to pull the generated text out of one known success
// body shape. Returns the text and whether the shape matched.
type shapeMatcher func(body []byte) (string, bool)

// responseShapes are tried in order. The final matcher always succeeds by
// stringifying the whole body, preserving the original tolerance for
// unexpected response formats.
var responseShapes = []shapeMatcher{
	matchTextField,
	matchChoicesText,
	matchWholeBody,
}

func extractResponseText(body []byte) string {
	for _, match := range responseShapes {
		if text, ok := match(body); ok {
			return text
		}
	}
	return string(body) // unreachable, matchWholeBody always matches
}

// matchTextField handles {"text": "..."}.
func matchTextField(body []byte) (string, bool) {
	var shape struct {
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(body, &shape); err != nil || shape.Text == nil {
		return "", false
	}
	return *shape.Text, true
}

// matchChoicesText handles {"choices": [{"text": "..."}]}.
func matchChoicesText(body []byte) (string, bool) {
	var shape struct {
		Choices []struct {
			Text string `json:"text"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &shape); err != nil || len(shape.Choices) == 0 {
		return "", false
	}
	return shape.Choices[0].Text, true
}

func matchWholeBody(body []byte) (string, bool) {
	return string(body), true
}

// extractUsage pulls token counts when the endpoint reports them.
func extractUsage(body []byte) Usage {
	var shape struct {
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
			TotalTokens      int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(body, &shape); err != nil {
		return Usage{}
	}
	return Usage{
		InputTokens:  shape.Usage.PromptTokens,
		OutputTokens: shape.Usage.CompletionTokens,
		TotalTokens:  shape.Usage.TotalTokens,
	}
}

func truncateBody(body []byte) string {
	const max = 512
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
