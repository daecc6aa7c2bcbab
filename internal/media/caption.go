package media

import (
	"context"
	"log/slog"
)

const (
	captionUnavailable = "Unable to generate image description."
	captionFallback    = "An image showing a person demonstrating soft skills in a professional environment."
)

// StaticCaptioner describes an image reference without calling any vision
// service. It never returns an error: a missing or unreadable image yields a
// placeholder description.
type StaticCaptioner struct {
	storage *Storage
	logger  *slog.Logger
}

func NewStaticCaptioner(storage *Storage, logger *slog.Logger) *StaticCaptioner {
	if logger == nil {
		logger = slog.Default()
	}
	return &StaticCaptioner{storage: storage, logger: logger}
}

// Caption produces a textual description of a stored image.
func (c *StaticCaptioner) Caption(ctx context.Context, ref string) string {
	if ref == "" {
		return captionUnavailable
	}
	if c.storage != nil {
		if _, err := c.storage.ReadBase64(ref); err != nil {
			c.logger.Warn("read image for captioning failed", "ref", ref, "error", err)
			return captionUnavailable
		}
	}
	return captionFallback
}

var _ Captioner = (*StaticCaptioner)(nil)
