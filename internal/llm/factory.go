package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration, wrapped with the audit
// decorator when a repo is given.
func NewProvider(ctx context.Context, cfg Config, audit AuditRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "completion":
		base, err = NewCompletionProvider(cfg.Completion)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if audit != nil {
		base = WithAudit(base, audit)
	}
	return base, nil
}
