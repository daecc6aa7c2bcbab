package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all backend configuration.
type Config struct {
	// Provider selects which backend to use.
	// Values: "completion", "openai", "anthropic", "gemini", "mock".
	Provider string

	Completion CompletionConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	Gemini     GeminiConfig
}

// CompletionConfig configures the bare completion-endpoint backend.
type CompletionConfig struct {
	// BaseURL is the full completions URL, e.g.
	// "https://api.sambanova.ai/v1/completions".
	BaseURL string

	// APIKey is sent as a bearer token when set.
	APIKey string

	// Model is the primary model identifier, tried first.
	Model string

	// AlternateModels are tried in order when a model attempt fails.
	AlternateModels []string

	// Timeout bounds each individual model attempt. Default: 30s.
	Timeout time.Duration
}

// OpenAIConfig configures the OpenAI-compatible SDK backend.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for compatible APIs.
}

// AnthropicConfig configures the Anthropic SDK backend.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig configures the Gemini SDK backend.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// DefaultConfig returns a Config with the standard candidate model walk and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "completion",
		Completion: CompletionConfig{
			BaseURL: "https://api.sambanova.ai/v1/completions",
			Model:   "sambanova-llm",
			AlternateModels: []string{
				"sambanova-chat",
				"sambanova-1.5-chat",
				"llama-7b",
				"llama2-7b",
			},
			Timeout: 30 * time.Second,
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("SKILLCHECK_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if u := os.Getenv("SKILLCHECK_API_URL"); u != "" {
		cfg.Completion.BaseURL = u
	}
	if k := os.Getenv("SKILLCHECK_API_KEY"); k != "" {
		cfg.Completion.APIKey = k
	}
	if m := os.Getenv("SKILLCHECK_MODEL"); m != "" {
		cfg.Completion.Model = m
	}
	if alts := os.Getenv("SKILLCHECK_ALT_MODELS"); alts != "" {
		cfg.Completion.AlternateModels = splitModels(alts)
	}
	if t := os.Getenv("SKILLCHECK_API_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.Completion.Timeout = d
		}
	}

	if k := os.Getenv("SKILLCHECK_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("SKILLCHECK_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("SKILLCHECK_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("SKILLCHECK_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("SKILLCHECK_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("SKILLCHECK_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("SKILLCHECK_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	return cfg
}

// Validate checks that the selected backend has its required settings.
func (c Config) Validate() error {
	switch c.Provider {
	case "completion":
		if c.Completion.BaseURL == "" {
			return fmt.Errorf("SKILLCHECK_API_URL is required for the completion provider")
		}
		if c.Completion.Model == "" {
			return fmt.Errorf("SKILLCHECK_MODEL is required for the completion provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("SKILLCHECK_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("SKILLCHECK_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("SKILLCHECK_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// No settings needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

func splitModels(s string) []string {
	var models []string
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			models = append(models, m)
		}
	}
	return models
}
