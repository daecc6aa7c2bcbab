package question

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the backend response.
	MaxTokens int

	// Temperature controls output randomness. Generation favors variety.
	Temperature float64
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.7,
	}
}
