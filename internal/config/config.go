// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/skillcheck/skillcheck/internal/llm"
	"github.com/skillcheck/skillcheck/internal/store"
)

const (
	defaultQuestionsPerSession = 3
	defaultUploadsDir          = "uploads"
)

// Config is the full application configuration.
type Config struct {
	LLM                 llm.Config
	DBPath              string
	UploadsDir          string
	HeuristicFallback   bool
	SessionTTL          time.Duration
	QuestionsPerSession int
}

// Load reads a .env file if present, then the environment. Environment
// variables win over .env values, which godotenv guarantees by never
// overriding set variables.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LLM:                 llm.ConfigFromEnv(),
		DBPath:              store.DefaultDBPath(),
		UploadsDir:          defaultUploadsDir,
		HeuristicFallback:   true,
		SessionTTL:          0,
		QuestionsPerSession: defaultQuestionsPerSession,
	}

	if v := os.Getenv("SKILLCHECK_UPLOADS_DIR"); v != "" {
		cfg.UploadsDir = v
	}
	if v := os.Getenv("SKILLCHECK_HEURISTIC_FALLBACK"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("SKILLCHECK_HEURISTIC_FALLBACK: %w", err)
		}
		cfg.HeuristicFallback = b
	}
	if v := os.Getenv("SKILLCHECK_SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("SKILLCHECK_SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}
	if v := os.Getenv("SKILLCHECK_QUESTIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("SKILLCHECK_QUESTIONS: must be a positive integer")
		}
		cfg.QuestionsPerSession = n
	}

	if err := cfg.LLM.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
