package llm

import (
	"os"
	"strconv"
)

// Config holds the settings for the local model client. Parsing is the only
// task the app sends to the model, so the knobs are flat rather than per-task.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
}

// DefaultConfig returns the stock configuration. The model integration is
// opt-in: everything works without it.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  15000,
		MaxRetries: 1,
	}
}

// LoadConfig reads SHOOTSYNC_LLM_* environment variables over the defaults.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SHOOTSYNC_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SHOOTSYNC_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SHOOTSYNC_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("SHOOTSYNC_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("SHOOTSYNC_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("SHOOTSYNC_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	return cfg
}
