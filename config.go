package main

import (
	"fmt"
	"os"
	"strconv"
)

// Config is read from the environment.
type Config struct {
	Port   string
	Gemini GeminiConfig

	// Default board bounds for level requests that set none. 0 is unbounded.
	MaxWidth  int
	MaxHeight int
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),
		Gemini: GeminiConfig{
			ProjectID: os.Getenv("GCP_PROJECT_ID"),
			Region:    os.Getenv("GCP_REGION"),
			APIKey:    os.Getenv("GEMINI_API_KEY"),
			Model:     os.Getenv("GEMINI_MODEL"),
		},
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	var err error
	if cfg.MaxWidth, err = envInt("LEVEL_MAX_WIDTH"); err != nil {
		return Config{}, err
	}
	if cfg.MaxHeight, err = envInt("LEVEL_MAX_HEIGHT"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envInt parses a non-negative integer variable, 0 when unset.
func envInt(name string) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %d", name, n)
	}
	return n, nil
}
