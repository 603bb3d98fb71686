package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Defaults applied when the corresponding variable is unset.
const (
	defaultPort   = "4000"
	defaultOrigin = "http://localhost:5173"
)

// Config holds the configuration for the backend.
type Config struct {
	Port           string
	GeminiAPIKey   string
	AllowedOrigins []string
}

// NewFromEnv creates a new Config object from environment variables. Every
// variable is optional: without GEMINI_API_KEY the assistant answers in demo
// mode, and the CORS allow-list falls back to the local dev frontend.
func NewFromEnv() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if _, err := strconv.Atoi(port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", port)
	}

	origins := splitOrigins(os.Getenv("ALLOWED_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{defaultOrigin}
	}

	return &Config{
		Port:           port,
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		AllowedOrigins: origins,
	}, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
