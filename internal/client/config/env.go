package config

import "os"

// parseEnv overlays Config with values from the environment. Only the
// secret lives here; everything else is file or flag territory.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("GEMINI_API_KEY"); ok {
		cfg.GeminiAPIKey = v
	}
}
