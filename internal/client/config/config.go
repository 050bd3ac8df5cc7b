// Package config handles configuration for the CLI client, including
// defaults, environment overlay, JSON overlay and command-line flags.
package config

import (
	"time"

	"github.com/johnp-05/sumativatr1/internal/filex"
)

// Config holds runtime settings for the tasks CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the task REST backend.
//   - GeminiAPIKey: Google Gemini API key. Never set a default; it comes
//     from the GEMINI_API_KEY environment variable or the config file.
//   - GeminiModel: Gemini model name used for chat and suggestions.
//   - RequestTimeout: upper bound applied to each assistant turn.
//   - DataDir: directory for the encrypted local store.
type Config struct {
	ServerEndpointAddr string
	GeminiAPIKey       string
	GeminiModel        string
	RequestTimeout     time.Duration
	DataDir            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:3001"
	c.GeminiModel = "gemini-1.5-flash"
	c.RequestTimeout = 20 * time.Second
	c.DataDir = filex.DefaultDataDir()
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
