package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/johnp-05/sumativatr1/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The
// timeout is specified in seconds. Zero-valued fields leave the current
// Config value untouched, so a partial file only overrides what it names.
type JsonConfig struct {
	ServerEndpointAddr    string `json:"server_endpoint_addr"`
	GeminiAPIKey          string `json:"gemini_api_key"`
	GeminiModel           string `json:"gemini_model"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	DataDir               string `json:"data_dir"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; without them nothing is loaded.
// Read and unmarshal errors panic, matching the flag-parsing behavior.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.GeminiAPIKey != "" {
		cfg.GeminiAPIKey = jc.GeminiAPIKey
	}
	if jc.GeminiModel != "" {
		cfg.GeminiModel = jc.GeminiModel
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
}
