package config

import (
	"encoding/json"
	"os"

	"github.com/johnp-05/sumativatr1/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Zero
// values leave the current Config untouched so a partial file only
// overrides what it names.
type JsonConfig struct {
	EndpointAddr string `json:"endpoint_addr"`
	DatabaseDSN  string `json:"database_dsn"`
	InMemory     *bool  `json:"in_memory"`
}

// parseJson overlays Config with values loaded from a JSON file resolved
// via the -c/-config flags. Read and unmarshal errors panic.
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

	if jc.EndpointAddr != "" {
		cfg.EndpointAddr = jc.EndpointAddr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.InMemory != nil {
		cfg.InMemory = *jc.InMemory
	}
}
