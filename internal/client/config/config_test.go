package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:3001", c.ServerEndpointAddr)
	assert.Equal(t, "gemini-1.5-flash", c.GeminiModel)
	assert.Equal(t, 20*time.Second, c.RequestTimeout)
	assert.Empty(t, c.GeminiAPIKey, "the key must never have a default")
	assert.NotEmpty(t, c.DataDir)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:3001", cfg.ServerEndpointAddr)
	assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
}

func Test_parseEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key-123")

	cfg := &Config{}
	parseEnv(cfg)

	assert.Equal(t, "test-key-123", cfg.GeminiAPIKey)
}
