package config

import (
	"flag"
	"os"
	"time"

	"github.com/johnp-05/sumativatr1/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the task backend (default from Config)
//	-m string   Gemini model name
//	-t int      assistant request timeout in seconds
//	-f string   data directory for the encrypted local store
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-t", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the task backend")
	fs.StringVar(&cfg.GeminiModel, "m", cfg.GeminiModel, "Gemini model name")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "assistant request timeout (in seconds)")
	fs.StringVar(&cfg.DataDir, "f", cfg.DataDir, "data directory for the encrypted local store")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
