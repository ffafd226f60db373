package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config is read from GLOOMHOLD_* environment variables. Each field is the
// default for the matching command-line flag.
type Config struct {
	Seed      int64    `env:"SEED" envDefault:"-1"`
	Roster    string   `env:"ROSTER" envDefault:"data/roster.ini"`
	SavePath  string   `env:"SAVE_PATH" envDefault:"data/save.ini"`
	Journal   string   `env:"JOURNAL"`
	Headless  bool     `env:"HEADLESS" envDefault:"false"`
	Verbose   bool     `env:"VERBOSE" envDefault:"false"`
	MCPAddr   string   `env:"MCP_ADDR" envDefault:"127.0.0.1:8765"`
	MCPPath   string   `env:"MCP_PATH" envDefault:"/mcp"`
	MCPToken  string   `env:"MCP_TOKEN"`
	MCPOrigin []string `env:"MCP_ORIGINS" envSeparator:","`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "GLOOMHOLD_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
