// Package config loads fxfmt configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "fxfmt.toml"

// Config is the full fxfmt configuration.
type Config struct {
	Server  Server  `toml:"server"`
	Format  Format  `toml:"format"`
	AI      AI      `toml:"ai"`
	History History `toml:"history"`
}

// Server configures the HTTP service.
type Server struct {
	Addr string `toml:"addr"`
}

// Format configures the beautifier.
type Format struct {
	Indent   int `toml:"indent"`
	MaxDepth int `toml:"max_depth"`
}

// AI configures the optimization provider. API keys are taken from the
// environment, never from the config file.
type AI struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	OllamaURL      string `toml:"ollama_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// History configures request-history persistence.
type History struct {
	Path     string `toml:"path"`
	Disabled bool   `toml:"disabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:  Server{Addr: ":8000"},
		Format:  Format{Indent: 4, MaxDepth: 64},
		AI:      AI{Provider: "anthropic", OllamaURL: "http://localhost:11434", TimeoutSeconds: 120},
		History: History{Path: "fxfmt.db"},
	}
}

// Load reads the config file at path, filling unset fields from Default.
// A missing file is not an error; it yields Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}
