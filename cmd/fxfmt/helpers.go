package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fxfmt/internal/config"
	"fxfmt/pkg/fxfmt"
)

var (
	errColor = color.New(color.FgRed)
	okColor  = color.New(color.FgGreen)
)

// readFormula takes the formula from the first positional argument, or from
// stdin when input is piped.
func readFormula(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no formula given: pass it as an argument or pipe it on stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// loadConfig reads the config file named by the persistent --config flag.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	return config.Load(path)
}

// engineOptions builds the engine options shared by the CLI commands.
// Provider flags override the config file.
func engineOptions(cfg config.Config, providerName, model, ollamaURL string, indent int, stream bool) ([]fxfmt.Option, error) {
	opts := []fxfmt.Option{
		fxfmt.WithIndentSize(indent),
		fxfmt.WithMaxDepth(cfg.Format.MaxDepth),
	}

	// Timeout and streaming must precede the provider option to take effect.
	if cfg.AI.TimeoutSeconds > 0 {
		opts = append(opts, fxfmt.WithTimeout(time.Duration(cfg.AI.TimeoutSeconds)*time.Second))
	}
	if stream {
		opts = append(opts, fxfmt.WithStreamCallback(func(token string) {
			fmt.Print(token)
		}))
	}

	if providerName == "" {
		providerName = cfg.AI.Provider
	}
	if model == "" {
		model = cfg.AI.Model
	}
	if ollamaURL == "" {
		ollamaURL = cfg.AI.OllamaURL
	}

	switch providerName {
	case "anthropic":
		opts = append(opts, fxfmt.WithAnthropic(model))
	case "ollama":
		opts = append(opts, fxfmt.WithOllama(ollamaURL, model))
	case "openrouter":
		opts = append(opts, fxfmt.WithOpenRouter(model))
	case "none":
	default:
		return nil, fmt.Errorf("unknown provider: %s (use anthropic, ollama, openrouter, or none)", providerName)
	}

	return opts, nil
}
