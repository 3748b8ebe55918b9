package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"fxfmt/internal/beautify"
	"fxfmt/internal/config"
	"fxfmt/internal/optimize"
	"fxfmt/internal/provider"
	"fxfmt/internal/server"
	"fxfmt/internal/store"
)

var (
	serveAddr     string
	serveProvider string
	serveModel    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the formatting HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr = serveAddr
		}
		if serveProvider != "" {
			cfg.AI.Provider = serveProvider
		}
		if serveModel != "" {
			cfg.AI.Model = serveModel
		}

		opts := []server.Option{
			server.WithVersion(version),
			server.WithBeautifier(beautify.New(
				beautify.WithIndentSize(cfg.Format.Indent),
				beautify.WithMaxDepth(cfg.Format.MaxDepth),
			)),
		}

		p, err := buildProvider(cfg.AI)
		if err != nil {
			return err
		}
		if p != nil {
			opts = append(opts, server.WithOptimizer(optimize.New(p)))
		}

		if !cfg.History.Disabled {
			h, err := store.NewSQLite(cfg.History.Path)
			if err != nil {
				return err
			}
			defer h.Close()
			opts = append(opts, server.WithHistory(h))
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		httpSrv := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: server.New(opts...),
		}

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			log.Printf("fxfmt listening on %s", cfg.Server.Addr)
			if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpSrv.Shutdown(shutdownCtx)
		})
		return g.Wait()
	},
}

// buildProvider constructs the optimizer backend from config. A "none"
// provider disables the /simplify endpoint's AI call.
func buildProvider(ai config.AI) (provider.Provider, error) {
	// An unset timeout keeps each provider's default rather than disabling
	// the http.Client timeout.
	timeout := time.Duration(ai.TimeoutSeconds) * time.Second

	switch ai.Provider {
	case "anthropic":
		var opts []provider.AnthropicOption
		if timeout > 0 {
			opts = append(opts, provider.WithAnthropicTimeout(timeout))
		}
		if ai.Model != "" {
			opts = append(opts, provider.WithAnthropicModel(ai.Model))
		}
		return provider.NewAnthropic(opts...), nil
	case "ollama":
		var opts []provider.OllamaOption
		if timeout > 0 {
			opts = append(opts, provider.WithOllamaTimeout(timeout))
		}
		if ai.OllamaURL != "" {
			opts = append(opts, provider.WithOllamaURL(ai.OllamaURL))
		}
		if ai.Model != "" {
			opts = append(opts, provider.WithOllamaModel(ai.Model))
		}
		return provider.NewOllama(opts...), nil
	case "openrouter":
		var opts []provider.OpenRouterOption
		if timeout > 0 {
			opts = append(opts, provider.WithOpenRouterTimeout(timeout))
		}
		if ai.Model != "" {
			opts = append(opts, provider.WithOpenRouterModel(ai.Model))
		}
		return provider.NewOpenRouter(opts...), nil
	case "none", "":
		return nil, nil
	}
	return nil, errors.New("unknown provider: " + ai.Provider + " (use anthropic, ollama, openrouter, or none)")
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8000", "listen address")
	serveCmd.Flags().StringVar(&serveProvider, "provider", "", "LLM provider: anthropic, ollama, openrouter, or none")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "LLM model name")
}
