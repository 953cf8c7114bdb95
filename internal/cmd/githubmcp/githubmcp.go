// Package githubmcp parses command flags and runs the MCP server on stdio.
package githubmcp

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/okulweb/github-mcp/internal/platform/config"
	"github.com/okulweb/github-mcp/internal/platform/errors"
	"github.com/okulweb/github-mcp/internal/platform/otel"
	"github.com/okulweb/github-mcp/internal/services/mcp/service"
)

// Config holds command configuration.
type Config struct {
	Token      string `env:"GITHUB_PERSONAL_ACCESS_TOKEN"`
	APIBaseURL string `env:"GITHUB_API_URL"`
}

// ParseConfig parses environment and flags into a Config. The token is
// env-only on purpose; flags show up in process listings.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.APIBaseURL, "api-url", cfg.APIBaseURL, "GitHub API base URL (for GitHub Enterprise)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// CheckCredential verifies a token is configured. It runs before any
// transport or registry work so a missing token fails fast with remediation
// on stderr instead of surfacing later as API errors.
func CheckCredential(cfg Config) error {
	if cfg.Token == "" {
		return errors.New(errors.CodeMissingCredential,
			"GITHUB_PERSONAL_ACCESS_TOKEN is not set\n"+
				"export a personal access token with repo scope before starting the server")
	}
	return nil
}

// Run starts the MCP server and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "github-mcp")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	return service.Run(ctx, service.Config{Token: cfg.Token, APIBaseURL: cfg.APIBaseURL})
}
