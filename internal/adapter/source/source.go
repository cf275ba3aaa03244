package source

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/mmcdole/artworks/internal/adapter"
	"github.com/mmcdole/artworks/internal/adapter/source/artic"
	"github.com/mmcdole/artworks/internal/domain"
)

// NewClient creates the collection client for the configured endpoint.
// This factory keeps callers independent of the concrete HTTP client.
func NewClient(cfg *adapter.SourceConfig, logger *slog.Logger) (domain.PageRepository, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}

	if cfg.URL == "" {
		return nil, fmt.Errorf("source URL is required")
	}

	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid source URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported source URL scheme: %q", u.Scheme)
	}

	return artic.NewClient(cfg.URL, logger,
		artic.WithTimeout(cfg.Timeout),
		artic.WithUserAgent(cfg.UserAgent),
	), nil
}

// NewClientFromConfig creates a page repository from the application config
func NewClientFromConfig(cfg *adapter.Config, logger *slog.Logger) (domain.PageRepository, error) {
	return NewClient(&cfg.Source, logger)
}
