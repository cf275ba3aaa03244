package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Source.URL != "https://api.artic.edu/api/v1" {
		t.Errorf("Source.URL = %q", cfg.Source.URL)
	}
	if cfg.Source.PageSize != 12 {
		t.Errorf("Source.PageSize = %d, want 12", cfg.Source.PageSize)
	}
	if cfg.Source.Timeout != 30*time.Second {
		t.Errorf("Source.Timeout = %v, want 30s", cfg.Source.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
source:
  url: http://localhost:8080/api/v1
  page_size: 24
  timeout: 5s
selection:
  max_target: 50
logging:
  level: debug
metrics:
  listen: 127.0.0.1:9464
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(viper.New(), path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if cfg.Source.URL != "http://localhost:8080/api/v1" {
		t.Errorf("Source.URL = %q", cfg.Source.URL)
	}
	if cfg.Source.PageSize != 24 {
		t.Errorf("Source.PageSize = %d, want 24", cfg.Source.PageSize)
	}
	if cfg.Source.Timeout != 5*time.Second {
		t.Errorf("Source.Timeout = %v, want 5s", cfg.Source.Timeout)
	}
	if cfg.Selection.MaxTarget != 50 {
		t.Errorf("Selection.MaxTarget = %d, want 50", cfg.Selection.MaxTarget)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Metrics.Listen != "127.0.0.1:9464" {
		t.Errorf("Metrics.Listen = %q", cfg.Metrics.Listen)
	}
	// Keys absent from the file keep their defaults
	if cfg.Source.UserAgent != "artworks/1.0" {
		t.Errorf("Source.UserAgent = %q, want default", cfg.Source.UserAgent)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("source:\n  page_size: 24\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("ARTWORKS_SOURCE_PAGE_SIZE", "6")
	t.Setenv("ARTWORKS_SOURCE_URL", "http://example.test")

	cfg, err := loadConfig(viper.New(), path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Source.PageSize != 6 {
		t.Errorf("Source.PageSize = %d, want 6 from env", cfg.Source.PageSize)
	}
	if cfg.Source.URL != "http://example.test" {
		t.Errorf("Source.URL = %q, want env value", cfg.Source.URL)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("source:\n  page_size: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := loadConfig(viper.New(), path)
	if err == nil || !strings.Contains(err.Error(), "page_size") {
		t.Errorf("loadConfig() error = %v, want page_size validation error", err)
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("loadConfig() with missing explicit file should fail")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty url", func(c *Config) { c.Source.URL = " " }, "source.url"},
		{"negative page size", func(c *Config) { c.Source.PageSize = -1 }, "source.page_size"},
		{"zero timeout", func(c *Config) { c.Source.Timeout = 0 }, "source.timeout"},
		{"zero max target", func(c *Config) { c.Selection.MaxTarget = 0 }, "selection.max_target"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}
}
