package source

import (
	"strings"
	"testing"

	"github.com/mmcdole/artworks/internal/adapter"
)

func TestNewClient_Validation(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *adapter.SourceConfig
		errorMsg string
	}{
		{"nil config", nil, "source config is nil"},
		{"empty url", &adapter.SourceConfig{}, "source URL is required"},
		{"bad scheme", &adapter.SourceConfig{URL: "ftp://example.test"}, "unsupported source URL scheme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.cfg, adapter.NullLogger())
			if err == nil || !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("NewClient() error = %v, want %q", err, tt.errorMsg)
			}
		})
	}
}

func TestNewClientFromConfig(t *testing.T) {
	repo, err := NewClientFromConfig(adapter.DefaultConfig(), adapter.NullLogger())
	if err != nil {
		t.Fatalf("NewClientFromConfig() error = %v", err)
	}
	if repo == nil {
		t.Fatal("NewClientFromConfig() returned nil repository")
	}
}
