package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Source    SourceConfig    `mapstructure:"source"`
	Selection SelectionConfig `mapstructure:"selection"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// SourceConfig holds remote collection configuration
type SourceConfig struct {
	URL       string        `mapstructure:"url"`       // Collection API base URL
	PageSize  int           `mapstructure:"page_size"` // Records requested per page
	Timeout   time.Duration `mapstructure:"timeout"`   // HTTP client timeout
	UserAgent string        `mapstructure:"user_agent"`
}

// SelectionConfig holds bulk selection limits
type SelectionConfig struct {
	MaxTarget int `mapstructure:"max_target"` // Largest count accepted by select-N
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// MetricsConfig holds the optional Prometheus listener
type MetricsConfig struct {
	Listen string `mapstructure:"listen"` // e.g. "127.0.0.1:9464"; empty disables
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			URL:       "https://api.artic.edu/api/v1",
			PageSize:  12,
			Timeout:   30 * time.Second,
			UserAgent: "artworks/1.0",
		},
		Selection: SelectionConfig{
			MaxTarget: 10000,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "artworks", "artworks.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "artworks", "artworks.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "artworks")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "artworks")
	}
}

// LoadConfig loads configuration from file and environment.
// An explicit path takes precedence over the default search locations.
func LoadConfig(path string) (*Config, error) {
	return loadConfig(viper.New(), path)
}

func loadConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	setDefaults(v, cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides (ARTWORKS_SOURCE_URL, ARTWORKS_LOGGING_LEVEL, ...)
	v.SetEnvPrefix("ARTWORKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys absent from the file
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("source.url", cfg.Source.URL)
	v.SetDefault("source.page_size", cfg.Source.PageSize)
	v.SetDefault("source.timeout", cfg.Source.Timeout)
	v.SetDefault("source.user_agent", cfg.Source.UserAgent)
	v.SetDefault("selection.max_target", cfg.Selection.MaxTarget)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("metrics.listen", cfg.Metrics.Listen)
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source.URL) == "" {
		return fmt.Errorf("source.url is required")
	}
	if c.Source.PageSize <= 0 {
		return fmt.Errorf("source.page_size must be positive (got %d)", c.Source.PageSize)
	}
	if c.Source.Timeout <= 0 {
		return fmt.Errorf("source.timeout must be positive (got %s)", c.Source.Timeout)
	}
	if c.Selection.MaxTarget <= 0 {
		return fmt.Errorf("selection.max_target must be positive (got %d)", c.Selection.MaxTarget)
	}
	return nil
}

// GetConfigPath returns the default config directory path
func GetConfigPath() string {
	return defaultConfigPath()
}
