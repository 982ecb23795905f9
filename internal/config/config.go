package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Explore ExploreConfig `yaml:"explore"`
	Views   ViewsConfig   `yaml:"views"`
}

type ServerConfig struct {
	HTTPPort    int `yaml:"http_port"`
	MetricsPort int `yaml:"metrics_port"`
}

type DatasetConfig struct {
	Source string `yaml:"source"` // csv, sqlite or postgres
	Path   string `yaml:"path"`   // csv/sqlite file path
	DSN    string `yaml:"dsn"`    // postgres connection URL
}

type ExploreConfig struct {
	TopCountries  int `yaml:"top_countries"`
	PreviewRows   int `yaml:"preview_rows"`
	HistogramBins int `yaml:"histogram_bins"`
}

type ViewsConfig struct {
	Path string `yaml:"path"` // badger directory for saved views
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:    4545,
			MetricsPort: 9410,
		},
		Dataset: DatasetConfig{
			Source: "csv",
			Path:   "./data/catalog.csv",
		},
		Explore: ExploreConfig{
			TopCountries:  10,
			PreviewRows:   10,
			HistogramBins: 30,
		},
		Views: ViewsConfig{
			Path: "./data/views",
		},
	}
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Dataset.Source {
	case "", "csv", "sqlite", "postgres":
	default:
		return fmt.Errorf("invalid dataset source %q", c.Dataset.Source)
	}
	if c.Dataset.Source == "postgres" && c.Dataset.DSN == "" {
		return fmt.Errorf("dataset source postgres requires a dsn")
	}
	return nil
}

// EnsureDirectories creates required directories
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.Views.Path,
		filepath.Dir(c.Dataset.Path),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}
