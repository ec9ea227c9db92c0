package graph

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config controls which sources are inspected
type Config struct {
	SkipTests bool `yaml:"skipTests"`
	Recursive bool `yaml:"recursive"`
	// IncludeLocal includes declarations nested in function, closure and accessor bodies
	IncludeLocal bool `yaml:"includeLocal"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		SkipTests: true,
		Recursive: true,
	}
}

// LoadConfig loads YAML configuration from URL, absent keys keep their defaults
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	config := DefaultConfig()
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	return config, nil
}
