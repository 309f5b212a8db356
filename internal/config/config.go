// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. Numeric fields are pointers so an explicit zero (a legitimate
// threshold or band value) is distinguishable from an absent key.
type Config struct {
	// Classification
	Threshold      *int `json:"threshold,omitempty"`       // Classification threshold (0-100)
	BorderlineBand *int `json:"borderline_band,omitempty"` // Width of the borderline band below the threshold
	// Batch processing
	Workers *int `json:"workers,omitempty"` // Parallel workers for batch scoring
	// Collaborator
	APIKey string `json:"api_key,omitempty"` // Gemini API key; empty disables the collaborator
	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print boxed score summaries
}

// Settings is the resolved configuration after merging a config file with
// defaults. All fields carry concrete values.
type Settings struct {
	Threshold      int
	BorderlineBand int
	Workers        int
	APIKey         string
	Verbose        bool
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// Resolve fills unset fields from defaults and returns the concrete settings.
// A key present in the file wins even when its value is zero.
func (c *Config) Resolve(defaults Settings) Settings {
	result := defaults

	if c.Threshold != nil {
		result.Threshold = *c.Threshold
	}
	if c.BorderlineBand != nil {
		result.BorderlineBand = *c.BorderlineBand
	}
	if c.Workers != nil {
		result.Workers = *c.Workers
	}
	if c.APIKey != "" {
		result.APIKey = c.APIKey
	}
	if c.Verbose {
		result.Verbose = true
	}

	return result
}

// Validate checks that the resolved settings have valid values.
func (s *Settings) Validate() error {
	if s.Threshold < 0 || s.Threshold > 100 {
		return fmt.Errorf("config error: 'threshold' must be in [0,100]")
	}
	if s.BorderlineBand < 0 || s.BorderlineBand > 100 {
		return fmt.Errorf("config error: 'borderline_band' must be in [0,100]")
	}
	if s.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	return nil
}
