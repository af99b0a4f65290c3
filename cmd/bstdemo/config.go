package main

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of a demo run.
type Config struct {
	Keys      []int `yaml:"keys"`
	Insert    []int `yaml:"insert"`
	Rebalance bool  `yaml:"rebalance"`
	Color     bool  `yaml:"color"`
}

var defaultConfig = Config{
	Keys:      []int{1, 7, 4, 23, 8, 9, 4, 3, 5, 7, 9, 67, 6345, 324},
	Insert:    []int{100, 200, 300},
	Rebalance: true,
	Color:     true,
}

// LoadConfig reads a YAML config file. Settings missing from the file keep
// their default values. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig
	config.Keys = slices.Clone(defaultConfig.Keys)
	config.Insert = slices.Clone(defaultConfig.Insert)
	if path == "" {
		return &config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &config, nil
}

// WriteDefaultConfig writes the default settings to path.
func WriteDefaultConfig(path string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
