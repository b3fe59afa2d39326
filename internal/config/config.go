// Package config loads and saves run configurations as YAML and ships
// a small set of named presets per problem.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTau   = 10.0
	DefaultSteps = 1001
)

type Config struct {
	Problem string             `yaml:"problem"`
	Stepper string             `yaml:"stepper"`
	Tau     float64            `yaml:"tau"`
	Steps   int                `yaml:"steps"`
	Init    []float64          `yaml:"init,omitempty"`
	Params  map[string]float64 `yaml:"params,omitempty"`
	DataDir string             `yaml:"data_dir,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem: "pendulum",
		Stepper: "rk4",
		Tau:     DefaultTau,
		Steps:   DefaultSteps,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
