// Package config provides configuration handling for the shop service.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete service configuration.
type Config struct {
	Service string       `yaml:"service"`
	Env     string       `yaml:"env"`
	Addr    string       `yaml:"addr"`
	Catalog []PresetSeed `yaml:"catalog"`
}

// PresetSeed describes one preset model loaded into the catalog at startup.
type PresetSeed struct {
	Name         string   `yaml:"name"`
	Manufacturer string   `yaml:"manufacturer"`
	Parts        []string `yaml:"parts"`
}

// New creates a Config with default values and an empty catalog.
func New() *Config {
	return &Config{
		Service: "pcshop",
		Env:     "dev",
		Addr:    ":8080",
	}
}

// LoadFile loads YAML configuration from path and merges it over the
// defaults; zero-valued fields keep their default.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing YAML config: %w", err)
	}

	c.merge(&loaded)
	return nil
}

func (c *Config) merge(loaded *Config) {
	if loaded.Service != "" {
		c.Service = loaded.Service
	}
	if loaded.Env != "" {
		c.Env = loaded.Env
	}
	if loaded.Addr != "" {
		c.Addr = loaded.Addr
	}
	if loaded.Catalog != nil {
		c.Catalog = loaded.Catalog
	}
}
