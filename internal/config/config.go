package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/facturo-dev/facturo/internal/vat"
)

// FileName is the per-project configuration file.
const FileName = "facturo.yaml"

// Environment overrides, read from the process environment. The CLI
// entry point honors a .env file.
const (
	envVATRate    = "FACTURO_VAT_RATE"
	envVATEnabled = "FACTURO_VAT_ENABLED"
)

// Config represents the top-level facturo.yaml configuration.
type Config struct {
	Organization OrganizationConfig `yaml:"organization"`
	VAT          VATConfig          `yaml:"vat"`
	Paths        PathsConfig        `yaml:"paths"`
}

// OrganizationConfig identifies the exporting organization.
type OrganizationConfig struct {
	Name string `yaml:"name"`
}

// VATConfig is the organization-wide tax setting. Rate is a decimal
// fraction, e.g. 0.20.
type VATConfig struct {
	Enabled bool    `yaml:"enabled"`
	Rate    float64 `yaml:"rate"`
}

// PathsConfig locates the data and export directories, relative to the
// project root.
type PathsConfig struct {
	Data    string `yaml:"data"`
	Exports string `yaml:"exports"`
}

// Load reads a facturo.yaml file from disk and applies environment
// overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project:
// the standard French VAT rate and conventional directory names.
func Default(organizationName string) *Config {
	return &Config{
		Organization: OrganizationConfig{
			Name: organizationName,
		},
		VAT: VATConfig{
			Enabled: true,
			Rate:    0.20,
		},
		Paths: PathsConfig{
			Data:    "data",
			Exports: "exports",
		},
	}
}

// TaxConfig converts the YAML VAT section into the engine's vat.Config.
func (c *Config) TaxConfig() (vat.Config, error) {
	return vat.NewConfig(c.VAT.Enabled, decimal.NewFromFloat(c.VAT.Rate))
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(envVATRate); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", envVATRate, err)
		}
		cfg.VAT.Rate = rate
	}
	if v := os.Getenv(envVATEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", envVATEnabled, err)
		}
		cfg.VAT.Enabled = enabled
	}
	return nil
}
