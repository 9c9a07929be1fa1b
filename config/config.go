package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the decimation configuration.
type Config struct {
	Decimation Decimation `yaml:"decimation"`
	Log        LogConfig  `yaml:"log"`
}

// Decimation selects the reduction method and its parameters.
type Decimation struct {
	Method      string `yaml:"method"`      // none, group, stride or count
	Count       int    `yaml:"count"`       // target point count for the count method
	Step        int    `yaml:"step"`        // points skipped between kept ones for the stride method
	Strategy    string `yaml:"strategy"`    // None, Linear or MinMaxSpikeDetection
	Logarithmic bool   `yaml:"logarithmic"` // logarithmic index distribution for the count method
	Endpoint    bool   `yaml:"endpoint"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a default configuration.
func Default() *Config {
	return &Config{
		Decimation: Decimation{
			Method:   "count",
			Count:    1000,
			Step:     0,
			Strategy: "MinMaxSpikeDetection",
			Endpoint: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) ensureDefaults() {
	def := Default()

	if c.Decimation.Method == "" {
		c.Decimation.Method = def.Decimation.Method
	}
	if c.Decimation.Count == 0 {
		c.Decimation.Count = def.Decimation.Count
	}
	if c.Decimation.Strategy == "" {
		c.Decimation.Strategy = def.Decimation.Strategy
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}
