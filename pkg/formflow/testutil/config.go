package testutil

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds E2E run settings. Values come from defaults, then an
// optional YAML file, then environment variables, in that order.
type Config struct {
	Headless bool          `yaml:"headless"`
	Timeout  time.Duration `yaml:"timeout"`
	SlowMo   time.Duration `yaml:"slow_mo"`
}

// DefaultConfig returns sensible defaults for E2E testing.
func DefaultConfig() Config {
	return Config{
		Headless: true,
		Timeout:  30 * time.Second,
	}
}

// LoadConfig reads settings from path if it exists, then applies
// environment overrides (HEADLESS, E2E_TIMEOUT, E2E_SLOWMO). A missing
// file is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults apply
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("HEADLESS"); v != "" {
		cfg.Headless = v != "false"
	}
	if v := os.Getenv("E2E_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("parse E2E_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv("E2E_SLOWMO"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("parse E2E_SLOWMO: %w", err)
		}
		cfg.SlowMo = d
	}
	return cfg, nil
}
