// Package config loads service configuration from a YAML file with
// environment overrides. The AI credential is only ever read from the
// environment; its absence simply disables the live review path.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full service configuration
type Config struct {
	Server struct {
		Port        int `yaml:"port"`
		MetricsPort int `yaml:"metrics_port"`
	} `yaml:"server"`

	Review struct {
		Model   string `yaml:"model"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"review"`
}

// Defaults returns the configuration used when no file is present
func Defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.MetricsPort = 9090
	cfg.Review.Model = "gemini-2.0-flash"
	return cfg
}

// Load reads the YAML file at path, then applies environment overrides. A
// missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("REVIEW_MODEL"); v != "" {
		cfg.Review.Model = v
	}
	if v := os.Getenv("REVIEW_BASE_URL"); v != "" {
		cfg.Review.BaseURL = v
	}

	return cfg, nil
}

// APIKey returns the AI service credential, empty when not configured
func APIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}
