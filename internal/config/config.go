package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds PhishSense configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Model    ModelConfig    `yaml:"model"`
	Decision DecisionConfig `yaml:"decision"`
}

type ServerConfig struct {
	Addr                     string `yaml:"addr"` // HTTP listen address, e.g. ":8080"
	MaxRequestBodyBytes      int64  `yaml:"max_request_body_bytes"`
	ReadHeaderTimeoutSeconds int    `yaml:"read_header_timeout_seconds"`
	ReadTimeoutSeconds       int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds      int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds       int    `yaml:"idle_timeout_seconds"`
}

type ModelConfig struct {
	// BundleDir holds phishing_rf.onnx and feature_columns.json.
	BundleDir string `yaml:"bundle_dir"`
}

type DecisionConfig struct {
	// Threshold is the phishing cutoff on the adjusted probability.
	Threshold float64 `yaml:"threshold"`
}

// Load reads configuration from a YAML file.
// If the file doesn't exist, it returns a default config and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:                     ":8080",
			MaxRequestBodyBytes:      16384,
			ReadHeaderTimeoutSeconds: 5,
			ReadTimeoutSeconds:       10,
			WriteTimeoutSeconds:      10,
			IdleTimeoutSeconds:       60,
		},
		Model: ModelConfig{
			BundleDir: "models",
		},
		Decision: DecisionConfig{
			Threshold: 0.6,
		},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.MaxRequestBodyBytes == 0 {
		cfg.Server.MaxRequestBodyBytes = 16384
	}
	if cfg.Server.ReadHeaderTimeoutSeconds == 0 {
		cfg.Server.ReadHeaderTimeoutSeconds = 5
	}
	if cfg.Server.ReadTimeoutSeconds == 0 {
		cfg.Server.ReadTimeoutSeconds = 10
	}
	if cfg.Server.WriteTimeoutSeconds == 0 {
		cfg.Server.WriteTimeoutSeconds = 10
	}
	if cfg.Server.IdleTimeoutSeconds == 0 {
		cfg.Server.IdleTimeoutSeconds = 60
	}

	if cfg.Model.BundleDir == "" {
		cfg.Model.BundleDir = "models"
	}

	if cfg.Decision.Threshold == 0 {
		cfg.Decision.Threshold = 0.6
	}
}
