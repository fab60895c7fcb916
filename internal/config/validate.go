package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the loaded config for required fields and safe values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return errors.New("server.addr must be set")
	}
	if cfg.Server.MaxRequestBodyBytes <= 0 {
		return fmt.Errorf("server.max_request_body_bytes must be positive, got %d", cfg.Server.MaxRequestBodyBytes)
	}
	if cfg.Server.ReadHeaderTimeoutSeconds < 0 ||
		cfg.Server.ReadTimeoutSeconds < 0 ||
		cfg.Server.WriteTimeoutSeconds < 0 ||
		cfg.Server.IdleTimeoutSeconds < 0 {
		return errors.New("server timeouts must not be negative")
	}

	if strings.TrimSpace(cfg.Model.BundleDir) == "" {
		return errors.New("model.bundle_dir must be set")
	}

	if cfg.Decision.Threshold <= 0 || cfg.Decision.Threshold > 1 {
		return fmt.Errorf("decision.threshold must be in (0, 1], got %v", cfg.Decision.Threshold)
	}

	return nil
}
