package config

import "testing"

func validConfig() *Config {
	return defaultConfig()
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateNilConfig(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Fatal("expected an error for nil config")
	}
}

func TestValidateBlankAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Addr = "  "
	if err := Validate(cfg); err == nil {
		t.Fatal("expected an error for blank addr")
	}
}

func TestValidateNonPositiveBodyLimit(t *testing.T) {
	cfg := validConfig()
	cfg.Server.MaxRequestBodyBytes = -1
	if err := Validate(cfg); err == nil {
		t.Fatal("expected an error for negative body limit")
	}
}

func TestValidateNegativeTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Server.ReadTimeoutSeconds = -1
	if err := Validate(cfg); err == nil {
		t.Fatal("expected an error for negative timeout")
	}
}

func TestValidateBlankBundleDir(t *testing.T) {
	cfg := validConfig()
	cfg.Model.BundleDir = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("expected an error for blank bundle dir")
	}
}

func TestValidateThresholdRange(t *testing.T) {
	for _, bad := range []float64{0, -0.1, 1.01} {
		cfg := validConfig()
		cfg.Decision.Threshold = bad
		if err := Validate(cfg); err == nil {
			t.Errorf("expected an error for threshold %v", bad)
		}
	}

	cfg := validConfig()
	cfg.Decision.Threshold = 1
	if err := Validate(cfg); err != nil {
		t.Errorf("threshold 1 should be accepted: %v", err)
	}
}
