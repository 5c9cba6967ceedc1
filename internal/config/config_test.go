package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("GOOGLE_FACT_CHECK_API_KEY", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %q", cfg.Port)
	}
	if cfg.FactCheckAPIKey != "secret" {
		t.Errorf("expected API key from env, got %q", cfg.FactCheckAPIKey)
	}
	if cfg.FactCheckBaseURL != "https://factchecktools.googleapis.com/v1alpha1" {
		t.Errorf("unexpected base URL %q", cfg.FactCheckBaseURL)
	}
	if cfg.FactCheckTimeout != 10*time.Second {
		t.Errorf("expected 10s upstream timeout, got %v", cfg.FactCheckTimeout)
	}
	if cfg.RatingSource != RatingFromText {
		t.Errorf("expected rating source %q, got %q", RatingFromText, cfg.RatingSource)
	}
	if !cfg.LogPretty {
		t.Error("expected pretty logging in development")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("FACT_CHECK_BASE_URL", "http://localhost:1234/v1/")
	t.Setenv("FACT_CHECK_TIMEOUT", "2s")
	t.Setenv("FACT_CHECK_PAGE_SIZE", "25")
	t.Setenv("FACT_CHECK_RATING_SOURCE", RatingFromTextualRating)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.FactCheckBaseURL != "http://localhost:1234/v1" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.FactCheckBaseURL)
	}
	if cfg.FactCheckTimeout != 2*time.Second {
		t.Errorf("expected 2s, got %v", cfg.FactCheckTimeout)
	}
	if cfg.FactCheckPageSize != 25 {
		t.Errorf("expected page size 25, got %d", cfg.FactCheckPageSize)
	}
	if cfg.RatingSource != RatingFromTextualRating {
		t.Errorf("unexpected rating source %q", cfg.RatingSource)
	}
	if cfg.LogPretty {
		t.Error("expected JSON logging outside development")
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("FACT_CHECK_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FactCheckTimeout != 10*time.Second {
		t.Errorf("expected default timeout, got %v", cfg.FactCheckTimeout)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := map[string][2]string{
		"port":          {"PORT", "http"},
		"base url":      {"FACT_CHECK_BASE_URL", "not a url"},
		"rating source": {"FACT_CHECK_RATING_SOURCE", "stars"},
		"page size":     {"FACT_CHECK_PAGE_SIZE", "-1"},
	}

	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", kv[0], kv[1])
			}
		})
	}
}
