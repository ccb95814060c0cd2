package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"RIDEAPP_API_BASE_URL", "RIDEAPP_API_TIMEOUT", "RIDEAPP_HTTP_ADDR", "RIDEAPP_DB_DSN",
		"RIDEAPP_REDIS_ADDR", "RIDEAPP_SESSION_TTL", "RIDEAPP_CONFIRM_DEBOUNCE", "RIDEAPP_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != DefaultAPIBaseURL {
		t.Errorf("base url = %q, want %q", cfg.API.BaseURL, DefaultAPIBaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("timeout = %s", cfg.API.Timeout)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.HTTP.Addr)
	}
	if cfg.Redis.Addr != "" || cfg.DB.DSN != "" {
		t.Errorf("expected redis and db to be disabled by default")
	}
	if cfg.Session.ConfirmDebounce != time.Second {
		t.Errorf("confirm debounce = %s", cfg.Session.ConfirmDebounce)
	}
	if cfg.Log.Level != "INFO" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RIDEAPP_API_BASE_URL", "http://localhost:9000/")
	t.Setenv("RIDEAPP_API_TIMEOUT", "5")
	t.Setenv("RIDEAPP_SESSION_TTL", "2m")
	t.Setenv("RIDEAPP_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:9000" {
		t.Errorf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("timeout = %s", cfg.API.Timeout)
	}
	if cfg.Session.TTL != 2*time.Minute {
		t.Errorf("ttl = %s", cfg.Session.TTL)
	}
	if cfg.Log.Level != "DEBUG" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadRejectsRelativeBaseURL(t *testing.T) {
	t.Setenv("RIDEAPP_API_BASE_URL", "ride/estimate")
	if _, err := Load(); err != ErrInvalidBaseURL {
		t.Fatalf("expected ErrInvalidBaseURL, got %v", err)
	}
}
