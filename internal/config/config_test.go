package config

import (
	"testing"
	"time"
)

func TestLoadPicksUpGatewayEnvVars(t *testing.T) {
	t.Setenv("GEWE_BASE_URL", "http://gw.local/v2/api")
	t.Setenv("GEWE_TOKEN", "tok-from-env")
	t.Setenv("GEWE_APP_ID", "app-from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GeweBaseURL != "http://gw.local/v2/api" {
		t.Fatalf("GeweBaseURL = %q", cfg.GeweBaseURL)
	}
	if cfg.GeweToken != "tok-from-env" {
		t.Fatalf("GeweToken = %q", cfg.GeweToken)
	}
	if cfg.GeweAppID != "app-from-env" {
		t.Fatalf("GeweAppID = %q", cfg.GeweAppID)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Fatalf("HTTPTimeout = %s", cfg.HTTPTimeout)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.StorageType != "bbolt" {
		t.Fatalf("StorageType = %q", cfg.StorageType)
	}
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SECONDS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero http_timeout_seconds")
	}
}
