package update

import "testing"

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.GeminiModel != "gemini-3-flash-preview" {
		t.Fatalf("unexpected model default: %+v", cfg)
	}
	if cfg.StoreBackend != "sqlite" || cfg.DBPath != ".rosyplans.db" {
		t.Fatalf("unexpected storage defaults: %+v", cfg)
	}
	if cfg.RequestTimeoutSeconds != 30 {
		t.Fatalf("unexpected timeout default: %+v", cfg)
	}
	if cfg.GeminiAPIKey != "" {
		t.Fatalf("expected empty API key default: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("ROSY_GEMINI_API_KEY", "test-key")
	t.Setenv("ROSY_GEMINI_MODEL", "gemini-custom")
	t.Setenv("ROSY_DB_PATH", "data/plans.db")
	t.Setenv("ROSY_STORE_BACKEND", "file")
	t.Setenv("ROSY_REQUEST_TIMEOUT_SECONDS", "12")
	t.Setenv("ROSY_LOG_FILE", "logs/rosy.log")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.GeminiAPIKey != "test-key" || cfg.GeminiModel != "gemini-custom" {
		t.Fatalf("unexpected gemini config: %+v", cfg)
	}
	if cfg.DBPath != "data/plans.db" || cfg.StoreBackend != "file" {
		t.Fatalf("unexpected storage config: %+v", cfg)
	}
	if cfg.RequestTimeoutSeconds != 12 {
		t.Fatalf("unexpected timeout: %+v", cfg)
	}
	if cfg.LogFile != "logs/rosy.log" {
		t.Fatalf("unexpected log file: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnvRejectsBadValues(t *testing.T) {
	t.Setenv("ROSY_STORE_BACKEND", "cassette")
	t.Setenv("ROSY_REQUEST_TIMEOUT_SECONDS", "soon")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.StoreBackend != "sqlite" {
		t.Fatalf("expected backend fallback, got %q", cfg.StoreBackend)
	}
	if cfg.RequestTimeoutSeconds != 30 {
		t.Fatalf("expected timeout fallback, got %d", cfg.RequestTimeoutSeconds)
	}
}
