package update

import (
	"os"
	"strconv"
	"strings"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/ai"
)

type RuntimeConfig struct {
	GeminiAPIKey          string
	GeminiModel           string
	DBPath                string
	StoreBackend          string
	RequestTimeoutSeconds int
	LogFile               string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		GeminiModel:           ai.DefaultModel,
		DBPath:                ".rosyplans.db",
		StoreBackend:          "sqlite",
		RequestTimeoutSeconds: 30,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("ROSY_GEMINI_API_KEY")); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("ROSY_GEMINI_MODEL")); v != "" {
		cfg.GeminiModel = v
	}
	if v := strings.TrimSpace(os.Getenv("ROSY_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("ROSY_STORE_BACKEND"))); v == "sqlite" || v == "file" {
		cfg.StoreBackend = v
	}
	if v, ok := getEnvInt("ROSY_REQUEST_TIMEOUT_SECONDS"); ok && v > 0 {
		cfg.RequestTimeoutSeconds = v
	}
	if v := strings.TrimSpace(os.Getenv("ROSY_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
