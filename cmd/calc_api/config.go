package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/safe-calc/internal/calc"
	"github.com/DjordjeVuckovic/safe-calc/internal/router"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage/factory"
	"github.com/DjordjeVuckovic/safe-calc/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type CalcApiConfig struct {
	StorageConfig factory.StorageConfig
	MaxDepth      int
	MaxLength     int
}

func (as *AppConfig) Load() (*CalcApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/calc_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	maxDepth, err := intEnv("CALC_MAX_DEPTH", calc.DefaultMaxDepth)
	if err != nil {
		return nil, err
	}
	maxLength, err := intEnv("CALC_MAX_LENGTH", router.DefaultMaxExpressionLength)
	if err != nil {
		return nil, err
	}

	return &CalcApiConfig{
		StorageConfig: *storageCfg,
		MaxDepth:      maxDepth,
		MaxLength:     maxLength,
	}, nil
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
