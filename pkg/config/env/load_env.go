package env

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const pathVar = "ENV_PATH"

// ResolvePath returns ENV_PATH when set, otherwise defaultPath.
func ResolvePath(defaultPath string) string {
	if p := os.Getenv(pathVar); p != "" {
		return p
	}
	return defaultPath
}

// LoadDotEnv loads variables from the .env file found by ResolvePath.
// Variables already present in the process are not overridden. A missing or
// unreadable file is an error only for the local environment (env "" or "local").
func LoadDotEnv(env string, defaultPath string) error {
	envPath := ResolvePath(defaultPath)

	if err := godotenv.Load(envPath); err != nil {
		if env == "local" || env == "" {
			return fmt.Errorf("load %s: %w", envPath, err)
		}
		slog.Debug("Skipping .env ...", "path", envPath, "env", env)
		return nil
	}

	slog.Debug("Loaded .env", "path", envPath)
	return nil
}
