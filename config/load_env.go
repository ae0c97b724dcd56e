package config

import (
	"log/slog"
	"os"

	"github.com/subosito/gotenv"
)

// AppEnv returns APP_ENV, defaulting to "dev".
func AppEnv() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	return env
}

// LoadEnv loads .env and config/envs/.env.<env> into the process environment.
// Variables already set in the environment are left alone.
func LoadEnv(env string) {
	if err := gotenv.Load(".env"); err != nil {
		slog.Debug("[Config] No .env file in working directory")
	}

	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("[Config] No env file found, using OS environment",
			slog.String("file", envFile))
	}
}
