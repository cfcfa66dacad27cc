package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"io/fs"
	"os"
	"strings"
)

// Config settings for the converter console.
// Only diagnostics are configurable; what is printed on stdout is not.
type Config struct {
	// LogLevel one of debug, info, warn, error, none
	LogLevel string
}

// Load reads settings from the environment. files are dotenv files loaded first;
// missing files are ignored and variables already set in the environment win.
func Load(files ...string) (Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading env file [%v]: %w", file, err)
		}
	}

	cfg := Config{
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "error")),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "none":
	default:
		return Config{}, fmt.Errorf("unknown log level: %v", cfg.LogLevel)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
