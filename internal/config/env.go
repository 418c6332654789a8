package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables honored in CLI mode, where no preference store is
// available.
const (
	EnvSongsFile    = "SONGBOOK_FILE"
	EnvDebugLogging = "SONGBOOK_DEBUG"
)

// Env holds command-line mode configuration resolved from the process
// environment.
type Env struct {
	SongsFile    string
	DebugLogging bool
}

// FromEnv loads a .env file from the invocation directory if one exists,
// then resolves configuration from environment variables with the same
// defaults the windowed interface uses.
func FromEnv() Env {
	_ = godotenv.Load()

	cfg := Env{
		SongsFile:    DefaultSongsFile,
		DebugLogging: DefaultDebugLogging,
	}
	if path := strings.TrimSpace(os.Getenv(EnvSongsFile)); path != "" {
		cfg.SongsFile = path
	}
	if value := strings.TrimSpace(os.Getenv(EnvDebugLogging)); value != "" {
		if debug, err := strconv.ParseBool(value); err == nil {
			cfg.DebugLogging = debug
		}
	}
	return cfg
}
