package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-epub2md/internal/config"
)

// envPrefix marks environment variables read by epub2md.
const envPrefix = "EPUB2MD_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // EPUB2MD_CONFIG: config file name or path
	Pandoc     string // EPUB2MD_PANDOC: pandoc executable
	LogLevel   string // EPUB2MD_LOG_LEVEL: debug, info, warn, error
	LogFormat  string // EPUB2MD_LOG_FORMAT: console, json
}

// knownEnvVars lists valid EPUB2MD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"EPUB2MD_CONFIG":     true,
	"EPUB2MD_PANDOC":     true,
	"EPUB2MD_LOG_LEVEL":  true,
	"EPUB2MD_LOG_FORMAT": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath: getenv("EPUB2MD_CONFIG"),
		Pandoc:     getenv("EPUB2MD_PANDOC"),
		LogLevel:   getenv("EPUB2MD_LOG_LEVEL"),
		LogFormat:  getenv("EPUB2MD_LOG_FORMAT"),
	}
}

// warnUnknownEnvVars writes a warning for each unrecognized EPUB2MD_* variable.
// Helps catch typos like EPUB2MD_PANDOC_PATH instead of EPUB2MD_PANDOC.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overlays set environment values onto cfg.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Pandoc != "" {
		cfg.Pandoc.Path = env.Pandoc
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		cfg.Log.Format = env.LogFormat
	}
}
