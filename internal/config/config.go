// Package config loads and validates epub2md configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/alnah/go-epub2md/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigTooLarge  = errors.New("config file exceeds maximum size")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// MaxFileSize limits config input to prevent memory exhaustion (1MB).
const MaxFileSize = 1 << 20

// MaxPathLength bounds path-valued fields (Linux PATH_MAX).
const MaxPathLength = 4096

// AppDir is the directory under the user config dir searched for named configs.
const AppDir = "go-epub2md"

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Log levels.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Defaults applied to empty fields.
const (
	DefaultPandocPath = "pandoc"
	DefaultLogLevel   = LevelWarn
	DefaultLogFormat  = FormatConsole
)

// Config holds all epub2md configuration.
type Config struct {
	Pandoc       PandocConfig       `yaml:"pandoc"`
	Intermediate IntermediateConfig `yaml:"intermediate"`
	Log          LogConfig          `yaml:"log"`
}

// PandocConfig locates the external converter.
type PandocConfig struct {
	Path string `yaml:"path"` // Executable name or path (default: "pandoc")
}

// IntermediateConfig controls the staged HTML file.
type IntermediateConfig struct {
	// FixedName stages HTML at "temp_epub.html" instead of a unique name.
	// Unsafe when two conversions share a working directory.
	FixedName bool `yaml:"fixedName"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error (default: warn)
	Format string `yaml:"format"` // console, json (default: console)
}

// DefaultConfig returns a configuration with every default filled in.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills empty fields with their default values.
func (c *Config) ApplyDefaults() {
	if c.Pandoc.Path == "" {
		c.Pandoc.Path = DefaultPandocPath
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

// Validate checks field lengths and enumerated values. Empty fields are valid.
func (c *Config) Validate() error {
	if len(c.Pandoc.Path) > MaxPathLength {
		return fmt.Errorf("%w: pandoc.path (%d chars, max %d)", ErrFieldTooLong, len(c.Pandoc.Path), MaxPathLength)
	}
	if strings.ContainsRune(c.Pandoc.Path, 0) {
		return fmt.Errorf("%w: pandoc.path contains a null byte", ErrInvalidValue)
	}

	switch strings.ToLower(c.Log.Level) {
	case "", LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		return fmt.Errorf("%w: log.level %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("%w: log.format %q (must be console or json)", ErrInvalidValue, c.Log.Format)
	}

	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched as <name>.yaml or <name>.yml in the current
// directory, then in the user config directory under go-epub2md/.
// Defaults are not applied, so callers can layer env vars and flags first.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML config data. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxFileSize)
	}

	var cfg Config
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
