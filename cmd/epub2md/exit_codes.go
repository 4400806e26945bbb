package main

import (
	"errors"
	"os"

	epub2md "github.com/alnah/go-epub2md"
	"github.com/alnah/go-epub2md/internal/config"
	"github.com/alnah/go-epub2md/internal/logging"
)

// Exit codes for epub2md CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess      = 0 // Successful conversion
	ExitGeneral      = 1 // General/unexpected error
	ExitUsage        = 2 // Invalid arguments, input path, or config
	ExitIO           = 3 // Read, write, or cleanup failure
	ExitDependency   = 4 // Pandoc missing or broken
	ExitExternalTool = 5 // Pandoc failed to convert the EPUB
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Pandoc errors (exit 4, 5)
	if errors.Is(err, epub2md.ErrDependencyUnavailable) {
		return ExitDependency
	}
	if errors.Is(err, epub2md.ErrExternalTool) {
		return ExitExternalTool
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, epub2md.ErrUsage) ||
		errors.Is(err, epub2md.ErrInvalidInput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigTooLarge) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, logging.ErrInvalidLevel) ||
		errors.Is(err, logging.ErrInvalidFormat) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, epub2md.ErrIO) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}
