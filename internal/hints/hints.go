// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// InstallURL points users at Pandoc installation instructions.
const InstallURL = "https://pandoc.org/installing.html"

// ForDependency returns hints for a missing or broken Pandoc.
// toolPath is the executable that was tried.
func ForDependency(toolPath string) string {
	var hints []string

	if toolPath == "" || !strings.ContainsAny(toolPath, "/\\") {
		hints = append(hints, "install Pandoc ("+InstallURL+") and make sure it is on PATH")
	} else {
		hints = append(hints, "check that "+toolPath+" exists and is executable")
	}
	hints = append(hints, "use --pandoc or EPUB2MD_PANDOC to point at another binary")

	return formatHints(hints)
}

// ForExternalTool returns a hint for a Pandoc conversion failure.
func ForExternalTool() string {
	return format("check that the input is a readable, DRM-free EPUB")
}

// ForInvalidInput returns a hint for a rejected input path.
func ForInvalidInput() string {
	return format("the input must be a file ending in .epub (lowercase)")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(slashed(p), "/go-epub2md/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForWriteFailure returns a hint after the Markdown output could not be written.
func ForWriteFailure(intermediate string) string {
	hints := []string{"check the output directory exists and is writable"}
	if intermediate != "" {
		hints = append(hints, "the intermediate HTML was kept at "+intermediate)
	}
	return formatHints(hints)
}

// ForCleanup returns a hint after the intermediate file could not be removed.
func ForCleanup(output string) string {
	return format("the Markdown was written to " + output + "; remove the leftover temp_epub file by hand")
}

// ForUsage returns a hint pointing at the help command.
func ForUsage() string {
	return format("run 'epub2md help' for usage")
}

// slashed normalizes separators so that matching works on Windows paths.
func slashed(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
