package epub2md

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/alnah/go-epub2md/internal/process"
)

// DefaultToolPath is the Pandoc executable looked up on PATH.
const DefaultToolPath = "pandoc"

// errStart marks a command that could not be started at all.
var errStart = errors.New("starting command")

// Tool abstracts the external EPUB to HTML converter.
type Tool interface {
	// CheckVersion verifies the tool is installed and runs.
	CheckVersion(ctx context.Context) error
	// Convert writes an HTML rendering of epubPath to htmlPath.
	Convert(ctx context.Context, epubPath, htmlPath string) error
}

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner implements CommandRunner using os/exec.
// Output streams are captured, never forwarded to the terminal.
// Cancelling ctx kills the command and any processes it spawned.
type ExecRunner struct{}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- tool path is user configuration
	process.Bind(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errStart, err)
	}

	err := cmd.Wait()
	return stdout.Bytes(), stderr.Bytes(), err
}

// PandocTool drives the Pandoc CLI.
type PandocTool struct {
	Path   string
	Runner CommandRunner
}

var _ Tool = (*PandocTool)(nil)

// NewPandocTool creates a PandocTool with a real command runner.
// An empty path selects DefaultToolPath.
func NewPandocTool(path string) *PandocTool {
	return &PandocTool{Path: path, Runner: ExecRunner{}}
}

// CheckVersion runs "pandoc --version". A tool that cannot be started and a
// tool that exits non-zero both yield ErrDependencyUnavailable, with
// different messages.
func (t *PandocTool) CheckVersion(ctx context.Context) error {
	_, stderr, err := t.Runner.Run(ctx, t.path(), "--version")
	if err == nil {
		return nil
	}
	if errors.Is(err, errStart) {
		return fmt.Errorf("%w: %s not found or not executable: %w", ErrDependencyUnavailable, t.path(), err)
	}
	return fmt.Errorf("%w: %s found but --version failed: %w%s", ErrDependencyUnavailable, t.path(), err, stderrSuffix(stderr))
}

// Convert runs "pandoc <epubPath> -o <htmlPath>". It does not check that
// htmlPath was created.
func (t *PandocTool) Convert(ctx context.Context, epubPath, htmlPath string) error {
	_, stderr, err := t.Runner.Run(ctx, t.path(), epubPath, "-o", htmlPath)
	if err == nil {
		return nil
	}
	if errors.Is(err, errStart) {
		return fmt.Errorf("%w: running %s: %w", ErrExternalTool, t.path(), err)
	}
	return fmt.Errorf("%w: %s: %w%s", ErrExternalTool, t.path(), err, stderrSuffix(stderr))
}

// Version returns the first line of "pandoc --version" output.
func (t *PandocTool) Version(ctx context.Context) (string, error) {
	stdout, _, err := t.Runner.Run(ctx, t.path(), "--version")
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(decodeLossy(stdout), "\n")
	return strings.TrimSpace(line), nil
}

func (t *PandocTool) path() string {
	if t.Path == "" {
		return DefaultToolPath
	}
	return t.Path
}

// stderrSuffix formats captured stderr for inclusion in an error message.
func stderrSuffix(stderr []byte) string {
	if len(stderr) == 0 {
		return ""
	}
	return ": " + decodeLossy(stderr)
}

// decodeLossy converts b to a string, replacing invalid UTF-8 with U+FFFD.
func decodeLossy(b []byte) string {
	return strings.ToValidUTF8(string(b), "\uFFFD")
}
