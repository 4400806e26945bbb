//go:build integration

package epub2md

// Notes:
// - Requires a real pandoc on PATH; skipped otherwise.
// - The EPUB fixture is produced by pandoc itself from a small Markdown file.

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func requirePandoc(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath(DefaultToolPath); err != nil {
		t.Skip("pandoc not installed")
	}
}

func makeEPUB(t *testing.T, dir string) string {
	t.Helper()
	src := filepath.Join(dir, "src.md")
	if err := os.WriteFile(src, []byte("---\ntitle: Sample\n---\n\n# Title\n\nHello\n"), 0o600); err != nil {
		t.Fatalf("writing source: %v", err)
	}
	epub := filepath.Join(dir, "book.epub")
	if out, err := exec.Command(DefaultToolPath, src, "-o", epub).CombinedOutput(); err != nil {
		t.Fatalf("building EPUB fixture: %v: %s", err, out)
	}
	return epub
}

func TestService_Convert_Integration(t *testing.T) {
	requirePandoc(t)

	dir := t.TempDir()
	epub := makeEPUB(t, dir)
	svc := New(WithWorkingDir(dir))

	for i := range 2 {
		if err := svc.Convert(context.Background(), Input{EPUBPath: epub}); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	got, err := os.ReadFile(filepath.Join(dir, "book.md")) // #nosec G304 -- test file
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(got), "Title") || !strings.Contains(string(got), "Hello") {
		t.Errorf("expected converted text, got %q", got)
	}

	leftovers, _ := filepath.Glob(filepath.Join(dir, IntermediateBase+"*"))
	if len(leftovers) != 0 {
		t.Errorf("intermediate files left behind: %v", leftovers)
	}
}

func TestService_Convert_Integration_CorruptEPUB(t *testing.T) {
	requirePandoc(t)

	dir := t.TempDir()
	bad := filepath.Join(dir, "broken.epub")
	if err := os.WriteFile(bad, []byte("not a zip archive"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	err := New(WithWorkingDir(dir)).Convert(context.Background(), Input{EPUBPath: bad})
	if KindOf(err) != ErrExternalTool {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "broken.md")); !os.IsNotExist(statErr) {
		t.Error("no Markdown should be written for a failed conversion")
	}
}
