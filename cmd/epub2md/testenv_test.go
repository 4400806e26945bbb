package main

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
)

const testWorkDir = "/work"

const testHTML = "<html><body><h1>Title</h1><p>Hello <em>world</em></p></body></html>"

// fakePandoc answers --version and writes canned HTML to the -o target in fs.
type fakePandoc struct {
	fs         afero.Fs
	html       string
	versionErr error
	convertErr error
	stderr     []byte

	mu    sync.Mutex
	calls [][]string
}

func (f *fakePandoc) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	f.mu.Unlock()

	if len(args) == 1 && args[0] == "--version" {
		if f.versionErr != nil {
			return nil, []byte("broken install\n"), f.versionErr
		}
		return []byte("pandoc 3.1.11\nFeatures: +server +lua\n"), nil, nil
	}
	if f.convertErr != nil {
		return nil, f.stderr, f.convertErr
	}
	return nil, nil, afero.WriteFile(f.fs, args[2], []byte(f.html), 0o644)
}

func (f *fakePandoc) Calls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	fs     afero.Fs
	pandoc *fakePandoc
}

// newTestEnv returns an isolated environment over an in-memory filesystem.
// vars stands in for the process environment.
func newTestEnv(t *testing.T, vars map[string]string) *testEnv {
	t.Helper()

	fs := afero.NewMemMapFs()
	pandoc := &fakePandoc{fs: fs, html: testHTML}
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	return &testEnv{
		Environment: &Environment{
			Stdout:  stdout,
			Stderr:  stderr,
			Getenv:  func(k string) string { return vars[k] },
			Environ: func() []string { return environ(vars) },
			Getwd:   func() (string, error) { return testWorkDir, nil },
			LookPath: func(file string) (string, error) {
				if file == "pandoc" {
					return "/usr/bin/pandoc", nil
				}
				return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
			},
			FS:          fs,
			Runner:      pandoc,
			SetMaxProcs: func(func(string, ...any)) {},
		},
		stdout: stdout,
		stderr: stderr,
		fs:     fs,
		pandoc: pandoc,
	}
}

func environ(vars map[string]string) []string {
	out := make([]string, 0, len(vars))
	for k, v := range vars {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

// exitError stands in for a non-zero pandoc exit.
var exitError = errors.New("exit status 1")

func assertContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("expected %q in:\n%s", want, got)
	}
}

// noOutputRunner reports success for every call without writing anything.
type noOutputRunner struct{}

func (noOutputRunner) Run(_ context.Context, _ string, _ ...string) ([]byte, []byte, error) {
	return []byte("pandoc 3.1.11\n"), nil, nil
}
