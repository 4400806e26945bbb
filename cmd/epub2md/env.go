package main

import (
	"io"
	"os"
	"os/exec"

	"github.com/spf13/afero"
	"go.uber.org/automaxprocs/maxprocs"

	epub2md "github.com/alnah/go-epub2md"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, process environment, filesystem, and the subprocess runner.
type Environment struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Getenv   func(string) string
	Environ  func() []string
	Getwd    func() (string, error)
	LookPath func(string) (string, error)
	FS       afero.Fs
	Runner   epub2md.CommandRunner

	// SetMaxProcs tunes GOMAXPROCS, reporting through logf.
	SetMaxProcs func(logf func(string, ...any))
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Getenv:      os.Getenv,
		Environ:     os.Environ,
		Getwd:       os.Getwd,
		LookPath:    exec.LookPath,
		FS:          afero.NewOsFs(),
		Runner:      epub2md.ExecRunner{},
		SetMaxProcs: setMaxProcs,
	}
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(logf func(string, ...any)) {
	_, _ = maxprocs.Set(maxprocs.Logger(logf))
}
