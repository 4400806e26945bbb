package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"

	flag "github.com/spf13/pflag"

	epub2md "github.com/alnah/go-epub2md"
	"github.com/alnah/go-epub2md/internal/config"
	"github.com/alnah/go-epub2md/internal/fileutil"
	"github.com/alnah/go-epub2md/internal/hints"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Pandoc   pandocInfo `json:"pandoc"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// pandocInfo holds Pandoc detection results.
type pandocInfo struct {
	Requested string `json:"requested"`
	Found     bool   `json:"found"`
	Path      string `json:"path,omitempty"`
	Version   string `json:"version,omitempty"`
}

// systemInfo holds platform and working directory checks.
type systemInfo struct {
	OS              string   `json:"os"`
	Arch            string   `json:"arch"`
	WorkDir         string   `json:"workdir,omitempty"`
	WorkDirWritable bool     `json:"workdir_writable"`
	Leftovers       []string `json:"leftovers,omitempty"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(ctx context.Context, args []string, env *Environment) int {
	flags, err := parseDoctorFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printDoctorUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printDoctorUsage(env.Stderr)
		return ExitUsage
	}

	toolPath := flags.pandoc
	if toolPath == "" {
		toolPath = env.Getenv("EPUB2MD_PANDOC")
	}
	if toolPath == "" {
		toolPath = config.DefaultPandocPath
	}

	result := runDoctor(ctx, env, toolPath)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(ctx context.Context, env *Environment, toolPath string) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Pandoc: pandocInfo{Requested: toolPath},
		System: systemInfo{OS: runtime.GOOS, Arch: runtime.GOARCH},
	}

	checkPandoc(ctx, env, result)
	checkWorkDir(env, result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

// checkPandoc locates Pandoc and reads its version.
func checkPandoc(ctx context.Context, env *Environment, result *doctorResult) {
	path, err := env.LookPath(result.Pandoc.Requested)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Pandoc not found (%s). Install it from %s or set EPUB2MD_PANDOC",
				result.Pandoc.Requested, hints.InstallURL))
		return
	}
	result.Pandoc.Found = true
	result.Pandoc.Path = path

	tool := &epub2md.PandocTool{Path: path, Runner: env.Runner}
	version, err := tool.Version(ctx)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Pandoc found at %s but --version failed: %v", path, err))
		return
	}
	result.Pandoc.Version = version
}

// checkWorkDir verifies the directory that receives intermediate and output files.
func checkWorkDir(env *Environment, result *doctorResult) {
	cwd, err := env.Getwd()
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Cannot determine working directory: %v", err))
		return
	}
	result.System.WorkDir = cwd

	if fileutil.DirWritable(cwd) {
		result.System.WorkDirWritable = true
	} else {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Working directory not writable: %s", cwd))
	}

	result.System.Leftovers = fileutil.Leftovers(cwd, epub2md.IntermediateBase)
	for _, p := range result.System.Leftovers {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Leftover intermediate file %s (remove it if no conversion is running)", p))
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "epub2md doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Pandoc")
	if r.Pandoc.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Pandoc.Path)
		if r.Pandoc.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Pandoc.Version)
		}
	} else {
		fmt.Fprintf(w, "  [ERROR] Not found: %s\n", r.Pandoc.Requested)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.System.OS, r.System.Arch)
	switch {
	case r.System.WorkDir == "":
		fmt.Fprintln(w, "  [ERROR] Working directory: unknown")
	case r.System.WorkDirWritable:
		fmt.Fprintf(w, "  [OK] Working directory: %s (writable)\n", r.System.WorkDir)
	default:
		fmt.Fprintf(w, "  [ERROR] Working directory: %s (not writable)\n", r.System.WorkDir)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
