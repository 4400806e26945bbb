package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	epub2md "github.com/alnah/go-epub2md"
	"github.com/alnah/go-epub2md/internal/config"
	"github.com/alnah/go-epub2md/internal/fileutil"
	"github.com/alnah/go-epub2md/internal/hints"
	"github.com/alnah/go-epub2md/internal/logging"
)

// maxPositionalArgs is input plus optional output.
const maxPositionalArgs = 2

// runMain dispatches subcommands and returns the process exit code.
// Anything that is not a known command is treated as a conversion.
func runMain(args []string, env *Environment) int {
	if len(args) > 1 {
		switch args[1] {
		case "version":
			fmt.Fprintf(env.Stdout, "epub2md %s\n", Version)
			return ExitSuccess
		case "help":
			return runHelp(args[2:], env)
		case "doctor":
			return runDoctorCmd(context.Background(), args[2:], env)
		}
	}

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	flags, positional, err := parseConvertFlags(cmdArgs)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", epub2md.ErrUsage, err)
		printError(env.Stderr, err, hintContext{})
		return exitCodeFor(err)
	}

	warnUnknownEnvVars(env.Stderr, env.Environ())

	// No timeout or signal handling: a hung pandoc blocks until killed.
	hc, err := runConvert(context.Background(), positional, flags, env)
	if err != nil {
		printError(env.Stderr, err, hc)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// hintContext carries what runConvert knew when it failed, for hint selection.
type hintContext struct {
	configName string
	toolPath   string
}

// runConvert converts one EPUB. The returned hintContext is filled in as far
// as the run got, even on error.
func runConvert(ctx context.Context, positional []string, flags *convertFlags, env *Environment) (hintContext, error) {
	var hc hintContext

	if len(positional) == 0 {
		return hc, fmt.Errorf("%w: missing input EPUB path", epub2md.ErrUsage)
	}
	if len(positional) > maxPositionalArgs {
		return hc, fmt.Errorf("%w: expected at most %d arguments, got %d",
			epub2md.ErrUsage, maxPositionalArgs, len(positional))
	}

	envCfg := loadEnvConfig(env.Getenv)
	hc.configName = flags.common.config
	if hc.configName == "" {
		hc.configName = envCfg.ConfigPath
	}

	cfg, err := resolveConfig(hc.configName, envCfg, flags)
	if err != nil {
		return hc, err
	}
	hc.toolPath = cfg.Pandoc.Path

	logger, err := newLogger(cfg, env.Stderr)
	if err != nil {
		return hc, err
	}
	defer func() { _ = logger.Sync() }()

	env.SetMaxProcs(logger.Sugar().Debugf)

	input := epub2md.Input{EPUBPath: positional[0]}
	if len(positional) == maxPositionalArgs {
		input.OutputPath = positional[1]
	}

	svc := epub2md.New(serviceOptions(cfg, env, logger)...)
	if err := svc.Convert(ctx, input); err != nil {
		return hc, err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Converted %s -> %s\n", input.EPUBPath, displayOutput(input, env))
	}
	return hc, nil
}

// resolveConfig layers config file, environment, and flags, then fills defaults.
func resolveConfig(name string, envCfg *envConfig, flags *convertFlags) (*config.Config, error) {
	cfg := &config.Config{}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the diagnostic logger on w from cfg.Log.
func newLogger(cfg *config.Config, w io.Writer) (*zap.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return logging.New(w, level, cfg.Log.Format)
}

// serviceOptions maps configuration onto converter options.
func serviceOptions(cfg *config.Config, env *Environment, logger *zap.Logger) []epub2md.Option {
	opts := []epub2md.Option{
		epub2md.WithTool(&epub2md.PandocTool{Path: cfg.Pandoc.Path, Runner: env.Runner}),
		epub2md.WithFS(env.FS),
		epub2md.WithWorkingDirFunc(env.Getwd),
		epub2md.WithLogger(logger),
	}
	if cfg.Intermediate.FixedName {
		opts = append(opts, epub2md.FixedIntermediate())
	}
	return opts
}

// displayOutput returns the output path for the success message.
func displayOutput(input epub2md.Input, env *Environment) string {
	if input.OutputPath != "" {
		return input.OutputPath
	}
	cwd, err := env.Getwd()
	if err != nil {
		return epub2md.DefaultOutputPath(input.EPUBPath, ".")
	}
	return epub2md.DefaultOutputPath(input.EPUBPath, cwd)
}

// printError writes the error and any hint to w. Usage errors are followed
// by the usage text.
func printError(w io.Writer, err error, hc hintContext) {
	msg := strings.TrimRight(err.Error(), "\r\n")
	fmt.Fprintf(w, "error: %s%s\n", msg, hintFor(err, hc))
	if errors.Is(err, epub2md.ErrUsage) {
		fmt.Fprintln(w)
		printUsage(w)
	}
}

// hintFor picks an actionable hint for err, or "" when none applies.
func hintFor(err error, hc hintContext) string {
	var stepErr *epub2md.StepError
	_ = errors.As(err, &stepErr)

	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		if hc.configName != "" && !fileutil.IsFilePath(hc.configName) {
			return hints.ForConfigNotFound(config.SearchPaths(hc.configName))
		}
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, epub2md.ErrUsage):
		return ""
	case errors.Is(err, epub2md.ErrInvalidInput):
		return hints.ForInvalidInput()
	case errors.Is(err, epub2md.ErrDependencyUnavailable):
		return hints.ForDependency(hc.toolPath)
	case errors.Is(err, epub2md.ErrExternalTool):
		return hints.ForExternalTool()
	case stepErr != nil && stepErr.Stage == epub2md.StageWrite:
		return hints.ForWriteFailure(stepErr.Paths.Intermediate)
	case stepErr != nil && stepErr.OutputWritten():
		return hints.ForCleanup(stepErr.Paths.Output)
	}
	return ""
}
