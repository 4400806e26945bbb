package main

import (
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-epub2md/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for a conversion.
type convertFlags struct {
	common            commonFlags
	pandoc            string
	logFormat         string
	fixedIntermediate bool
}

// addCommonFlags adds flags shared across commands to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log each pipeline step")
}

// newFlagSet returns a silent FlagSet; callers print usage themselves.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

// parseConvertFlags parses conversion flags and returns positional args.
// -h and --help yield flag.ErrHelp.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := newFlagSet("epub2md")
	f := &convertFlags{}

	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.pandoc, "pandoc", "", "pandoc executable name or path")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: console, json")
	fs.BoolVar(&f.fixedIntermediate, "fixed-intermediate", false, "stage HTML at temp_epub.html")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// mergeFlags applies explicitly set flags onto cfg (CLI wins).
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.pandoc != "" {
		cfg.Pandoc.Path = flags.pandoc
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}
	if flags.fixedIntermediate {
		cfg.Intermediate.FixedName = true
	}
	switch {
	case flags.common.verbose:
		cfg.Log.Level = config.LevelDebug
	case flags.common.quiet:
		cfg.Log.Level = config.LevelError
	}
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	json   bool
	pandoc string
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string) (*doctorFlags, error) {
	fs := newFlagSet("doctor")
	f := &doctorFlags{}

	fs.BoolVar(&f.json, "json", false, "output results as JSON")
	fs.StringVar(&f.pandoc, "pandoc", "", "pandoc executable name or path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
