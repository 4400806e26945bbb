package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: epub2md [flags] <input.epub> [output.md]")
	fmt.Fprintln(w, "       epub2md <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert an EPUB file to Markdown using Pandoc.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input.epub    EPUB file to convert (must end in .epub)")
	fmt.Fprintln(w, "  output.md     Markdown file to write (default: <name>.md in the current directory)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --pandoc <path>       Pandoc executable (default: pandoc)")
	fmt.Fprintln(w, "      --fixed-intermediate  Stage HTML at temp_epub.html")
	fmt.Fprintln(w, "      --log-format <s>      Log format: console, json")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log each pipeline step")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  doctor     Check that Pandoc and the working directory are usable")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  EPUB2MD_CONFIG, EPUB2MD_PANDOC, EPUB2MD_LOG_LEVEL, EPUB2MD_LOG_FORMAT")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: epub2md doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that Pandoc runs and the working directory is writable.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json            Output results as JSON")
	fmt.Fprintln(w, "      --pandoc <path>   Pandoc executable to check")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: epub2md version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: epub2md help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
