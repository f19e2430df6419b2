package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is an error that carries the exit code for the process.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options holds the parsed command line.
type options struct {
	configPath string
	targets    []string
	dryRun     bool
	logLevel   slog.Level
	logFormat  string
}

// parseArgs parses the command line arguments. It returns
// a nil *options when the program should exit cleanly,
// as when help was requested.
func parseArgs(args []string, output io.Writer) (*options, error) {
	flagSet := flag.NewFlagSet("pipegen", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
pipegen - generate the per-arity code of the tuple, tuplefunc and pipe packages.

Usage:
  pipegen [options] [TARGET...]

With no TARGET arguments, all the targets in the configuration file are generated.

Options:
`)
		flagSet.PrintDefaults()
	}
	configFlag := flagSet.String("config", "gen.hcl", "Path to the generator configuration file.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Generate and check the code without writing any files.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil
		}
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}

	opts := &options{
		configPath: *configFlag,
		targets:    flagSet.Args(),
		dryRun:     *dryRunFlag,
		logFormat:  strings.ToLower(*logFormatFlag),
	}
	if err := opts.logLevel.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("invalid log level %q", *logLevelFlag)}
	}
	if opts.logFormat != "text" && opts.logFormat != "json" {
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("invalid log format %q", *logFormatFlag)}
	}
	return opts, nil
}

// newLogger returns a logger writing to w as configured by opts.
func (opts *options) newLogger(w io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		Level: opts.logLevel,
	}
	if opts.logFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}
