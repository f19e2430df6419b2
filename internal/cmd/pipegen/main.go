// The pipegen command writes the generated code of the tuple,
// tuplefunc and pipe packages, as described by a configuration
// file. It is usually invoked through go generate.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rogpeppe/funcpipe/internal/gen"
)

func main() {
	if err := run(os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "pipegen:", err)
		os.Exit(1)
	}
}

func run(stderr io.Writer, args []string) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	if opts == nil {
		return nil
	}
	logger := opts.newLogger(stderr)
	logger.Debug("loading config", "path", opts.configPath)
	cfg, err := gen.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	return cfg.Run(logger, opts.targets, opts.dryRun)
}
