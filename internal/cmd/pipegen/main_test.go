package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
)

const testConfig = `
module = "example.com/m"

target "tuple" {
  kind   = "tuple"
  output = "tuple_gen.go"
}

target "pipe" {
  kind      = "pipe"
  output    = "pipe_gen.go"
  max_arity = 3
  max_chain = 3
}
`

func writeTestConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "gen.hcl")
	err := os.WriteFile(path, []byte(testConfig), 0o666)
	qt.Assert(t, qt.IsNil(err))
	return dir, path
}

func TestRunGeneratesTargets(t *testing.T) {
	dir, path := writeTestConfig(t)
	var stderr bytes.Buffer
	err := run(&stderr, []string{"-config", path, "pipe"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(stderr.String(), "msg=\"generated target\" target=pipe"))

	data, err := os.ReadFile(filepath.Join(dir, "pipe_gen.go"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(string(data), "func Chain3["))
	_, err = os.Stat(filepath.Join(dir, "tuple_gen.go"))
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))
}

func TestRunDryRun(t *testing.T) {
	dir, path := writeTestConfig(t)
	var stderr bytes.Buffer
	err := run(&stderr, []string{"-config", path, "-dry-run", "-log-format", "json"})
	qt.Assert(t, qt.IsNil(err))

	var targets []string
	for _, line := range bytes.Split(bytes.TrimSpace(stderr.Bytes()), []byte("\n")) {
		var entry struct {
			Msg    string `json:"msg"`
			Target string `json:"target"`
		}
		err := json.Unmarshal(line, &entry)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(entry.Msg, "checked target"))
		targets = append(targets, entry.Target)
	}
	qt.Assert(t, qt.DeepEquals(targets, []string{"tuple", "pipe"}))

	entries, err := os.ReadDir(dir)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(entries, 1))
}

func TestRunDebugLogging(t *testing.T) {
	_, path := writeTestConfig(t)
	var stderr bytes.Buffer
	err := run(&stderr, []string{"-config", path, "-dry-run", "-log-level", "debug"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(stderr.String(), "msg=\"loading config\""))
}

func TestRunHelp(t *testing.T) {
	var stderr bytes.Buffer
	err := run(&stderr, []string{"-help"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(stderr.String(), "Usage:\n  pipegen [options] [TARGET...]"))
}

func TestRunErrors(t *testing.T) {
	_, path := writeTestConfig(t)
	tests := []struct {
		testName  string
		args      []string
		expectErr string
		code      int
	}{{
		testName:  "UnknownFlag",
		args:      []string{"-frobnicate"},
		expectErr: `flag provided but not defined: -frobnicate`,
		code:      2,
	}, {
		testName:  "BadLogLevel",
		args:      []string{"-config", path, "-log-level", "loud"},
		expectErr: `invalid log level "loud"`,
		code:      2,
	}, {
		testName:  "BadLogFormat",
		args:      []string{"-config", path, "-log-format", "xml"},
		expectErr: `invalid log format "xml"`,
		code:      2,
	}, {
		testName:  "MissingConfig",
		args:      []string{"-config", filepath.Join(t.TempDir(), "missing.hcl")},
		expectErr: `failed to parse config file .*`,
	}, {
		testName:  "UnknownTarget",
		args:      []string{"-config", path, "-dry-run", "other"},
		expectErr: `no target named "other"`,
	}}
	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			var stderr bytes.Buffer
			err := run(&stderr, test.args)
			qt.Assert(t, qt.ErrorMatches(err, `(?s)`+test.expectErr))
			var exitErr *ExitError
			if test.code != 0 {
				qt.Assert(t, qt.ErrorAs(err, &exitErr))
				qt.Assert(t, qt.Equals(exitErr.Code, test.code))
			} else {
				qt.Assert(t, qt.IsFalse(errors.As(err, &exitErr)))
			}
		})
	}
}

func TestLogLevelDefault(t *testing.T) {
	opts, err := parseArgs(nil, &bytes.Buffer{})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(opts.logLevel, slog.LevelInfo))
	qt.Assert(t, qt.Equals(opts.configPath, "gen.hcl"))
	qt.Assert(t, qt.Equals(opts.logFormat, "text"))
}
