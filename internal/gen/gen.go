// Package gen generates the per-arity code of the tuple, tuplefunc
// and pipe packages.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
)

// Kinds of generated file.
const (
	KindTuple     = "tuple"
	KindTupleFunc = "tuplefunc"
	KindPipe      = "pipe"
)

const (
	DefaultMaxArity = 16
	DefaultMaxChain = 8
)

// Params holds the values a template is executed with.
type Params struct {
	// ModulePath is the import path of the module
	// holding the generated packages.
	ModulePath string

	// MaxArity is the largest tuple or function arity generated.
	MaxArity int

	// MaxChain is the largest number of stages
	// taken by a generated chain function.
	MaxChain int
}

// Kinds returns all the kinds known to Generate, in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(templates))
	for k := range templates {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Generate returns the gofmt-formatted source for the given kind.
func Generate(kind string, p Params) ([]byte, error) {
	tmpl, ok := templates[kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("cannot execute %s template: %w", kind, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("cannot format generated %s code: %w\n%s", kind, err, buf.Bytes())
	}
	return src, nil
}

// Run generates the named targets, or all targets if names is empty.
// When dryRun is true, the generated code is checked but not written.
func (cfg *Config) Run(logger *slog.Logger, names []string, dryRun bool) error {
	targets, err := cfg.selectTargets(names)
	if err != nil {
		return err
	}
	for _, t := range targets {
		src, err := Generate(t.Kind, cfg.params(t))
		if err != nil {
			return fmt.Errorf("target %q: %w", t.Name, err)
		}
		path := t.Output
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.Dir, path)
		}
		if dryRun {
			logger.Info("checked target", "target", t.Name, "path", path, "bytes", len(src))
			continue
		}
		if err := os.WriteFile(path, src, 0o666); err != nil {
			return fmt.Errorf("target %q: %w", t.Name, err)
		}
		logger.Info("generated target", "target", t.Name, "path", path, "bytes", len(src))
	}
	return nil
}

func (cfg *Config) selectTargets(names []string) ([]*Target, error) {
	if len(names) == 0 {
		return cfg.Targets, nil
	}
	var targets []*Target
	for _, name := range names {
		i := slices.IndexFunc(cfg.Targets, func(t *Target) bool {
			return t.Name == name
		})
		if i < 0 {
			return nil, fmt.Errorf("no target named %q", name)
		}
		targets = append(targets, cfg.Targets[i])
	}
	return targets, nil
}

func (cfg *Config) params(t *Target) Params {
	p := Params{
		ModulePath: cfg.ModulePath,
		MaxArity:   t.MaxArity,
		MaxChain:   t.MaxChain,
	}
	if p.MaxArity == 0 {
		p.MaxArity = DefaultMaxArity
	}
	if p.MaxChain == 0 {
		p.MaxChain = DefaultMaxChain
	}
	return p
}
