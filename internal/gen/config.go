package gen

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Config describes what the generator produces.
// It is usually read from a gen.hcl file at the module root.
type Config struct {
	// ModulePath is the import path of the module.
	ModulePath string `hcl:"module"`

	// Targets holds one entry for each generated file.
	Targets []*Target `hcl:"target,block"`

	// Dir is the directory that relative output
	// paths are resolved against. LoadConfig sets it
	// to the directory holding the configuration file.
	Dir string
}

// Target describes a single generated file.
type Target struct {
	Name     string `hcl:"name,label"`
	Kind     string `hcl:"kind"`
	Output   string `hcl:"output"`
	MaxArity int    `hcl:"max_arity,optional"`
	MaxChain int    `hcl:"max_chain,optional"`
}

// LoadConfig reads the generator configuration from the HCL file at path.
//
// Expressions in the file may refer to the built-in limits
// through the "limits" variable, for example:
//
//	max_arity = limits.arity
func LoadConfig(path string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	var cfg Config
	if diags := gohcl.DecodeBody(f.Body, evalContext(), &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}
	cfg.Dir = filepath.Dir(path)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"limits": cty.ObjectVal(map[string]cty.Value{
				"arity": cty.NumberIntVal(DefaultMaxArity),
				"chain": cty.NumberIntVal(DefaultMaxChain),
			}),
		},
	}
}

// Validate checks that the configuration is well formed.
func (cfg *Config) Validate() error {
	if cfg.ModulePath == "" {
		return fmt.Errorf("no module path")
	}
	if len(cfg.Targets) == 0 {
		return fmt.Errorf("no targets")
	}
	seen := make(map[string]bool)
	for _, t := range cfg.Targets {
		if seen[t.Name] {
			return fmt.Errorf("duplicate target %q", t.Name)
		}
		seen[t.Name] = true
		if _, ok := templates[t.Kind]; !ok {
			return fmt.Errorf("target %q: unknown kind %q (known kinds: %q)", t.Name, t.Kind, Kinds())
		}
		if t.Output == "" {
			return fmt.Errorf("target %q: empty output path", t.Name)
		}
		if t.MaxArity < 0 {
			return fmt.Errorf("target %q: max_arity %d out of range", t.Name, t.MaxArity)
		}
		if t.MaxChain != 0 && t.MaxChain < 2 {
			return fmt.Errorf("target %q: max_chain must be at least 2, not %d", t.Name, t.MaxChain)
		}
	}
	return cfg.checkArities()
}

// dependencies holds, for each kind, the kinds whose generated
// code it refers to by arity.
var dependencies = map[string][]string{
	KindTupleFunc: {KindTuple},
	KindPipe:      {KindTuple, KindTupleFunc},
}

// checkArities checks that no target uses a larger arity than a
// target it depends on generates. Kinds without a target in the
// configuration are not checked.
func (cfg *Config) checkArities() error {
	arities := make(map[string]int)
	for _, t := range cfg.Targets {
		arities[t.Kind] = cfg.params(t).MaxArity
	}
	for _, t := range cfg.Targets {
		arity := cfg.params(t).MaxArity
		for _, dep := range dependencies[t.Kind] {
			depArity, ok := arities[dep]
			if ok && arity > depArity {
				return fmt.Errorf("target %q: max_arity %d exceeds max_arity %d of %s target", t.Name, arity, depArity, dep)
			}
		}
	}
	return nil
}
