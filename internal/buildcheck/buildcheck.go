// Package buildcheck type-checks Go source against the packages of
// the enclosing module. It is used by tests to check that code which
// should be rejected at compile time is in fact rejected.
package buildcheck

import (
	"errors"
	"fmt"
	"go/ast"
	"go/build"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// Checker type-checks source files. Packages belonging to the module
// are loaded from source in the module's directory; other packages
// are loaded from source by the standard library importer.
type Checker struct {
	fset       *token.FileSet
	modulePath string
	moduleDir  string
	pkgs       map[string]*types.Package
	std        types.Importer
}

// New returns a Checker for the module containing dir.
func New(dir string) (*Checker, error) {
	modulePath, moduleDir, err := findModule(dir)
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	return &Checker{
		fset:       fset,
		modulePath: modulePath,
		moduleDir:  moduleDir,
		pkgs:       make(map[string]*types.Package),
		std:        importer.ForCompiler(fset, "source", nil),
	}, nil
}

// Check type-checks src using the module containing
// the current directory. See Checker.Check.
func Check(src string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	c, err := New(wd)
	if err != nil {
		return err
	}
	return c.Check(src)
}

// ModulePath returns the path of the module being checked against.
func (c *Checker) ModulePath() string {
	return c.modulePath
}

// Check parses and type-checks src, which must hold a complete Go
// source file. It returns nil if src is free of type errors;
// otherwise the returned error holds every error found.
func (c *Checker) Check(src string) error {
	f, err := parser.ParseFile(c.fset, "snippet.go", src, 0)
	if err != nil {
		return err
	}
	var errs []error
	conf := types.Config{
		Importer: c,
		Error: func(err error) {
			errs = append(errs, err)
		},
	}
	conf.Check(f.Name.Name, c.fset, []*ast.File{f}, nil)
	return errors.Join(errs...)
}

// Import implements types.Importer.
func (c *Checker) Import(path string) (*types.Package, error) {
	if pkg, ok := c.pkgs[path]; ok {
		return pkg, nil
	}
	rel, ok := c.relPath(path)
	if !ok {
		return c.std.Import(path)
	}
	files, err := c.parseDir(filepath.Join(c.moduleDir, filepath.FromSlash(rel)))
	if err != nil {
		return nil, err
	}
	conf := types.Config{
		Importer: c,
	}
	pkg, err := conf.Check(path, c.fset, files, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot type-check %s: %w", path, err)
	}
	c.pkgs[path] = pkg
	return pkg, nil
}

// relPath returns the directory of the package with the
// given import path relative to the module root, and reports
// whether the package is inside the module.
func (c *Checker) relPath(path string) (string, bool) {
	if path == c.modulePath {
		return "", true
	}
	rel, ok := strings.CutPrefix(path, c.modulePath+"/")
	return rel, ok
}

// parseDir parses the non-test Go files in dir that
// match the default build context.
func (c *Checker) parseDir(dir string) ([]*ast.File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []*ast.File
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		match, err := build.Default.MatchFile(dir, name)
		if err != nil {
			return nil, err
		}
		if !match {
			continue
		}
		f, err := parser.ParseFile(c.fset, filepath.Join(dir, name), nil, 0)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no Go files in %s", dir)
	}
	return files, nil
}

// findModule returns the module path and root directory
// of the module containing dir.
func findModule(dir string) (string, string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", "", err
	}
	for {
		gomod := filepath.Join(dir, "go.mod")
		data, err := os.ReadFile(gomod)
		if err == nil {
			modulePath := modfile.ModulePath(data)
			if modulePath == "" {
				return "", "", fmt.Errorf("no module path in %s", gomod)
			}
			return modulePath, dir, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", fmt.Errorf("no go.mod file found")
		}
		dir = parent
	}
}
