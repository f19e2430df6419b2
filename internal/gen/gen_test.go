package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
)

var testParams = Params{
	ModulePath: "example.com/m",
	MaxArity:   16,
	MaxChain:   8,
}

// decls parses src and returns the names of its top level
// functions and types, in order.
func decls(t *testing.T, src []byte) (string, []string) {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	qt.Assert(t, qt.IsNil(err))
	var names []string
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				names = append(names, d.Name.Name)
			}
		case *ast.GenDecl:
			for _, s := range d.Specs {
				if s, ok := s.(*ast.TypeSpec); ok {
					names = append(names, s.Name.Name)
				}
			}
		}
	}
	return f.Name.Name, names
}

func TestGenerateTuple(t *testing.T) {
	src, err := Generate(KindTuple, testParams)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(string(src), "// Code generated by pipegen. DO NOT EDIT.\n"))

	pkg, names := decls(t, src)
	qt.Assert(t, qt.Equals(pkg, "tuple"))
	var want []string
	for i := 0; i <= 16; i++ {
		want = append(want, "T"+strconv.Itoa(i), "MkT"+strconv.Itoa(i))
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("unexpected declarations (-want +got):\n%s", diff)
	}
	qt.Assert(t, qt.StringContains(string(src), "func (t T2[A0, A1]) T() (A0, A1) {"))
	qt.Assert(t, qt.StringContains(string(src), "func (t T1[A0]) T() A0 {"))
	qt.Assert(t, qt.StringContains(string(src), "\tV10 A10\n"))
}

func TestGenerateTupleFunc(t *testing.T) {
	src, err := Generate(KindTupleFunc, Params{
		ModulePath: "example.com/m",
		MaxArity:   3,
	})
	qt.Assert(t, qt.IsNil(err))
	pkg, names := decls(t, src)
	qt.Assert(t, qt.Equals(pkg, "tuplefunc"))
	qt.Assert(t, qt.DeepEquals(names, []string{
		"ToA_0", "FromA_0",
		"ToA_1", "FromA_1",
		"ToA_2", "FromA_2",
		"ToA_3", "FromA_3",
		"ToR_0", "ToR_1", "ToR_2", "ToR_3",
	}))
	qt.Assert(t, qt.StringContains(string(src), `import "example.com/m/tuple"`))
	qt.Assert(t, qt.StringContains(string(src), "func ToR_2[A, R0, R1 any](f func(A) (R0, R1)) func(A) tuple.T2[R0, R1] {"))
	qt.Assert(t, qt.StringContains(string(src), "func ToR_0[A any](f func(A)) func(A) tuple.T0 {"))
}

func TestGeneratePipe(t *testing.T) {
	src, err := Generate(KindPipe, Params{
		ModulePath: "example.com/m",
		MaxArity:   4,
		MaxChain:   5,
	})
	qt.Assert(t, qt.IsNil(err))
	pkg, names := decls(t, src)
	qt.Assert(t, qt.Equals(pkg, "pipe"))
	qt.Assert(t, qt.DeepEquals(names, []string{
		"F0", "F1", "F2", "F3", "F4",
		"Chain2", "Chain3", "Chain4", "Chain5",
	}))
	qt.Assert(t, qt.StringContains(string(src),
		"func Chain3[I, M0, M1, O any](f0 Func[I, M0], f1 Func[M0, M1], f2 Func[M1, O]) Func[I, O] {\n"+
			"\treturn Compose(Chain2(f0, f1), f2)\n"+
			"}\n",
	))
}

func TestGenerateIsFormatted(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			src, err := Generate(kind, testParams)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.IsFalse(strings.Contains(string(src), "\n\n\n")))
			qt.Assert(t, qt.IsTrue(strings.HasSuffix(string(src), "}\n")))
		})
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	_, err := Generate("other", testParams)
	qt.Assert(t, qt.ErrorMatches(err, `unknown kind "other"`))
}

func TestKinds(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(Kinds(), []string{"pipe", "tuple", "tuplefunc"}))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		ModulePath: "example.com/m",
		Dir:        dir,
		Targets: []*Target{{
			Name:   "tuple",
			Kind:   KindTuple,
			Output: "tuple_gen.go",
		}, {
			Name:     "pipe",
			Kind:     KindPipe,
			Output:   "pipe_gen.go",
			MaxArity: 2,
			MaxChain: 3,
		}},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := cfg.Run(logger, []string{"pipe"}, false)
	qt.Assert(t, qt.IsNil(err))
	_, err = os.Stat(filepath.Join(dir, "tuple_gen.go"))
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))
	data, err := os.ReadFile(filepath.Join(dir, "pipe_gen.go"))
	qt.Assert(t, qt.IsNil(err))
	_, names := decls(t, data)
	qt.Assert(t, qt.DeepEquals(names, []string{"F0", "F1", "F2", "Chain2", "Chain3"}))

	err = cfg.Run(logger, nil, true)
	qt.Assert(t, qt.IsNil(err))
	_, err = os.Stat(filepath.Join(dir, "tuple_gen.go"))
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))

	err = cfg.Run(logger, nil, false)
	qt.Assert(t, qt.IsNil(err))
	data, err = os.ReadFile(filepath.Join(dir, "tuple_gen.go"))
	qt.Assert(t, qt.IsNil(err))
	_, names = decls(t, data)
	qt.Assert(t, qt.HasLen(names, 2*(DefaultMaxArity+1)))

	err = cfg.Run(logger, []string{"nope"}, false)
	qt.Assert(t, qt.ErrorMatches(err, `no target named "nope"`))
}
