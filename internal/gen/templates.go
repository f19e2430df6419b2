package gen

import (
	"fmt"
	"strings"
	"text/template"
)

const header = `// Code generated by pipegen. DO NOT EDIT.
`

var tupleTemplate = header + `
package tuple

// T0 holds an empty tuple.
type T0 struct{}

// T returns all the values in the tuple.
func (T0) T() {}

// MkT0 returns an empty tuple.
func MkT0() T0 {
	return T0{}
}
{{range $n := span 1 .MaxArity}}
// T{{$n}} holds a tuple of {{$n}} values.
type T{{$n}}[{{list "A%d" $n}} any] struct {
{{- range $i := upto $n}}
	V{{$i}} A{{$i}}
{{- end}}
}

// T returns all the values in the tuple.
func (t {{bundle "" "A%d" $n}}) T(){{results "A%d" $n}} {
	return {{list "t.V%d" $n}}
}

// MkT{{$n}} returns a tuple holding all the arguments.
func MkT{{$n}}[{{list "A%d" $n}} any]({{list "a%[1]d A%[1]d" $n}}) {{bundle "" "A%d" $n}} {
	return {{bundle "" "A%d" $n}}{ {{- list "a%d" $n}}}
}
{{end -}}
`

var tuplefuncTemplate = header + `
package tuplefunc

import "{{.ModulePath}}/tuple"
{{range $n := span 0 .MaxArity}}
// ToA_{{$n}} converts f to a function that takes its arguments as a single tuple.
func ToA_{{$n}}[{{join (list "A%d" $n) "R"}} any](f func({{list "A%d" $n}}) R) func({{bundle "tuple." "A%d" $n}}) R {
	return func(t {{bundle "tuple." "A%d" $n}}) R {
		return f({{list "t.V%d" $n}})
	}
}

// FromA_{{$n}} is the inverse of ToA_{{$n}}.
func FromA_{{$n}}[{{join (list "A%d" $n) "R"}} any](f func({{bundle "tuple." "A%d" $n}}) R) func({{list "A%d" $n}}) R {
	return func({{list "a%[1]d A%[1]d" $n}}) R {
		return f(tuple.MkT{{$n}}({{list "a%d" $n}}))
	}
}
{{end}}
{{- range $n := span 0 .MaxArity}}
// ToR_{{$n}} converts f to a function that returns its results as a single tuple.
func ToR_{{$n}}[{{join "A" (list "R%d" $n)}} any](f func(A){{results "R%d" $n}}) func(A) {{bundle "tuple." "R%d" $n}} {
	return func(a A) {{bundle "tuple." "R%d" $n}} {
{{- if eq $n 0}}
		f(a)
		return tuple.MkT0()
{{- else}}
		{{list "r%d" $n}} := f(a)
		return tuple.MkT{{$n}}({{list "r%d" $n}})
{{- end}}
	}
}
{{end -}}
`

var pipeTemplate = header + `
package pipe

import (
	"{{.ModulePath}}/tuple"
	"{{.ModulePath}}/tuple/tuplefunc"
)

// F0 returns a stage that calls f with no arguments.
// The result is returned as is.
func F0[R any](f func() R) Func[tuple.T0, R] {
	return FuncOf(tuplefunc.ToA_0(f))
}

// F1 returns a stage that calls f with the single value held in its
// argument tuple. The result is wrapped in a one-element tuple so
// that it matches the input of another single-argument stage.
func F1[A0, R any](f func(A0) R) Func[tuple.T1[A0], tuple.T1[R]] {
	return FuncOf(tuplefunc.ToR_1(tuplefunc.ToA_1(f)))
}
{{range $n := span 2 .MaxArity}}
// F{{$n}} returns a stage that calls f with the {{$n}} values held in its
// argument tuple. The result is returned as is.
func F{{$n}}[{{join (list "A%d" $n) "R"}} any](f func({{list "A%d" $n}}) R) Func[{{bundle "tuple." "A%d" $n}}, R] {
	return FuncOf(tuplefunc.ToA_{{$n}}(f))
}
{{end}}
// Chain2 composes two stages. It is the same as Compose.
//
// Stages are joined as by Compose, so a single-argument stage that
// returns a tuple must be joined to a multi-argument stage with Spread.
func Chain2[I, M0, O any](f0 Func[I, M0], f1 Func[M0, O]) Func[I, O] {
	return Compose(f0, f1)
}
{{range $n := span 3 .MaxChain}}
// Chain{{$n}} composes {{$n}} stages from left to right. The first {{sub $n 1}}
// stages are composed first, and the result is composed with f{{sub $n 1}}.
//
// Stages are joined as by Compose, so a single-argument stage that
// returns a tuple must be joined to a multi-argument stage with Spread.
func Chain{{$n}}[I, {{list "M%d" (sub $n 1)}}, O any]({{chainParams $n}}) Func[I, O] {
	return Compose(Chain{{sub $n 1}}({{list "f%d" (sub $n 1)}}), f{{sub $n 1}})
}
{{end -}}
`

var templates = map[string]*template.Template{
	KindTuple:     newTemplate(KindTuple, tupleTemplate),
	KindTupleFunc: newTemplate(KindTupleFunc, tuplefuncTemplate),
	KindPipe:      newTemplate(KindPipe, pipeTemplate),
}

func newTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(template.FuncMap{
		"upto":        upto,
		"span":        span,
		"sub":         func(a, b int) int { return a - b },
		"list":        list,
		"join":        join,
		"bundle":      bundle,
		"results":     results,
		"chainParams": chainParams,
	}).Parse(text))
}

// upto returns [0, n).
func upto(n int) []int {
	return span(0, n-1)
}

// span returns [lo, hi].
func span(lo, hi int) []int {
	var xs []int
	for i := lo; i <= hi; i++ {
		xs = append(xs, i)
	}
	return xs
}

// list formats each index in [0, n) with format and
// joins the results with commas.
func list(format string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(format, i)
	}
	return strings.Join(parts, ", ")
}

// join joins the non-empty parts with commas.
func join(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

// bundle returns the tuple type of arity n with
// type arguments formed from format.
func bundle(pkg, format string, n int) string {
	if n == 0 {
		return pkg + "T0"
	}
	return fmt.Sprintf("%sT%d[%s]", pkg, n, list(format, n))
}

// results returns a function result list for n results,
// including the leading space when there are any.
func results(format string, n int) string {
	switch n {
	case 0:
		return ""
	case 1:
		return " " + fmt.Sprintf(format, 0)
	}
	return " (" + list(format, n) + ")"
}

// chainParams returns the parameter list of a chain of n stages.
func chainParams(n int) string {
	parts := make([]string, n)
	for i := range parts {
		in, out := fmt.Sprintf("M%d", i-1), fmt.Sprintf("M%d", i)
		if i == 0 {
			in = "I"
		}
		if i == n-1 {
			out = "O"
		}
		parts[i] = fmt.Sprintf("f%d Func[%s, %s]", i, in, out)
	}
	return strings.Join(parts, ", ")
}
