package pipe_test

import (
	"fmt"
	"strings"

	"github.com/rogpeppe/funcpipe/pipe"
	"github.com/rogpeppe/funcpipe/tuple"
)

func ExampleCompose() {
	pair := pipe.F0(func() tuple.T2[int, int] {
		return tuple.MkT2(4, 8)
	})
	sum := pipe.F2(func(x, y int) int {
		return x + y
	})
	f := pipe.Compose(pair, sum)
	fmt.Println(f.Call(tuple.MkT0()))
	// Output:
	// 12
}

func ExampleChain3() {
	f := pipe.Chain3(
		pipe.F1(strings.TrimSpace),
		pipe.F1(strings.ToUpper),
		pipe.F1(func(s string) int {
			return len(s)
		}),
	)
	fmt.Println(f.Call(tuple.MkT1("  hello ")).V0)
	// Output:
	// 5
}

func ExampleSpread() {
	split := pipe.F1(func(s string) tuple.T2[string, string] {
		before, after, _ := strings.Cut(s, "=")
		return tuple.MkT2(before, after)
	})
	describe := pipe.F2(func(key, value string) string {
		return fmt.Sprintf("%s is %q", key, value)
	})
	f := pipe.Spread(split, describe)
	fmt.Println(f.Call(tuple.MkT1("name=gopher")))
	// Output:
	// name is "gopher"
}

func ExampleWrap() {
	pair := pipe.F0(func() tuple.T2[int, int] {
		return tuple.MkT2(4, 8)
	})
	show := pipe.F1(func(p tuple.T2[int, int]) string {
		return fmt.Sprint(p)
	})
	f := pipe.Wrap(pair, show)
	fmt.Println(f.Call(tuple.MkT0()).V0)
	// Output:
	// {4 8}
}
