// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic_test

import (
	"testing"

	"code.hybscloud.com/optic"
)

func TestSliceValuesModify(t *testing.T) {
	vals := optic.SliceValues[int]()
	s := []int{1, 2, 3, 4}

	got := vals.Modify(s, func(x int) int { return x * 10 })
	want := []int{10, 20, 30, 40}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if s[0] != 1 {
		t.Fatalf("source mutated: %v", s)
	}
}

func TestSliceValuesEmptySourcePassesThrough(t *testing.T) {
	vals := optic.SliceValues[int]()

	var nilSlice []int
	if got := vals.Modify(nilSlice, func(x int) int { return x + 1 }); got != nil {
		t.Fatalf("got %v, want nil", got)
	}

	empty := []int{}
	got := vals.Modify(empty, func(x int) int { return x + 1 })
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestSliceValuesGetAllOrder(t *testing.T) {
	vals := optic.SliceValues[string]()
	got := vals.GetAll([]string{"x", "y", "z"})
	if len(got) != 3 || got[0] != "x" || got[1] != "y" || got[2] != "z" {
		t.Fatalf("got %v, want [x y z]", got)
	}
}

func TestSliceValuesSet(t *testing.T) {
	vals := optic.SliceValues[int]()
	got := vals.Set([]int{1, 2, 3}, 7)
	for i := range got {
		if got[i] != 7 {
			t.Fatalf("got %v, want all 7", got)
		}
	}
}

func TestMapValuesSortedVisitOrder(t *testing.T) {
	vals := optic.MapValues[string, int]()
	m := map[string]int{"b": 2, "a": 1, "c": 3}

	got := vals.GetAll(m)
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("got %v, want [1 2 3] in sorted key order", got)
	}
}

func TestMapValuesModifyClones(t *testing.T) {
	vals := optic.MapValues[string, int]()
	m := map[string]int{"a": 1, "b": 2}

	got := vals.Modify(m, func(v int) int { return v * 100 })
	if got["a"] != 100 || got["b"] != 200 {
		t.Fatalf("got %v, want {a:100 b:200}", got)
	}
	if m["a"] != 1 || m["b"] != 2 {
		t.Fatalf("source mutated: %v", m)
	}

	var nilMap map[string]int
	if out := vals.Modify(nilMap, func(v int) int { return v + 1 }); out != nil {
		t.Fatalf("got %v, want nil", out)
	}
}

func TestTraversalOfFixedFoci(t *testing.T) {
	type route struct {
		src string
		dst string
	}
	endpoints := optic.TraversalOf(func(r route, f func(string) optic.Erased, ap optic.Applicative) optic.Erased {
		acc := ap.Map2(f(r.src), f(r.dst), func(a, b optic.Erased) optic.Erased {
			return route{src: a.(string), dst: b.(string)}
		})
		return acc
	})

	r := route{src: "tokyo", dst: "osaka"}
	if got := endpoints.GetAll(r); len(got) != 2 || got[0] != "tokyo" || got[1] != "osaka" {
		t.Fatalf("got %v, want [tokyo osaka]", got)
	}

	got := endpoints.Modify(r, func(s string) string { return s + "-jp" })
	if got.src != "tokyo-jp" || got.dst != "osaka-jp" {
		t.Fatalf("got %+v", got)
	}
}

func TestComposeTraversalNested(t *testing.T) {
	rows := optic.ComposeTraversal(optic.SliceValues[[]int](), optic.SliceValues[int]())
	grid := [][]int{{1, 2}, {3}, {}, {4, 5}}

	flat := rows.GetAll(grid)
	want := []int{1, 2, 3, 4, 5}
	if len(flat) != len(want) {
		t.Fatalf("got %v, want %v", flat, want)
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Fatalf("got %v, want %v", flat, want)
		}
	}

	bumped := rows.Modify(grid, func(x int) int { return x + 1 })
	if bumped[0][0] != 2 || bumped[3][1] != 6 {
		t.Fatalf("got %v", bumped)
	}
	if grid[0][0] != 1 {
		t.Fatalf("source mutated: %v", grid)
	}
	if len(bumped[2]) != 0 {
		t.Fatalf("empty row changed: %v", bumped[2])
	}
}

func TestTraversalModifyF(t *testing.T) {
	vals := optic.SliceValues[int]()

	res := optic.ModifyEither([]int{1, 2, 3}, vals.Optic(), func(x int) optic.Either[string, int] {
		return optic.Right[string](x * 2)
	})
	out, ok := res.GetRight()
	if !ok || out[0] != 2 || out[1] != 4 || out[2] != 6 {
		t.Fatalf("got (%v, %v), want ([2 4 6], true)", out, ok)
	}
}
