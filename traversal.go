// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

import (
	"cmp"
	"maps"
	"slices"
)

// Traversal is a bulk accessor: a source contains zero or more foci, visited
// in a stable order. Updates rebuild the source with results recombined in
// visiting order.
type Traversal[S, A any] struct {
	modifyF func(S, func(A) Erased, Applicative) Erased
}

// TraversalOf creates a Traversal from an effectful visit function.
// The function must visit every focus in a stable order, combine the f
// results with ap in that order, and rebuild the source from them. It must
// return ap.Pure(s) when the source has no foci.
func TraversalOf[S, A any](modifyF func(s S, f func(A) Erased, ap Applicative) Erased) Traversal[S, A] {
	return Traversal[S, A]{modifyF: modifyF}
}

// GetAll returns every focus in visiting order.
func (t Traversal[S, A]) GetAll(s S) []A {
	var out []A
	t.modifyF(s, func(a A) Erased {
		out = append(out, a)
		return nil
	}, constAp{combine: discardCombine})
	return out
}

// Set replaces every focus with a.
func (t Traversal[S, A]) Set(s S, a A) S {
	return t.Modify(s, func(A) A { return a })
}

// Modify applies f to every focus.
func (t Traversal[S, A]) Modify(s S, f func(A) A) S {
	return t.modifyF(s, func(a A) Erased { return f(a) }, IdentityAp()).(S)
}

// ModifyF applies an effectful f to every focus under ap, combining
// results in visiting order.
func (t Traversal[S, A]) ModifyF(s S, f func(A) Erased, ap Applicative) Erased {
	return t.modifyF(s, f, ap)
}

// AsFold restricts the accessor to reading.
func (t Traversal[S, A]) AsFold() Fold[S, A] {
	return Fold[S, A]{foldMap: t.foldMap}
}

func (t Traversal[S, A]) foldMap(s S, empty Erased, combine func(Erased, Erased) Erased, extract func(A) Erased) Erased {
	return t.modifyF(s, extract, constAp{empty: empty, combine: combine})
}

// Optic packs the accessor into a composable accessor.
func (t Traversal[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{
		kind:    KindTraversal,
		modifyF: t.modifyF,
		foldMap: t.foldMap,
	}
}

// SliceValues returns the traversal visiting every element of a slice in
// index order. Updates copy the slice; an empty or nil source is returned
// as is.
func SliceValues[A any]() Traversal[[]A, A] {
	return Traversal[[]A, A]{modifyF: func(s []A, f func(A) Erased, ap Applicative) Erased {
		acc := ap.Pure(make([]Erased, 0, len(s)))
		for _, a := range s {
			acc = ap.Map2(acc, f(a), appendCombine)
		}
		return mapWith(ap, acc, func(rs Erased) Erased {
			buf := rs.([]Erased)
			if len(buf) == 0 {
				return s
			}
			out := make([]A, len(s))
			for i, r := range buf {
				out[i] = r.(A)
			}
			return out
		})
	}}
}

// MapValues returns the traversal visiting every value of a map in sorted
// key order, keeping visits deterministic. Updates clone the map; an empty
// or nil source is returned as is.
func MapValues[K cmp.Ordered, V any]() Traversal[map[K]V, V] {
	return Traversal[map[K]V, V]{modifyF: func(s map[K]V, f func(V) Erased, ap Applicative) Erased {
		keys := make([]K, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		acc := ap.Pure(make([]Erased, 0, len(keys)))
		for _, k := range keys {
			acc = ap.Map2(acc, f(s[k]), appendCombine)
		}
		return mapWith(ap, acc, func(rs Erased) Erased {
			buf := rs.([]Erased)
			if len(buf) == 0 {
				return s
			}
			out := maps.Clone(s)
			for i, k := range keys {
				out[k] = buf[i].(V)
			}
			return out
		})
	}}
}
