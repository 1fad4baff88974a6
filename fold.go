// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// Fold is a read-only bulk accessor: it reduces the foci of a source
// through a monoid in visiting order and supports no writes.
type Fold[S, A any] struct {
	foldMap func(S, Erased, func(Erased, Erased) Erased, func(A) Erased) Erased
}

// FoldOf creates a Fold from a function listing every focus in visiting
// order.
func FoldOf[S, A any](getAll func(S) []A) Fold[S, A] {
	return Fold[S, A]{
		foldMap: func(s S, empty Erased, combine func(Erased, Erased) Erased, extract func(A) Erased) Erased {
			acc := empty
			for _, a := range getAll(s) {
				acc = combine(acc, extract(a))
			}
			return acc
		},
	}
}

// GetAll returns every focus in visiting order.
func (f Fold[S, A]) GetAll(s S) []A {
	var out []A
	f.foldMap(s, nil, discardCombine, func(a A) Erased {
		out = append(out, a)
		return nil
	})
	return out
}

// GetOption returns the first focus, or None when the source has none.
func (f Fold[S, A]) GetOption(s S) Option[A] {
	return f.foldMap(s, None[A](), firstCombine[A], someExtract[A]).(Option[A])
}

// Exists reports whether any focus satisfies pred, stopping at the first
// match.
func (f Fold[S, A]) Exists(s S, pred func(A) bool) bool {
	for _, a := range f.GetAll(s) {
		if pred(a) {
			return true
		}
	}
	return false
}

// All reports whether every focus satisfies pred, stopping at the first
// counter-example. It is true on sources without a focus.
func (f Fold[S, A]) All(s S, pred func(A) bool) bool {
	for _, a := range f.GetAll(s) {
		if !pred(a) {
			return false
		}
	}
	return true
}

// Find returns the first focus satisfying pred in visiting order, stopping
// at the first match.
func (f Fold[S, A]) Find(s S, pred func(A) bool) Option[A] {
	for _, a := range f.GetAll(s) {
		if pred(a) {
			return Some(a)
		}
	}
	return None[A]()
}

// Count returns the number of foci in s.
func (f Fold[S, A]) Count(s S) int {
	return f.foldMap(s, 0, sumCombine, oneExtract[A]).(int)
}

// IsEmpty reports whether s has no focus.
func (f Fold[S, A]) IsEmpty(s S) bool {
	return !f.Exists(s, truePred[A])
}

// Optic packs the accessor into a composable accessor. The result supports
// only reads; Modify and ModifyF panic.
func (f Fold[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{
		kind:    KindFold,
		foldMap: f.foldMap,
	}
}
