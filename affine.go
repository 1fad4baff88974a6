// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// Affine is a partial accessor without an embedding: a source contains zero
// or one focus. Writes against an absent focus are no-ops that return the
// source itself.
type Affine[S, A any] struct {
	getOption func(S) Option[A]
	set       func(S, A) S
}

// AffineOf creates an Affine from a partial match and a setter.
// The setter is consulted only when getOption matches, so absence is a
// no-op regardless of what the supplied setter would do.
func AffineOf[S, A any](getOption func(S) Option[A], set func(S, A) S) Affine[S, A] {
	return Affine[S, A]{getOption: getOption, set: set}
}

// GetOption extracts the focus when the source contains one.
func (af Affine[S, A]) GetOption(s S) Option[A] { return af.getOption(s) }

// Set replaces the focus when the source contains one, and returns the
// source unchanged otherwise.
func (af Affine[S, A]) Set(s S, a A) S {
	if af.getOption(s).IsNone() {
		return s
	}
	return af.set(s, a)
}

// Modify applies f to the focus when the source contains one.
func (af Affine[S, A]) Modify(s S, f func(A) A) S {
	m, ok := af.getOption(s).Get()
	if !ok {
		return s
	}
	return af.set(s, f(m))
}

// ModifyF applies an effectful f to the focus under ap. A source without a
// focus lifts unchanged via Pure and contributes nothing.
func (af Affine[S, A]) ModifyF(s S, f func(A) Erased, ap Applicative) Erased {
	m, ok := af.getOption(s).Get()
	if !ok {
		return ap.Pure(s)
	}
	return mapWith(ap, f(m), func(a Erased) Erased { return af.set(s, a.(A)) })
}

// AsTraversal treats the optional focus as a zero-or-one-element visit.
func (af Affine[S, A]) AsTraversal() Traversal[S, A] {
	return Traversal[S, A]{modifyF: af.ModifyF}
}

// AsFold restricts the accessor to reading.
func (af Affine[S, A]) AsFold() Fold[S, A] {
	return Fold[S, A]{foldMap: af.foldMap}
}

func (af Affine[S, A]) foldMap(s S, empty Erased, _ func(Erased, Erased) Erased, extract func(A) Erased) Erased {
	m, ok := af.getOption(s).Get()
	if !ok {
		return empty
	}
	return extract(m)
}

// Optic packs the accessor into a composable accessor.
func (af Affine[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{
		kind:      KindAffine,
		getOption: af.getOption,
		set:       af.Set,
		modifyF:   af.ModifyF,
		foldMap:   af.foldMap,
	}
}

// Filtered returns the affine matching values that satisfy pred.
// Writing a value that no longer satisfies pred empties the focus, so
// repeated modifies are not idempotent for predicate-crossing updates.
func Filtered[A any](pred func(A) bool) Affine[A, A] {
	return Affine[A, A]{
		getOption: func(a A) Option[A] {
			if pred(a) {
				return Some(a)
			}
			return None[A]()
		},
		set: func(_, a A) A { return a },
	}
}
