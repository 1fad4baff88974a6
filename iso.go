// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// Iso is a lossless two-way conversion between S and A: every S maps to
// exactly one A and back. Get and Build are mutual inverses.
type Iso[S, A any] struct {
	get   func(S) A
	build func(A) S
}

// IsoOf creates an Iso from a conversion and its inverse.
// Callers guarantee build(get(s)) ≡ s and get(build(a)) ≡ a; the accessor
// machinery relies on both round trips being identities.
func IsoOf[S, A any](get func(S) A, build func(A) S) Iso[S, A] {
	return Iso[S, A]{get: get, build: build}
}

// Identity returns the Iso from a type to itself.
func Identity[A any]() Iso[A, A] {
	return Iso[A, A]{get: identityConv[A], build: identityConv[A]}
}

// identityConv converts a value to itself.
// Named generic function produces a static funcval per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func identityConv[A any](a A) A { return a }

// Get converts s to its other representation.
func (i Iso[S, A]) Get(s S) A { return i.get(s) }

// Build converts a back to the source representation.
func (i Iso[S, A]) Build(a A) S { return i.build(a) }

// Reversed swaps the two directions of the conversion.
func (i Iso[S, A]) Reversed() Iso[A, S] {
	return Iso[A, S]{get: i.build, build: i.get}
}

// Set replaces the focused value, discarding the source.
func (i Iso[S, A]) Set(_ S, a A) S { return i.build(a) }

// Modify applies f across the conversion.
func (i Iso[S, A]) Modify(s S, f func(A) A) S {
	return i.build(f(i.get(s)))
}

// ModifyF applies an effectful f across the conversion under ap.
func (i Iso[S, A]) ModifyF(s S, f func(A) Erased, ap Applicative) Erased {
	return mapWith(ap, f(i.get(s)), func(a Erased) Erased { return i.build(a.(A)) })
}

// AsLens forgets the build direction.
func (i Iso[S, A]) AsLens() Lens[S, A] {
	return Lens[S, A]{
		get: i.get,
		set: func(_ S, a A) S { return i.build(a) },
	}
}

// AsPrism forgets that the match is total.
func (i Iso[S, A]) AsPrism() Prism[S, A] {
	return Prism[S, A]{
		getOption: func(s S) Option[A] { return Some(i.get(s)) },
		build:     i.build,
	}
}

// AsAffine forgets both totality directions.
func (i Iso[S, A]) AsAffine() Affine[S, A] {
	return Affine[S, A]{
		getOption: func(s S) Option[A] { return Some(i.get(s)) },
		set:       func(_ S, a A) S { return i.build(a) },
	}
}

// AsTraversal treats the single focus as a one-element visit.
func (i Iso[S, A]) AsTraversal() Traversal[S, A] {
	return Traversal[S, A]{modifyF: i.ModifyF}
}

// AsFold restricts the conversion to reading.
func (i Iso[S, A]) AsFold() Fold[S, A] {
	return Fold[S, A]{
		foldMap: func(s S, _ Erased, _ func(Erased, Erased) Erased, extract func(A) Erased) Erased {
			return extract(i.get(s))
		},
	}
}

// Optic packs the conversion into a composable accessor.
func (i Iso[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{
		kind:      KindIso,
		get:       i.get,
		getOption: func(s S) Option[A] { return Some(i.get(s)) },
		set:       func(_ S, a A) S { return i.build(a) },
		build:     i.build,
		modifyF:   i.ModifyF,
		foldMap: func(s S, _ Erased, _ func(Erased, Erased) Erased, extract func(A) Erased) Erased {
			return extract(i.get(s))
		},
	}
}
