// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// Lens is a total accessor: every S contains exactly one A.
// Reads never fail and writes always land.
type Lens[S, A any] struct {
	get func(S) A
	set func(S, A) S
}

// LensOf creates a Lens from a getter and a setter.
// Callers guarantee the usual round trips: get(set(s, a)) ≡ a,
// set(s, get(s)) ≡ s and set(set(s, a), b) ≡ set(s, b). The setter must
// return an updated copy and leave s untouched.
func LensOf[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// Get extracts the focused value.
func (l Lens[S, A]) Get(s S) A { return l.get(s) }

// Set replaces the focused value, returning the updated source.
func (l Lens[S, A]) Set(s S, a A) S { return l.set(s, a) }

// Modify applies f to the focused value.
func (l Lens[S, A]) Modify(s S, f func(A) A) S {
	return l.set(s, f(l.get(s)))
}

// ModifyF applies an effectful f to the focused value under ap.
func (l Lens[S, A]) ModifyF(s S, f func(A) Erased, ap Applicative) Erased {
	return mapWith(ap, f(l.get(s)), func(a Erased) Erased { return l.set(s, a.(A)) })
}

// AsAffine forgets that the focus always matches.
func (l Lens[S, A]) AsAffine() Affine[S, A] {
	return Affine[S, A]{
		getOption: func(s S) Option[A] { return Some(l.get(s)) },
		set:       l.set,
	}
}

// AsTraversal treats the single focus as a one-element visit.
func (l Lens[S, A]) AsTraversal() Traversal[S, A] {
	return Traversal[S, A]{modifyF: l.ModifyF}
}

// AsFold restricts the accessor to reading.
func (l Lens[S, A]) AsFold() Fold[S, A] {
	return Fold[S, A]{
		foldMap: func(s S, _ Erased, _ func(Erased, Erased) Erased, extract func(A) Erased) Erased {
			return extract(l.get(s))
		},
	}
}

// Optic packs the accessor into a composable accessor.
func (l Lens[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{
		kind:      KindLens,
		get:       l.get,
		getOption: func(s S) Option[A] { return Some(l.get(s)) },
		set:       l.set,
		modifyF:   l.ModifyF,
		foldMap: func(s S, _ Erased, _ func(Erased, Erased) Erased, extract func(A) Erased) Erased {
			return extract(l.get(s))
		},
	}
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// PairOf creates a Pair from two values.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// FirstOf returns the lens focusing the first component of a pair.
func FirstOf[A, B any]() Lens[Pair[A, B], A] {
	return Lens[Pair[A, B], A]{
		get: func(p Pair[A, B]) A { return p.Fst },
		set: func(p Pair[A, B], a A) Pair[A, B] { return Pair[A, B]{Fst: a, Snd: p.Snd} },
	}
}

// SecondOf returns the lens focusing the second component of a pair.
func SecondOf[A, B any]() Lens[Pair[A, B], B] {
	return Lens[Pair[A, B], B]{
		get: func(p Pair[A, B]) B { return p.Snd },
		set: func(p Pair[A, B], b B) Pair[A, B] { return Pair[A, B]{Fst: p.Fst, Snd: b} },
	}
}
