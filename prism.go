// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// Prism is a partial accessor with an embedding: a match extracts the focus
// from the sources that contain one, and Build creates a matching source
// from a focus alone.
type Prism[S, A any] struct {
	getOption func(S) Option[A]
	build     func(A) S
}

// PrismOf creates a Prism from a partial match and an embedding.
// Callers guarantee getOption(build(a)) ≡ Some(a), and that a successful
// match rebuilds the source: getOption(s) ≡ Some(a) implies build(a) ≡ s.
func PrismOf[S, A any](getOption func(S) Option[A], build func(A) S) Prism[S, A] {
	return Prism[S, A]{getOption: getOption, build: build}
}

// GetOption extracts the focus when the source matches.
func (p Prism[S, A]) GetOption(s S) Option[A] { return p.getOption(s) }

// Matches reports whether the source contains the focus.
func (p Prism[S, A]) Matches(s S) bool { return p.getOption(s).IsSome() }

// Build creates a matching source from a focus.
func (p Prism[S, A]) Build(a A) S { return p.build(a) }

// Set replaces the focus when the source matches, and returns the source
// unchanged otherwise. Replacing never changes which variant s holds.
func (p Prism[S, A]) Set(s S, a A) S {
	if p.getOption(s).IsNone() {
		return s
	}
	return p.build(a)
}

// Modify applies f to the focus when the source matches.
func (p Prism[S, A]) Modify(s S, f func(A) A) S {
	m, ok := p.getOption(s).Get()
	if !ok {
		return s
	}
	return p.build(f(m))
}

// ModifyF applies an effectful f to the focus under ap. A source without a
// focus lifts unchanged via Pure and contributes nothing.
func (p Prism[S, A]) ModifyF(s S, f func(A) Erased, ap Applicative) Erased {
	m, ok := p.getOption(s).Get()
	if !ok {
		return ap.Pure(s)
	}
	return mapWith(ap, f(m), func(a Erased) Erased { return p.build(a.(A)) })
}

// AsAffine forgets the embedding.
func (p Prism[S, A]) AsAffine() Affine[S, A] {
	return Affine[S, A]{
		getOption: p.getOption,
		set:       func(_ S, a A) S { return p.build(a) },
	}
}

// AsTraversal treats the optional focus as a zero-or-one-element visit.
func (p Prism[S, A]) AsTraversal() Traversal[S, A] {
	return Traversal[S, A]{modifyF: p.ModifyF}
}

// AsFold restricts the accessor to reading.
func (p Prism[S, A]) AsFold() Fold[S, A] {
	return Fold[S, A]{foldMap: p.foldMap}
}

func (p Prism[S, A]) foldMap(s S, empty Erased, _ func(Erased, Erased) Erased, extract func(A) Erased) Erased {
	m, ok := p.getOption(s).Get()
	if !ok {
		return empty
	}
	return extract(m)
}

// Optic packs the accessor into a composable accessor.
func (p Prism[S, A]) Optic() Optic[S, A] {
	return Optic[S, A]{
		kind:      KindPrism,
		getOption: p.getOption,
		set:       p.Set,
		build:     p.build,
		modifyF:   p.ModifyF,
		foldMap:   p.foldMap,
	}
}

// SomeOf returns the prism matching the present value of an Option.
func SomeOf[A any]() Prism[Option[A], A] {
	return Prism[Option[A], A]{
		getOption: func(o Option[A]) Option[A] { return o },
		build:     Some[A],
	}
}

// RightOf returns the prism matching the Right value of an Either.
func RightOf[E, A any]() Prism[Either[E, A], A] {
	return Prism[Either[E, A], A]{
		getOption: func(e Either[E, A]) Option[A] {
			if v, ok := e.GetRight(); ok {
				return Some(v)
			}
			return None[A]()
		},
		build: Right[E, A],
	}
}

// LeftOf returns the prism matching the Left value of an Either.
func LeftOf[E, A any]() Prism[Either[E, A], E] {
	return Prism[Either[E, A], E]{
		getOption: func(e Either[E, A]) Option[E] {
			if v, ok := e.GetLeft(); ok {
				return Some(v)
			}
			return None[E]()
		},
		build: Left[E, A],
	}
}

// ValidOf returns the prism matching the Valid value of a Validated.
func ValidOf[E, A any]() Prism[Validated[E, A], A] {
	return Prism[Validated[E, A], A]{
		getOption: func(v Validated[E, A]) Option[A] {
			if a, ok := v.Get(); ok {
				return Some(a)
			}
			return None[A]()
		},
		build: Valid[E, A],
	}
}

// VariantOf returns the prism matching the V variant held by an interface
// type S. Build panics when V does not implement S.
func VariantOf[S, V any]() Prism[S, V] {
	return Prism[S, V]{
		getOption: func(s S) Option[V] {
			if v, ok := any(s).(V); ok {
				return Some(v)
			}
			return None[V]()
		},
		build: func(v V) S { return any(v).(S) },
	}
}
