// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// Option carrier for partial results.
// Option[A] is the result type of every partial read (prism and affine
// matches, first-target queries) and the effect type of the short-circuit
// capability [OptionAp].

// Option is an optional value: either Some value or None.
// The zero value is None.
type Option[A any] struct {
	value A
	ok    bool
}

// Some returns an Option holding v.
func Some[A any](v A) Option[A] {
	return Option[A]{value: v, ok: true}
}

// None returns the empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome reports whether the option holds a value.
func (o Option[A]) IsSome() bool { return o.ok }

// IsNone reports whether the option is empty.
func (o Option[A]) IsNone() bool { return !o.ok }

// Get returns the held value and whether it is present.
func (o Option[A]) Get() (A, bool) { return o.value, o.ok }

// OrElse returns the held value, or fallback when empty.
func (o Option[A]) OrElse(fallback A) A {
	if o.ok {
		return o.value
	}
	return fallback
}

// MapOption applies f to the held value, propagating None.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.ok {
		return None[B]()
	}
	return Some(f(o.value))
}

// FlatMapOption sequences two optional computations, propagating None.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.ok {
		return None[B]()
	}
	return f(o.value)
}

// MatchOption destructures an option into one of two handlers.
func MatchOption[A, B any](o Option[A], onSome func(A) B, onNone func() B) B {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// OptionAp returns the short-circuit capability: the first None wins and
// carries no further information. ModifyF under this capability yields
// Some(rebuilt source) only when every visited target update succeeded.
func OptionAp() Applicative { return optionAp{} }

type optionAp struct{}

func (optionAp) Pure(v Erased) Erased { return Some(v) }

func (optionAp) Map2(fa, fb Erased, fn func(a, b Erased) Erased) Erased {
	a, ok := fa.(Option[Erased]).Get()
	if !ok {
		return None[Erased]()
	}
	b, ok := fb.(Option[Erased]).Get()
	if !ok {
		return None[Erased]()
	}
	return Some(fn(a, b))
}

// ModifyOption updates every target of o in s with f, short-circuiting on
// the first None. It is [Optic.ModifyF] under [OptionAp] with the effect
// types recovered at the boundary.
func ModifyOption[S, A any](s S, o Optic[S, A], f func(A) Option[A]) Option[S] {
	r := o.ModifyF(s, func(a A) Erased {
		fa := f(a)
		if v, ok := fa.Get(); ok {
			return Some[Erased](v)
		}
		return None[Erased]()
	}, OptionAp())
	if v, ok := r.(Option[Erased]).Get(); ok {
		return Some(v.(S))
	}
	return None[S]()
}
