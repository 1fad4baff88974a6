// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

import "slices"

// Monoid instances for fold accumulation.
// A fold reduces the targets of an accessor through a monoid: Empty is the
// result over zero targets and Combine merges partial results left to right.

// Monoid bundles an identity element with an associative combine.
type Monoid[M any] struct {
	// Empty is the identity element of Combine.
	Empty M
	// Combine merges two partial results. It must be associative and
	// treat Empty as the identity on both sides.
	Combine func(M, M) M
}

// MonoidOf returns the monoid with identity empty and operation combine.
func MonoidOf[M any](empty M, combine func(M, M) M) Monoid[M] {
	return Monoid[M]{Empty: empty, Combine: combine}
}

// SliceMonoid returns the monoid of slices under concatenation.
// Combine copies both operands, so accumulated slices never alias sources.
func SliceMonoid[A any]() Monoid[[]A] {
	return Monoid[[]A]{
		Combine: func(a, b []A) []A { return slices.Concat(a, b) },
	}
}

// StringMonoid returns the monoid of strings under concatenation.
func StringMonoid() Monoid[string] {
	return Monoid[string]{
		Combine: func(a, b string) string { return a + b },
	}
}

// Numeric is the constraint for types accumulated by [SumMonoid].
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// SumMonoid returns the monoid of numbers under addition.
func SumMonoid[N Numeric]() Monoid[N] {
	return Monoid[N]{
		Combine: func(a, b N) N { return a + b },
	}
}

// AnyMonoid returns the monoid of booleans under disjunction.
func AnyMonoid() Monoid[bool] {
	return Monoid[bool]{
		Combine: func(a, b bool) bool { return a || b },
	}
}

// AllMonoid returns the monoid of booleans under conjunction.
func AllMonoid() Monoid[bool] {
	return Monoid[bool]{
		Empty:   true,
		Combine: func(a, b bool) bool { return a && b },
	}
}

// FirstMonoid returns the monoid keeping the leftmost present value.
func FirstMonoid[A any]() Monoid[Option[A]] {
	return Monoid[Option[A]]{
		Empty: None[A](),
		Combine: func(a, b Option[A]) Option[A] {
			if a.IsSome() {
				return a
			}
			return b
		},
	}
}
