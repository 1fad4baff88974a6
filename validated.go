// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

import "slices"

// Validated carrier for accumulating results.
// Validated[E, A] is the effect type of the accumulating capability
// [ValidatedAp]: unlike Either, combining two Invalid values concatenates
// their errors instead of dropping the second.

// Validated represents a value that is either Valid or Invalid with one or
// more errors.
type Validated[E, A any] struct {
	valid bool
	errs  []E
	value A
}

// Valid creates a Valid (success) value.
func Valid[E, A any](a A) Validated[E, A] {
	return Validated[E, A]{valid: true, value: a}
}

// Invalid creates an Invalid value carrying errs.
// It panics when errs is empty: an Invalid with no errors is indistinguishable
// from Valid when accumulating.
func Invalid[E, A any](errs ...E) Validated[E, A] {
	if len(errs) == 0 {
		panic("optic: Invalid requires at least one error")
	}
	return Validated[E, A]{errs: slices.Clone(errs)}
}

// IsValid returns true if this is a Valid value.
func (v Validated[E, A]) IsValid() bool {
	return v.valid
}

// IsInvalid returns true if this is an Invalid value.
func (v Validated[E, A]) IsInvalid() bool {
	return !v.valid
}

// Get returns the Valid value and true, or zero and false.
func (v Validated[E, A]) Get() (A, bool) {
	if v.valid {
		return v.value, true
	}
	var zero A
	return zero, false
}

// Errors returns the accumulated errors, nil when Valid.
func (v Validated[E, A]) Errors() []E {
	return v.errs
}

// OrElse returns the Valid value, or fallback when Invalid.
func (v Validated[E, A]) OrElse(fallback A) A {
	if v.valid {
		return v.value
	}
	return fallback
}

// MapValidated applies a function to the Valid value.
func MapValidated[E, A, B any](v Validated[E, A], f func(A) B) Validated[E, B] {
	if v.valid {
		return Valid[E](f(v.value))
	}
	return Validated[E, B]{errs: v.errs}
}

// CombineValidated combines two validated values with fn when both are
// Valid, and concatenates their errors in argument order otherwise.
func CombineValidated[E, A, B, C any](a Validated[E, A], b Validated[E, B], fn func(A, B) C) Validated[E, C] {
	if a.valid && b.valid {
		return Valid[E](fn(a.value, b.value))
	}
	if a.valid {
		return Validated[E, C]{errs: b.errs}
	}
	if b.valid {
		return Validated[E, C]{errs: a.errs}
	}
	return Validated[E, C]{errs: slices.Concat(a.errs, b.errs)}
}

// ValidatedAp returns the accumulating capability over error type E: every
// failing target contributes its errors, concatenated in visiting order.
func ValidatedAp[E any]() Applicative { return validatedAp[E]{} }

type validatedAp[E any] struct{}

func (validatedAp[E]) Pure(v Erased) Erased { return Valid[E, Erased](v) }

func (validatedAp[E]) Map2(fa, fb Erased, fn func(a, b Erased) Erased) Erased {
	return CombineValidated(fa.(Validated[E, Erased]), fb.(Validated[E, Erased]), fn)
}

// ModifyValidated updates every target of o in s with f, accumulating the
// errors of every failing target in visiting order. It is [Optic.ModifyF]
// under [ValidatedAp] with the effect types recovered at the boundary.
func ModifyValidated[S, A, E any](s S, o Optic[S, A], f func(A) Validated[E, A]) Validated[E, S] {
	r := o.ModifyF(s, func(a A) Erased {
		fa := f(a)
		if v, ok := fa.Get(); ok {
			return Valid[E, Erased](v)
		}
		return Validated[E, Erased]{errs: fa.Errors()}
	}, ValidatedAp[E]())
	rv := r.(Validated[E, Erased])
	if v, ok := rv.Get(); ok {
		return Valid[E](v.(S))
	}
	return Validated[E, S]{errs: rv.Errors()}
}
