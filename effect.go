// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// Effect capability for the effectful update protocol.
// A capability describes how effectful partial results are lifted and
// recombined while an accessor rebuilds its source.

// Erased is the type alias for any, marking type-erased effect values
// crossing the capability boundary. Go cannot parameterise over unapplied
// type constructors, so the protocol traffics in Erased and concrete effect
// types are recovered via type assertions at the boundary (see the typed
// runners [ModifyOption], [ModifyEither], [ModifyValidated], [ModifyFuture]).
type Erased = any

// Applicative is the minimal capability threaded through [Optic.ModifyF]:
// lift a plain value into the effect, and combine two effectful values.
//
// Map2 decides the failure policy of an update: short-circuit on the first
// failure, accumulate failures, or always combine. It must combine operands
// in argument order; traversals rely on that to recombine partial results in
// visiting order.
type Applicative interface {
	// Pure lifts a plain value into the effect.
	Pure(v Erased) Erased
	// Map2 combines two effectful values with fn.
	Map2(fa, fb Erased, fn func(a, b Erased) Erased) Erased
}

// IdentityAp returns the identity capability: effect values are the plain
// values themselves and Map2 applies fn directly. Modify is ModifyF under
// this capability.
func IdentityAp() Applicative { return identityAp{} }

type identityAp struct{}

func (identityAp) Pure(v Erased) Erased { return v }

func (identityAp) Map2(fa, fb Erased, fn func(a, b Erased) Erased) Erased {
	return fn(fa, fb)
}

// constAp is the constant capability over a monoid: Pure discards its
// argument and yields the identity element, Map2 ignores fn and combines.
// foldMap is ModifyF under this capability, so a non-matching path
// contributes the combine identity, i.e. nothing.
type constAp struct {
	empty   Erased
	combine func(a, b Erased) Erased
}

func (c constAp) Pure(Erased) Erased { return c.empty }

func (c constAp) Map2(fa, fb Erased, _ func(a, b Erased) Erased) Erased {
	return c.combine(fa, fb)
}

// mapWith derives functor map from Pure and Map2.
func mapWith(ap Applicative, fa Erased, fn func(Erased) Erased) Erased {
	return ap.Map2(fa, ap.Pure(nil), func(a, _ Erased) Erased { return fn(a) })
}

// appendCombine accumulates erased traversal results in visiting order.
func appendCombine(xs, x Erased) Erased { return append(xs.([]Erased), x) }

// discardCombine is the combine of the collecting fold, where extraction
// itself records the targets and the combined value is unused.
func discardCombine(Erased, Erased) Erased { return nil }

// sumCombine adds erased int counters.
func sumCombine(x, y Erased) Erased { return x.(int) + y.(int) }

// oneExtract counts a target as 1.
// Named generic function produces a static funcval per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func oneExtract[A any](A) Erased { return 1 }

// firstCombine keeps the first present erased Option.
func firstCombine[A any](x, y Erased) Erased {
	if x.(Option[A]).IsSome() {
		return x
	}
	return y
}
