// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// Kind identifies the accessor variant an [Optic] was built from. The kind
// of a composition depends only on the operand kinds, never on the data.
type Kind uint8

const (
	// KindIso is the lossless two-way conversion.
	KindIso Kind = iota
	// KindLens is the total single-focus accessor.
	KindLens
	// KindPrism is the partial accessor with an embedding.
	KindPrism
	// KindAffine is the partial accessor without an embedding.
	KindAffine
	// KindTraversal is the bulk accessor.
	KindTraversal
	// KindFold is the read-only bulk accessor.
	KindFold
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindIso:
		return "iso"
	case KindLens:
		return "lens"
	case KindPrism:
		return "prism"
	case KindAffine:
		return "affine"
	case KindTraversal:
		return "traversal"
	case KindFold:
		return "fold"
	}
	return "unknown"
}

// Optic is a composable accessor from sources S to foci A. Each variant
// ([Iso], [Lens], [Prism], [Affine], [Traversal], [Fold]) packs into this
// one representation via its Optic method, and [AndThen] composes any two.
//
// The field set carried depends on the kind: a fold carries only foldMap,
// a traversal adds modifyF, and the single-focus kinds add the capabilities
// their operations need. Operations panic when the kind cannot support
// them, and the panic names both.
type Optic[S, A any] struct {
	kind Kind

	// modifyF visits every focus with an effectful function under a
	// capability, nil for read-only accessors.
	modifyF func(S, func(A) Erased, Applicative) Erased
	// foldMap reduces the foci through an erased monoid, never nil.
	foldMap func(S, Erased, func(Erased, Erased) Erased, func(A) Erased) Erased

	get       func(S) A
	getOption func(S) Option[A]
	set       func(S, A) S
	build     func(A) S
}

// Kind returns the accessor variant this optic behaves as.
func (o Optic[S, A]) Kind() Kind { return o.kind }

// Get extracts the focus of a total accessor. It panics unless the optic
// is an iso or lens; use [Optic.GetOption] or [Optic.GetAll] for the
// partial and bulk kinds.
func (o Optic[S, A]) Get(s S) A {
	if o.get == nil {
		panic("optic: Get on " + o.kind.String() + " accessor")
	}
	return o.get(s)
}

// GetOption extracts the first focus, or None when the source has none.
func (o Optic[S, A]) GetOption(s S) Option[A] {
	if o.getOption != nil {
		return o.getOption(s)
	}
	return o.foldMap(s, None[A](), firstCombine[A], someExtract[A]).(Option[A])
}

// someExtract lifts a focus into a present Option.
// Named generic function produces a static funcval per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func someExtract[A any](a A) Erased { return Some(a) }

// GetAll returns every focus in visiting order. Single-focus kinds yield
// zero or one element.
func (o Optic[S, A]) GetAll(s S) []A {
	var out []A
	o.foldMap(s, nil, discardCombine, func(a A) Erased {
		out = append(out, a)
		return nil
	})
	return out
}

// Set replaces every focus with a. Sources without a focus are returned
// unchanged. It panics on read-only accessors.
func (o Optic[S, A]) Set(s S, a A) S {
	if o.set != nil {
		return o.set(s, a)
	}
	if o.modifyF == nil {
		panic("optic: Set on " + o.kind.String() + " accessor")
	}
	return o.Modify(s, func(A) A { return a })
}

// Modify applies f to every focus. Sources without a focus are returned
// unchanged. It panics on read-only accessors.
func (o Optic[S, A]) Modify(s S, f func(A) A) S {
	if o.getOption != nil && o.set != nil {
		m, ok := o.getOption(s).Get()
		if !ok {
			return s
		}
		return o.set(s, f(m))
	}
	if o.modifyF == nil {
		panic("optic: Modify on " + o.kind.String() + " accessor")
	}
	return o.modifyF(s, func(a A) Erased { return f(a) }, IdentityAp()).(S)
}

// ModifyF applies an effectful f to every focus under ap, combining the
// results in visiting order. It panics on read-only accessors. Plain
// [Optic.Modify] is ModifyF under [IdentityAp]; the typed runners
// [ModifyOption], [ModifyEither], [ModifyValidated] and [ModifyFuture]
// recover concrete effect types at the boundary.
func (o Optic[S, A]) ModifyF(s S, f func(A) Erased, ap Applicative) Erased {
	if o.modifyF == nil {
		panic("optic: ModifyF on " + o.kind.String() + " accessor")
	}
	return o.modifyF(s, f, ap)
}

// Exists reports whether any focus satisfies pred, stopping at the first
// match. It is false on sources without a focus.
func (o Optic[S, A]) Exists(s S, pred func(A) bool) bool {
	for _, a := range o.GetAll(s) {
		if pred(a) {
			return true
		}
	}
	return false
}

// All reports whether every focus satisfies pred, stopping at the first
// counter-example. It is true on sources without a focus.
func (o Optic[S, A]) All(s S, pred func(A) bool) bool {
	for _, a := range o.GetAll(s) {
		if !pred(a) {
			return false
		}
	}
	return true
}

// Find returns the first focus satisfying pred in visiting order, stopping
// at the first match.
func (o Optic[S, A]) Find(s S, pred func(A) bool) Option[A] {
	for _, a := range o.GetAll(s) {
		if pred(a) {
			return Some(a)
		}
	}
	return None[A]()
}

// Count returns the number of foci in s.
func (o Optic[S, A]) Count(s S) int {
	return o.foldMap(s, 0, sumCombine, oneExtract[A]).(int)
}

// IsEmpty reports whether s has no focus.
func (o Optic[S, A]) IsEmpty(s S) bool {
	return !o.Exists(s, truePred[A])
}

// truePred accepts every focus.
func truePred[A any](A) bool { return true }

// FoldMap reduces the foci of o in s through monoid m, extracting with
// extract and combining in visiting order. Sources without a focus yield
// m.Empty.
func FoldMap[S, A, M any](s S, o Optic[S, A], m Monoid[M], extract func(A) M) M {
	return o.foldMap(s, m.Empty, func(x, y Erased) Erased {
		return m.Combine(x.(M), y.(M))
	}, func(a A) Erased {
		return extract(a)
	}).(M)
}
