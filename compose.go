// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// Composition of accessors.
// AndThen chains any two optics into one whose kind depends only on the
// operand kinds; the typed Compose* helpers chain two optics of the same
// kind without erasing it.

// composeKinds maps outer and inner kinds to the kind of their composition.
// Iso is the identity of the algebra; a traversal anywhere makes a
// traversal, a fold anywhere makes a fold, and mixing a total single-focus
// accessor with a partial one drops to affine.
var composeKinds = [6][6]Kind{
	KindIso:       {KindIso, KindLens, KindPrism, KindAffine, KindTraversal, KindFold},
	KindLens:      {KindLens, KindLens, KindAffine, KindAffine, KindTraversal, KindFold},
	KindPrism:     {KindPrism, KindAffine, KindPrism, KindAffine, KindTraversal, KindFold},
	KindAffine:    {KindAffine, KindAffine, KindAffine, KindAffine, KindTraversal, KindFold},
	KindTraversal: {KindTraversal, KindTraversal, KindTraversal, KindTraversal, KindTraversal, KindFold},
	KindFold:      {KindFold, KindFold, KindFold, KindFold, KindFold, KindFold},
}

// AndThen composes two accessors, reaching the inner foci through the outer
// ones. The composition visits the inner foci of every outer focus in
// visiting order, and a write lands only when the whole path matches: a
// source whose path does not match is returned as is, not rebuilt.
//
// The result kind is determined by the operand kinds alone, never by data.
// Composing with a read-only operand yields a read-only result.
func AndThen[S, M, A any](outer Optic[S, M], inner Optic[M, A]) Optic[S, A] {
	o := Optic[S, A]{
		kind: composeKinds[outer.kind][inner.kind],
		foldMap: func(s S, empty Erased, combine func(Erased, Erased) Erased, extract func(A) Erased) Erased {
			return outer.foldMap(s, empty, combine, func(m M) Erased {
				return inner.foldMap(m, empty, combine, extract)
			})
		},
	}
	if outer.modifyF != nil && inner.modifyF != nil {
		o.modifyF = func(s S, f func(A) Erased, ap Applicative) Erased {
			return outer.modifyF(s, func(m M) Erased {
				return inner.modifyF(m, f, ap)
			}, ap)
		}
	}
	if outer.get != nil && inner.get != nil {
		o.get = func(s S) A { return inner.get(outer.get(s)) }
	}
	if outer.getOption != nil && inner.getOption != nil {
		o.getOption = func(s S) Option[A] {
			return FlatMapOption(outer.getOption(s), inner.getOption)
		}
	}
	if outer.set != nil && inner.set != nil {
		o.set = func(s S, a A) S {
			m, ok := outer.getOption(s).Get()
			if !ok {
				return s
			}
			if inner.getOption(m).IsNone() {
				return s
			}
			return outer.set(s, inner.set(m, a))
		}
	}
	if outer.build != nil && inner.build != nil {
		o.build = func(a A) S { return outer.build(inner.build(a)) }
	}
	return o
}

// ComposeIso chains two conversions.
func ComposeIso[S, M, A any](outer Iso[S, M], inner Iso[M, A]) Iso[S, A] {
	return Iso[S, A]{
		get:   func(s S) A { return inner.get(outer.get(s)) },
		build: func(a A) S { return outer.build(inner.build(a)) },
	}
}

// ComposeLens chains two total accessors.
func ComposeLens[S, M, A any](outer Lens[S, M], inner Lens[M, A]) Lens[S, A] {
	return Lens[S, A]{
		get: func(s S) A { return inner.get(outer.get(s)) },
		set: func(s S, a A) S { return outer.set(s, inner.set(outer.get(s), a)) },
	}
}

// ComposePrism chains two partial accessors, keeping the embedding.
func ComposePrism[S, M, A any](outer Prism[S, M], inner Prism[M, A]) Prism[S, A] {
	return Prism[S, A]{
		getOption: func(s S) Option[A] {
			return FlatMapOption(outer.getOption(s), inner.getOption)
		},
		build: func(a A) S { return outer.build(inner.build(a)) },
	}
}

// ComposeAffine chains two partial accessors.
func ComposeAffine[S, M, A any](outer Affine[S, M], inner Affine[M, A]) Affine[S, A] {
	return Affine[S, A]{
		getOption: func(s S) Option[A] {
			return FlatMapOption(outer.getOption(s), inner.getOption)
		},
		set: func(s S, a A) S {
			m, ok := outer.getOption(s).Get()
			if !ok {
				return s
			}
			return outer.set(s, inner.Set(m, a))
		},
	}
}

// ComposeTraversal chains two bulk accessors.
func ComposeTraversal[S, M, A any](outer Traversal[S, M], inner Traversal[M, A]) Traversal[S, A] {
	return Traversal[S, A]{modifyF: func(s S, f func(A) Erased, ap Applicative) Erased {
		return outer.modifyF(s, func(m M) Erased {
			return inner.modifyF(m, f, ap)
		}, ap)
	}}
}

// ComposeFold chains two read-only accessors.
func ComposeFold[S, M, A any](outer Fold[S, M], inner Fold[M, A]) Fold[S, A] {
	return Fold[S, A]{
		foldMap: func(s S, empty Erased, combine func(Erased, Erased) Erased, extract func(A) Erased) Erased {
			return outer.foldMap(s, empty, combine, func(m M) Erased {
				return inner.foldMap(m, empty, combine, extract)
			})
		},
	}
}
