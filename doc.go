// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package optic provides composable accessors for reading and updating
// immutable data structures in Go.
//
// An accessor focuses part of a larger value: a field of a struct, the
// variant of a sum type, every element of a collection. Accessors compose
// with [AndThen] into deep paths that read and rewrite nested data without
// hand-written plumbing, and every update copies on write: sources are
// never mutated.
//
// # Design Philosophy
//
// optic provides:
//   - Six accessor variants with precise read/write capabilities
//   - A closed composition algebra: the kind of a composition depends only
//     on the operand kinds, never on the data
//   - One effectful update protocol from which plain updates, queries and
//     effectful traversals all derive
//
// # Accessor Variants
//
// Each variant is a small struct created from plain functions:
//
//   - [Iso]: lossless two-way conversion, exactly one focus
//   - [Lens]: total accessor, exactly one focus
//   - [Prism]: partial accessor with an embedding, zero or one focus
//   - [Affine]: partial accessor without an embedding, zero or one focus
//   - [Traversal]: bulk accessor, zero or more foci in stable order
//   - [Fold]: read-only bulk accessor
//
// Constructors: [IsoOf], [LensOf], [PrismOf], [AffineOf], [TraversalOf],
// [FoldOf]. Conversions walk down the capability order ([Iso.AsLens],
// [Lens.AsAffine], [Affine.AsTraversal], [Traversal.AsFold], ...); there
// are no conversions back up.
//
// # Composition
//
// Every variant packs into the uniform [Optic] via its Optic method, and
// [AndThen] composes any two. The result kind follows the composition
// algebra ([Kind], composeKinds): iso is the identity, a traversal anywhere
// makes a traversal, a fold anywhere makes a fold, and mixing total with
// partial single-focus accessors drops to affine. Writes through a
// composition land only when the whole path matches; otherwise the source
// is returned as is, not rebuilt.
//
// Same-kind chains keep their type with [ComposeIso], [ComposeLens],
// [ComposePrism], [ComposeAffine], [ComposeTraversal], [ComposeFold].
//
// # Effectful Update Protocol
//
// [Optic.ModifyF] is the one update primitive: it visits every focus with
// an effectful function and recombines partial results under an
// [Applicative] capability. Everything else derives from it:
//
//   - [Optic.Modify], [Optic.Set]: ModifyF under [IdentityAp]
//   - [FoldMap] and the queries: ModifyF under an internal constant
//     capability over a [Monoid]
//   - [ModifyOption]: short-circuit on the first None, no failure detail
//   - [ModifyEither]: fail fast with the leftmost Left
//   - [ModifyValidated]: accumulate every failure in visiting order
//   - [ModifyFuture]: per-focus goroutines, deterministic recombination
//   - [ModifyConcurrent]: errgroup-based bulk update with context
//     cancellation
//
// Type-erased values:
//
//   - [Erased]: Type alias for any, marking type-erased effect values
//     crossing the capability boundary. Go cannot parameterise over
//     unapplied type constructors, so capabilities traffic in [Erased] and
//     the typed runners recover concrete effect types via assertions at
//     the boundary.
//
// # Queries
//
// Read operations on [Optic]:
//
//   - [Optic.Get]: the focus of a total accessor (panics on partial kinds)
//   - [Optic.GetOption]: the first focus or None
//   - [Optic.GetAll]: every focus in visiting order
//   - [Optic.Exists], [Optic.All], [Optic.Find]: predicate scans that stop
//     at the first decisive focus
//   - [Optic.Count], [Optic.IsEmpty]: focus counting
//   - [FoldMap]: reduce the foci through an arbitrary [Monoid]
//
// Stock monoids: [SliceMonoid], [StringMonoid], [SumMonoid], [AnyMonoid],
// [AllMonoid], [FirstMonoid].
//
// # Stock Accessors
//
// Collections (all copy on write):
//
//   - [Index]: element i of a slice (affine; out of range never matches)
//   - [Key]: value at a key of a map (affine; absent key never matches)
//   - [At]: presence of a key as [Option] (lens; Some inserts, None deletes)
//   - [SliceValues]: every slice element in index order (traversal)
//   - [MapValues]: every map value in sorted key order (traversal)
//
// Sum types:
//
//   - [SomeOf]: the present value of an [Option]
//   - [RightOf], [LeftOf]: the sides of an [Either]
//   - [ValidOf]: the valid value of a [Validated]
//   - [VariantOf]: the concrete variant held by an interface type
//   - [Filtered]: values satisfying a predicate (affine; see its caveat)
//
// Pairs: [Pair], [PairOf], [FirstOf], [SecondOf]. Identity: [Identity].
//
// # Result Carriers
//
// [Option] for partial reads, [Either] for fail-fast updates, [Validated]
// for accumulating updates, [Future] for asynchronous ones:
//
//   - [Some], [None], [MapOption], [FlatMapOption], [MatchOption]
//   - [Left], [Right], [MatchEither], [MapEither], [FlatMapEither],
//     [MapLeftEither]
//   - [Valid], [Invalid], [MapValidated], [CombineValidated]
//   - [Async], [Resolved], [Failed], [Future.Await], [Future.Done]
//
// Capability constructors: [IdentityAp], [OptionAp], [EitherAp],
// [ValidatedAp], [FutureAp].
//
// # Example
//
//	type Address struct{ City string }
//	type Person struct {
//		Name    string
//		Address Address
//	}
//
//	address := optic.LensOf(
//		func(p Person) Address { return p.Address },
//		func(p Person, a Address) Person { p.Address = a; return p },
//	)
//	city := optic.LensOf(
//		func(a Address) string { return a.City },
//		func(a Address, c string) Address { a.City = c; return a },
//	)
//
//	personCity := optic.AndThen(address.Optic(), city.Optic())
//	p := Person{Name: "Ada", Address: Address{City: "Paris"}}
//	q := personCity.Set(p, "Tokyo")
//	// q.Address.City == "Tokyo", p unchanged
package optic
