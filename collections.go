// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

import (
	"maps"
	"slices"
)

// Stock accessors for slices and maps.
// All writers copy on write: the source collection is never mutated and
// misses leave it untouched.

// Index returns the affine focusing element i of a slice. An out-of-range
// index never matches, so writes against it are no-ops.
func Index[A any](i int) Affine[[]A, A] {
	return Affine[[]A, A]{
		getOption: func(s []A) Option[A] {
			if i < 0 || i >= len(s) {
				return None[A]()
			}
			return Some(s[i])
		},
		set: func(s []A, a A) []A {
			out := slices.Clone(s)
			out[i] = a
			return out
		},
	}
}

// Key returns the affine focusing the value at key k of a map. An absent
// key never matches, so writes against it are no-ops; use [At] to insert
// or delete entries.
func Key[K comparable, V any](k K) Affine[map[K]V, V] {
	return Affine[map[K]V, V]{
		getOption: func(s map[K]V) Option[V] {
			if v, ok := s[k]; ok {
				return Some(v)
			}
			return None[V]()
		},
		set: func(s map[K]V, v V) map[K]V {
			out := maps.Clone(s)
			out[k] = v
			return out
		},
	}
}

// At returns the lens focusing the presence of key k in a map: the focus is
// Some(value) when the entry exists and None otherwise. Setting Some inserts
// or replaces the entry, setting None deletes it, and either direction
// copies the map.
func At[K comparable, V any](k K) Lens[map[K]V, Option[V]] {
	return Lens[map[K]V, Option[V]]{
		get: func(s map[K]V) Option[V] {
			if v, ok := s[k]; ok {
				return Some(v)
			}
			return None[V]()
		},
		set: func(s map[K]V, o Option[V]) map[K]V {
			v, ok := o.Get()
			if !ok {
				if _, present := s[k]; !present {
					return s
				}
				out := maps.Clone(s)
				delete(out, k)
				return out
			}
			out := maps.Clone(s)
			if out == nil {
				out = make(map[K]V, 1)
			}
			out[k] = v
			return out
		},
	}
}
