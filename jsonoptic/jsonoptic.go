// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package jsonoptic provides accessors over dynamically typed JSON
// documents.
//
// A document is the any-typed value tree produced by [Parse]: objects are
// map[string]any, arrays are []any, strings are string, numbers are
// float64, booleans are bool and null is nil. The accessors compose with
// the optic package as usual, so a [Path] can be chained with [Strings] or
// [Numbers] to read and rewrite typed leaves deep inside a document
// without mutating it.
package jsonoptic

import (
	"fmt"
	"maps"
	"slices"

	jsoniter "github.com/json-iterator/go"

	"code.hybscloud.com/optic"
)

var (
	readAPI  = jsoniter.ConfigFastest
	writeAPI = jsoniter.ConfigCompatibleWithStandardLibrary
)

// Parse decodes data into a document tree.
func Parse(data []byte) (any, error) {
	var doc any
	if err := readAPI.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("jsonoptic: parse: %w", err)
	}
	return doc, nil
}

// Render encodes a document tree, with object keys in sorted order.
func Render(doc any) ([]byte, error) {
	out, err := writeAPI.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("jsonoptic: render: %w", err)
	}
	return out, nil
}

// Valid reports whether data is syntactically valid JSON.
func Valid(data []byte) bool {
	return readAPI.Valid(data)
}

// Key returns the affine focusing the value at a key of a JSON object.
// Non-objects and absent keys never match; writes copy the object.
func Key(name string) optic.Affine[any, any] {
	return optic.AffineOf(
		func(doc any) optic.Option[any] {
			m, ok := doc.(map[string]any)
			if !ok {
				return optic.None[any]()
			}
			v, ok := m[name]
			if !ok {
				return optic.None[any]()
			}
			return optic.Some(v)
		},
		func(doc, v any) any {
			out := maps.Clone(doc.(map[string]any))
			out[name] = v
			return out
		},
	)
}

// Index returns the affine focusing element i of a JSON array.
// Non-arrays and out-of-range indexes never match; writes copy the array.
func Index(i int) optic.Affine[any, any] {
	return optic.AffineOf(
		func(doc any) optic.Option[any] {
			arr, ok := doc.([]any)
			if !ok || i < 0 || i >= len(arr) {
				return optic.None[any]()
			}
			return optic.Some(arr[i])
		},
		func(doc, v any) any {
			out := slices.Clone(doc.([]any))
			out[i] = v
			return out
		},
	)
}

// Values returns the traversal visiting every element of a JSON array in
// index order. A non-array document has no foci and passes through
// unchanged.
func Values() optic.Traversal[any, any] {
	return optic.TraversalOf(func(doc any, f func(any) optic.Erased, ap optic.Applicative) optic.Erased {
		arr, ok := doc.([]any)
		if !ok {
			return ap.Pure(doc)
		}
		acc := ap.Pure(make([]optic.Erased, 0, len(arr)))
		for _, v := range arr {
			acc = ap.Map2(acc, f(v), func(xs, x optic.Erased) optic.Erased {
				return append(xs.([]optic.Erased), x)
			})
		}
		return ap.Map2(acc, ap.Pure(nil), func(rs, _ optic.Erased) optic.Erased {
			buf := rs.([]optic.Erased)
			if len(buf) == 0 {
				return doc
			}
			out := make([]any, len(arr))
			copy(out, buf)
			return out
		})
	})
}

// Strings returns the prism matching string leaves.
func Strings() optic.Prism[any, string] {
	return optic.VariantOf[any, string]()
}

// Numbers returns the prism matching number leaves, decoded as float64.
func Numbers() optic.Prism[any, float64] {
	return optic.VariantOf[any, float64]()
}

// Bools returns the prism matching boolean leaves.
func Bools() optic.Prism[any, bool] {
	return optic.VariantOf[any, bool]()
}

// Arrays returns the prism matching array nodes.
func Arrays() optic.Prism[any, []any] {
	return optic.VariantOf[any, []any]()
}

// Objects returns the prism matching object nodes.
func Objects() optic.Prism[any, map[string]any] {
	return optic.VariantOf[any, map[string]any]()
}

// Path returns the accessor walking a document along the given steps:
// a string step descends into an object key, an int step into an array
// element. The result is an affine, so a document missing any step of the
// path reads as None and passes writes through unchanged. Path panics on
// any other step type.
func Path(steps ...any) optic.Optic[any, any] {
	o := optic.Identity[any]().Optic()
	for _, step := range steps {
		switch st := step.(type) {
		case string:
			o = optic.AndThen(o, Key(st).Optic())
		case int:
			o = optic.AndThen(o, Index(st).Optic())
		default:
			panic(fmt.Sprintf("jsonoptic: Path step must be string or int, got %T", step))
		}
	}
	return o
}
