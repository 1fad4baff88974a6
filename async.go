// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ModifyConcurrent applies f to every focus of o in s concurrently, one
// goroutine per focus, and rebuilds the source with the results in visiting
// order. The first error cancels the group context and is returned; the
// source is never observed partially updated.
func ModifyConcurrent[S, A any](ctx context.Context, o Optic[S, A], s S, f func(context.Context, A) (A, error)) (S, error) {
	targets := o.GetAll(s)
	if len(targets) == 0 {
		return s, nil
	}
	results := make([]A, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	for i, a := range targets {
		g.Go(func() error {
			r, err := f(ctx, a)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var zero S
		return zero, err
	}
	idx := 0
	out := o.Modify(s, func(A) A {
		r := results[idx]
		idx++
		return r
	})
	return out, nil
}
