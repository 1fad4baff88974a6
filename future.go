// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// Future carrier for asynchronous results.
// Future[A] is the effect type of the asynchronous capability [FutureAp]:
// target updates run concurrently and recombine deterministically in
// visiting order, so the rebuilt source never depends on goroutine timing.

// Future is a single-assignment asynchronous value: it completes exactly
// once with either a value or an error.
type Future[A any] struct {
	done  chan struct{}
	value A
	err   error
}

// Async runs fn in a new goroutine and returns a Future completing with
// its result.
func Async[A any](fn func() (A, error)) *Future[A] {
	f := &Future[A]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = fn()
	}()
	return f
}

// Resolved returns an already-completed Future holding v.
func Resolved[A any](v A) *Future[A] {
	f := &Future[A]{done: make(chan struct{}), value: v}
	close(f.done)
	return f
}

// Failed returns an already-completed Future holding err.
func Failed[A any](err error) *Future[A] {
	f := &Future[A]{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

// Await blocks until the future completes and returns its result.
func (f *Future[A]) Await() (A, error) {
	<-f.done
	return f.value, f.err
}

// Done returns a channel closed when the future completes.
func (f *Future[A]) Done() <-chan struct{} {
	return f.done
}

// FutureAp returns the asynchronous capability: Pure resolves immediately
// and Map2 combines two futures in a new goroutine, awaiting fa before fb.
// An error in either operand fails the combined future, preferring fa's.
func FutureAp() Applicative { return futureAp{} }

type futureAp struct{}

func (futureAp) Pure(v Erased) Erased { return Resolved(v) }

func (futureAp) Map2(fa, fb Erased, fn func(a, b Erased) Erased) Erased {
	return Async(func() (Erased, error) {
		a, err := fa.(*Future[Erased]).Await()
		if err != nil {
			return nil, err
		}
		b, err := fb.(*Future[Erased]).Await()
		if err != nil {
			return nil, err
		}
		return fn(a, b), nil
	})
}

// ModifyFuture updates every target of o in s with f, running each update
// in its own goroutine and recombining results in visiting order. The
// returned future completes with the rebuilt source, or with the error of
// the leftmost failing target.
func ModifyFuture[S, A any](s S, o Optic[S, A], f func(A) (A, error)) *Future[S] {
	r := o.ModifyF(s, func(a A) Erased {
		return Async(func() (Erased, error) {
			v, err := f(a)
			if err != nil {
				return nil, err
			}
			return v, nil
		})
	}, FutureAp())
	return Async(func() (S, error) {
		v, err := r.(*Future[Erased]).Await()
		if err != nil {
			var zero S
			return zero, err
		}
		return v.(S), nil
	})
}
