// Package viewstate holds client-side view state shared by storefront and
// admin clients: load-once resources, the scroll section tracker and the
// optimistic category board.
package viewstate

import (
	"context"
	"sync"
)

// State is a point-in-time copy of a resource.
type State[T any] struct {
	Data    T
	Loading bool
	Err     error
}

type resourceOptions struct {
	captureErrors bool
}

type ResourceOption func(*resourceOptions)

// CaptureErrors records fetch errors in State.Err. Without it a failed fetch
// leaves the seeded data in place and no error is exposed.
func CaptureErrors() ResourceOption {
	return func(o *resourceOptions) { o.captureErrors = true }
}

// Resource is a load-once container seeded with a fallback value. Loading
// starts true and turns false exactly once, when the first fetch settles.
type Resource[T any] struct {
	mu        sync.Mutex
	state     State[T]
	opts      resourceOptions
	started   bool
	unmounted bool
	done      chan struct{}
}

func NewResource[T any](initial T, opts ...ResourceOption) *Resource[T] {
	r := &Resource[T]{
		state: State[T]{Data: initial, Loading: true},
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r
}

// Load runs fetch once in the background. Later calls are no-ops. The fetch
// itself is never cancelled; a result that settles after Unmount or after ctx
// is done is discarded.
func (r *Resource[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return
	}
	r.started = true
	r.mu.Unlock()

	go func() {
		defer close(r.done)
		data, err := fetch(context.WithoutCancel(ctx))

		r.mu.Lock()
		defer r.mu.Unlock()
		if r.unmounted || ctx.Err() != nil {
			return
		}
		if err != nil {
			if r.opts.captureErrors {
				r.state.Err = err
			}
		} else {
			r.state.Data = data
		}
		r.state.Loading = false
	}()
}

// Unmount stops the resource from accepting results.
func (r *Resource[T]) Unmount() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unmounted = true
}

func (r *Resource[T]) Snapshot() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Done is closed once the fetch has returned, whether or not its result was
// applied. It never closes if Load was not called.
func (r *Resource[T]) Done() <-chan struct{} {
	return r.done
}
