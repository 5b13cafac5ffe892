package api

import (
	"context"
)

// Future carries the result of an asynchronous call. The value and error
// are written once, before Done is closed.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func NewFuture[T any](fn func() (T, error)) *Future[T] {
	future := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(future.done)
		future.value, future.err = fn()
	}()
	return future
}

// CompletedFuture is already resolved, mostly useful for stubs
func CompletedFuture[T any](value T, err error) *Future[T] {
	future := &Future[T]{done: make(chan struct{}), value: value, err: err}
	close(future.done)
	return future
}

func (s *Future[T]) Done() <-chan struct{} {
	return s.done
}

// Await blocks until the result is ready or the context ends. A cancelled
// context doesn't stop the underlying call.
func (s *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-s.done:
		return s.value, s.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
