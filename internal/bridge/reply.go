package bridge

import (
	"context"
	"sync"
	"sync/atomic"
)

// result carries either a value or the error the remote API returned.
type result[T any] struct {
	value T
	err   error
}

// reply is a single-use channel with one producer (the worker) and one
// consumer (the waiting caller). It resolves exactly once, either with a
// value or by being abandoned.
type reply[T any] struct {
	ch   chan T
	once sync.Once
	gone atomic.Bool
}

func newReply[T any]() *reply[T] {
	return &reply[T]{ch: make(chan T, 1)}
}

// send delivers v without blocking. It reports false when the reply was
// already resolved or the consumer stopped waiting; either way v is dropped.
func (r *reply[T]) send(v T) bool {
	sent := false
	r.once.Do(func() {
		r.ch <- v
		close(r.ch)
		sent = true
	})

	return sent && !r.gone.Load()
}

// abandon resolves the reply without a value. The consumer sees ErrExited.
// It is a no-op after send.
func (r *reply[T]) abandon() {
	r.once.Do(func() {
		close(r.ch)
	})
}

// wait blocks until the reply resolves or ctx is done.
func (r *reply[T]) wait(ctx context.Context) (T, error) {
	var zero T

	select {
	case v, ok := <-r.ch:
		if !ok {
			return zero, ErrExited
		}
		return v, nil
	case <-ctx.Done():
		r.gone.Store(true)
		return zero, ctx.Err()
	}
}
