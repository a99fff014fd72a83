// File: threadpool/future.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package threadpool

import "context"

// FlushFuture is the single-shot completion of a posted flush barrier.
type FlushFuture struct {
	done chan struct{}
	err  error
}

func newFlushFuture() *FlushFuture {
	return &FlushFuture{done: make(chan struct{})}
}

// complete resolves the future. It is called exactly once, by the worker
// that served the barrier or by the post that dropped it.
func (f *FlushFuture) complete(err error) {
	f.err = err
	close(f.done)
}

// Done is closed once the flush has run or was dropped.
func (f *FlushFuture) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the flush resolves and returns the sink's flush error,
// or ErrFlushDropped if the barrier never reached a worker.
func (f *FlushFuture) Wait() error {
	<-f.done
	return f.err
}

// WaitContext is Wait bounded by ctx. Giving up does not cancel the flush.
func (f *FlushFuture) WaitContext(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the outcome once resolved, nil before.
func (f *FlushFuture) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}
