// File: internal/concurrency/bounded_queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// BoundedQueue is a mutex/condition-variable queue over an eapache ring with
// three intake disciplines: block, overrun the oldest entry, or discard the
// new one. Overrun and discard outcomes are counted, not reported as errors.

package concurrency

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brickingsoft/errors"
	"github.com/eapache/queue"
	"golang.org/x/sys/cpu"
)

// BoundedQueue is a fixed-capacity FIFO safe for any number of producers
// and consumers.
type BoundedQueue[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond
	items    *queue.Queue
	capacity int

	_       cpu.CacheLinePad
	overrun atomic.Uint64
	_       cpu.CacheLinePad
	discard atomic.Uint64
	_       cpu.CacheLinePad
}

// NewBoundedQueue creates a queue holding at most capacity items.
func NewBoundedQueue[T any](capacity int) (*BoundedQueue[T], error) {
	if capacity < 1 {
		return nil, errors.From(
			ErrInvalidCapacity,
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithMeta(errMetaCapacityKey, strconv.Itoa(capacity)),
		)
	}
	q := &BoundedQueue[T]{
		items:    queue.New(),
		capacity: capacity,
	}
	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)
	return q, nil
}

// Enqueue inserts item, waiting for room if the queue is full.
func (q *BoundedQueue[T]) Enqueue(item T) {
	q.mu.Lock()
	for q.items.Length() >= q.capacity {
		q.notFull.Wait()
	}
	q.items.Add(item)
	q.mu.Unlock()
	q.notEmpty.Signal()
}

// EnqueueNoWait inserts item, evicting the oldest entry when full.
// It never blocks. The evicted entry, if any, is returned so the caller can
// release what it holds.
func (q *BoundedQueue[T]) EnqueueNoWait(item T) (evicted T, overrun bool) {
	q.mu.Lock()
	if q.items.Length() >= q.capacity {
		evicted = q.items.Remove().(T)
		overrun = true
		q.overrun.Add(1)
	}
	q.items.Add(item)
	q.mu.Unlock()
	q.notEmpty.Signal()
	return evicted, overrun
}

// EnqueueIfHaveRoom inserts item unless the queue is full, in which case the
// item is dropped and counted. It never blocks and reports whether item was queued.
func (q *BoundedQueue[T]) EnqueueIfHaveRoom(item T) bool {
	q.mu.Lock()
	if q.items.Length() >= q.capacity {
		q.mu.Unlock()
		q.discard.Add(1)
		return false
	}
	q.items.Add(item)
	q.mu.Unlock()
	q.notEmpty.Signal()
	return true
}

// Dequeue removes the oldest item, waiting until one is available.
func (q *BoundedQueue[T]) Dequeue() T {
	q.mu.Lock()
	for q.items.Length() == 0 {
		q.notEmpty.Wait()
	}
	item := q.items.Remove().(T)
	q.mu.Unlock()
	q.notFull.Signal()
	return item
}

// DequeueFor is Dequeue bounded by timeout. ok is false if nothing arrived in time.
// Pool workers block in Dequeue; DequeueFor serves consumers that must give up,
// such as a deadline-bounded drain.
func (q *BoundedQueue[T]) DequeueFor(timeout time.Duration) (item T, ok bool) {
	deadline := time.Now().Add(timeout)
	expired := false
	timer := time.AfterFunc(timeout, func() {
		q.mu.Lock()
		expired = true
		q.mu.Unlock()
		q.notEmpty.Broadcast()
	})
	defer timer.Stop()

	q.mu.Lock()
	for q.items.Length() == 0 {
		if expired || !time.Now().Before(deadline) {
			q.mu.Unlock()
			return item, false
		}
		q.notEmpty.Wait()
	}
	item = q.items.Remove().(T)
	q.mu.Unlock()
	q.notFull.Signal()
	return item, true
}

// Size returns the current number of queued items.
func (q *BoundedQueue[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Length()
}

// Capacity returns the fixed capacity.
func (q *BoundedQueue[T]) Capacity() int {
	return q.capacity
}

// OverrunCounter returns how many items EnqueueNoWait evicted.
func (q *BoundedQueue[T]) OverrunCounter() uint64 {
	return q.overrun.Load()
}

// ResetOverrunCounter zeroes the overrun counter.
func (q *BoundedQueue[T]) ResetOverrunCounter() {
	q.overrun.Store(0)
}

// DiscardCounter returns how many items EnqueueIfHaveRoom dropped.
func (q *BoundedQueue[T]) DiscardCounter() uint64 {
	return q.discard.Load()
}

// ResetDiscardCounter zeroes the discard counter.
func (q *BoundedQueue[T]) ResetDiscardCounter() {
	q.discard.Store(0)
}
