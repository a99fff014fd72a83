// File: threadpool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool owns the message queue and the worker threads draining it.

package threadpool

import (
	"fmt"
	"log"
	"runtime"
	"strconv"
	"sync"

	"github.com/brickingsoft/errors"
	"github.com/momentics/hioload-logpool/affinity"
	"github.com/momentics/hioload-logpool/api"
	"github.com/momentics/hioload-logpool/internal/concurrency"
)

const (
	MinThreads = 1
	MaxThreads = 1000
)

// Pool is a fixed-size set of worker threads sharing one bounded queue.
// It is not resizable; all workers start in New and stop in Close.
type Pool struct {
	q       *concurrency.BoundedQueue[message]
	threads []api.ThreadID
	pinned  bool
	opts    options

	// mu orders posts against Close: posts hold it shared while enqueueing,
	// Close takes it exclusively to flip closed before queuing terminates.
	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
	wg        sync.WaitGroup
}

type threadSlot struct {
	idx int
	tid api.ThreadID
}

// New starts threads workers over a queue of queueSize entries. Once all
// workers are running, their threads are pinned through the configured
// binder; pinning failures are logged and otherwise ignored.
func New(queueSize, threads int, opts ...Option) (*Pool, error) {
	if threads < MinThreads || threads > MaxThreads {
		return nil, errors.From(
			ErrInvalidThreadCount,
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithMeta(errMetaThreadsKey, strconv.Itoa(threads)),
		)
	}
	q, err := concurrency.NewBoundedQueue[message](queueSize)
	if err != nil {
		return nil, errors.From(ErrInvalidQueueSize, errors.WithWrap(err))
	}

	o := options{
		onStart:    func() {},
		onStop:     func() {},
		namePrefix: DefaultNamePrefix,
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.binderSet {
		o.binder = affinity.NewEnvBinder(affinity.WithLogger(o.logger))
	}
	if o.onStart == nil {
		o.onStart = func() {}
	}
	if o.onStop == nil {
		o.onStop = func() {}
	}
	if o.onError == nil {
		logger := o.logger
		o.onError = func(err error) { logger.Printf("[threadpool] %v", err) }
	}

	p := &Pool{
		q:       q,
		threads: make([]api.ThreadID, threads),
		opts:    o,
	}
	ready := make(chan threadSlot, threads)
	for i := 0; i < threads; i++ {
		p.wg.Add(1)
		go p.worker(i, ready)
	}
	for i := 0; i < threads; i++ {
		slot := <-ready
		p.threads[slot.idx] = slot.tid
	}
	p.pin()
	return p, nil
}

func (p *Pool) pin() {
	if p.opts.binder == nil {
		return
	}
	err := p.opts.binder.Bind(p.Threads())
	switch {
	case err == nil:
		p.pinned = true
	case affinity.IsNotConfigured(err):
	default:
		p.opts.logger.Printf("[threadpool] worker pinning skipped: %v", err)
	}
}

func (p *Pool) worker(idx int, ready chan<- threadSlot) {
	defer p.wg.Done()
	runtime.LockOSThread()

	name := p.opts.namePrefix + strconv.Itoa(idx)
	if err := affinity.SetCurrentThreadName(name); err != nil && !errors.Is(err, affinity.ErrNotSupported) {
		p.opts.logger.Printf("[threadpool] failed to set thread name for %s: %v", name, err)
	}
	ready <- threadSlot{idx: idx, tid: affinity.CurrentThreadID()}

	p.opts.onStart()
	for p.processNext() {
	}
	p.opts.onStop()
}

// processNext handles one message and reports whether the worker should continue.
func (p *Pool) processNext() bool {
	switch m := p.q.Dequeue().(type) {
	case payload:
		if err := p.invoke(m.sink, m.rec, errMetaOpWrite); err != nil {
			p.opts.onError(err)
		}
		return true
	case flushBarrier:
		err := p.invoke(m.sink, api.Record{}, errMetaOpFlush)
		if err != nil {
			p.opts.onError(err)
		}
		m.future.complete(err)
		return true
	case terminate:
		return false
	default:
		panic(fmt.Sprintf("threadpool: unexpected message type %T", m))
	}
}

// invoke runs one sink call, converting a panic into ErrSinkPanic so the
// worker survives a faulty sink.
func (p *Pool) invoke(sink api.Sink, rec api.Record, op string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.From(
				ErrSinkPanic,
				errors.WithMeta(errMetaOpKey, op),
				errors.WithMeta(errMetaPanicKey, fmt.Sprint(r)),
			)
		}
	}()
	if op == errMetaOpFlush {
		return sink.Flush()
	}
	return sink.Write(rec)
}

// PostLog queues rec for delivery to sink under policy.
// A record dropped by the policy is counted, not reported.
func (p *Pool) PostLog(sink api.Sink, rec api.Record, policy api.OverflowPolicy) error {
	if sink == nil {
		return ErrNilSink
	}
	_, err := p.post(payload{sink: sink, rec: rec}, policy)
	return err
}

// PostFlush queues a flush barrier for sink. The returned future resolves
// after every message queued before the barrier has been handed to a worker
// and sink.Flush has returned.
func (p *Pool) PostFlush(sink api.Sink, policy api.OverflowPolicy) (*FlushFuture, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	f := newFlushFuture()
	queued, err := p.post(flushBarrier{sink: sink, future: f}, policy)
	if err != nil {
		return nil, err
	}
	if !queued {
		f.complete(ErrFlushDropped)
	}
	return f, nil
}

func (p *Pool) post(m message, policy api.OverflowPolicy) (bool, error) {
	if !policy.Valid() {
		return false, errors.From(
			ErrInvalidPolicy,
			errors.WithMeta(errMetaPolicyKey, strconv.Itoa(int(policy))),
		)
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false, ErrPoolClosed
	}
	switch policy {
	case api.Block:
		p.q.Enqueue(m)
	case api.OverrunOldest:
		if evicted, ok := p.q.EnqueueNoWait(m); ok {
			release(evicted)
		}
	case api.DiscardNew:
		return p.q.EnqueueIfHaveRoom(m), nil
	}
	return true, nil
}

// release resolves what an evicted message still owes its producer.
func release(m message) {
	if fb, ok := m.(flushBarrier); ok {
		fb.future.complete(ErrFlushDropped)
	}
}

// Close queues one terminate per worker behind all pending messages and
// waits for every worker to exit. It must not be called from a sink.
func (p *Pool) Close() error {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		for range p.threads {
			p.q.Enqueue(terminate{})
		}
		p.wg.Wait()
	})
	return nil
}

// Threads returns the OS thread ids of the workers, in creation order.
func (p *Pool) Threads() []api.ThreadID {
	out := make([]api.ThreadID, len(p.threads))
	copy(out, p.threads)
	return out
}

// Pinned reports whether the binder pinned every worker thread.
func (p *Pool) Pinned() bool {
	return p.pinned
}

// QueueSize returns the number of queued messages.
func (p *Pool) QueueSize() int {
	return p.q.Size()
}

// QueueCapacity returns the queue capacity.
func (p *Pool) QueueCapacity() int {
	return p.q.Capacity()
}

// OverrunCounter returns how many messages were evicted by OverrunOldest.
func (p *Pool) OverrunCounter() uint64 {
	return p.q.OverrunCounter()
}

// ResetOverrunCounter zeroes the overrun counter.
func (p *Pool) ResetOverrunCounter() {
	p.q.ResetOverrunCounter()
}

// DiscardCounter returns how many messages were dropped by DiscardNew.
func (p *Pool) DiscardCounter() uint64 {
	return p.q.DiscardCounter()
}

// ResetDiscardCounter zeroes the discard counter.
func (p *Pool) ResetDiscardCounter() {
	p.q.ResetDiscardCounter()
}
