// File: threadpool/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package threadpool

import "github.com/brickingsoft/errors"

var (
	// ErrInvalidThreadCount is returned for a thread count outside [MinThreads, MaxThreads].
	ErrInvalidThreadCount = errors.Define("threadpool: invalid thread count (valid range is 1-1000)")
	// ErrInvalidQueueSize is returned for a queue capacity below one.
	ErrInvalidQueueSize = errors.Define("threadpool: invalid queue size")
	// ErrInvalidPolicy is returned for an undefined overflow policy.
	ErrInvalidPolicy = errors.Define("threadpool: invalid overflow policy")
	// ErrNilSink is returned when a message is posted without a destination.
	ErrNilSink = errors.Define("threadpool: nil sink")
	// ErrPoolClosed is returned by posts after Close.
	ErrPoolClosed = errors.Define("threadpool: closed")
	// ErrFlushDropped resolves a flush future whose barrier was discarded or overrun.
	ErrFlushDropped = errors.Define("threadpool: flush dropped by overflow policy")
	// ErrSinkPanic wraps a panic raised by a sink inside a worker.
	ErrSinkPanic = errors.Define("threadpool: sink panicked")
)

const (
	errMetaPkgKey     = "pkg"
	errMetaPkgVal     = "threadpool"
	errMetaThreadsKey = "threads"
	errMetaPolicyKey  = "policy"
	errMetaPanicKey   = "panic"
	errMetaOpKey      = "op"
	errMetaOpWrite    = "write"
	errMetaOpFlush    = "flush"
)
