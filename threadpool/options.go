// File: threadpool/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package threadpool

import (
	"log"

	"github.com/momentics/hioload-logpool/api"
)

// DefaultNamePrefix names worker i "async.worker<i>".
const DefaultNamePrefix = "async.worker"

type options struct {
	onStart    func()
	onStop     func()
	binder     api.Binder
	binderSet  bool
	namePrefix string
	logger     *log.Logger
	onError    func(error)
}

// Option customises a Pool.
type Option func(*options)

// WithOnThreadStart runs fn on every worker thread before it takes work.
func WithOnThreadStart(fn func()) Option {
	return func(o *options) { o.onStart = fn }
}

// WithOnThreadStop runs fn on every worker thread after it stops.
func WithOnThreadStop(fn func()) Option {
	return func(o *options) { o.onStop = fn }
}

// WithBinder replaces the default LogCPUSet binder. A nil binder disables pinning.
func WithBinder(b api.Binder) Option {
	return func(o *options) {
		o.binder = b
		o.binderSet = true
	}
}

// WithNamePrefix changes the worker thread name prefix.
func WithNamePrefix(prefix string) Option {
	return func(o *options) { o.namePrefix = prefix }
}

// WithLogger sets the diagnostics logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithErrorHandler receives sink write/flush failures seen by workers.
// By default they are logged.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) { o.onError = fn }
}
