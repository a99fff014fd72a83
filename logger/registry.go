// File: logger/registry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Registry constructs each named logger at most once. It is an ordinary
// value: create one per process (or per test) and pass it where needed.

package logger

import (
	"log"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/brickingsoft/errors"
	"github.com/momentics/hioload-logpool/api"
	"github.com/momentics/hioload-logpool/threadpool"
)

// EnvCPUID is exported to the environment with the CPU of the most recently
// created logger.
const EnvCPUID = "CEL_SPDLOG_CPU_ID"

// Registry maps names to file-backed async loggers sharing one pool.
type Registry struct {
	mu      sync.Mutex
	pool    *threadpool.Pool
	loggers map[string]*Logger

	policy api.OverflowPolicy
	now    func() time.Time
	setenv func(key, value string) error
	diag   *log.Logger
}

// RegistryOption customises a Registry.
type RegistryOption func(*Registry)

// WithRegistryPolicy sets the overflow policy of loggers the registry creates.
func WithRegistryPolicy(p api.OverflowPolicy) RegistryOption {
	return func(r *Registry) { r.policy = p }
}

// WithRegistryClock replaces time.Now for file names and records.
func WithRegistryClock(now func() time.Time) RegistryOption {
	return func(r *Registry) { r.now = now }
}

// WithSetenv replaces os.Setenv for the CPU id export.
func WithSetenv(fn func(key, value string) error) RegistryOption {
	return func(r *Registry) { r.setenv = fn }
}

// WithDiagnostics sets the logger for registry-level problems.
func WithDiagnostics(l *log.Logger) RegistryOption {
	return func(r *Registry) { r.diag = l }
}

// NewRegistry creates an empty registry posting through pool.
func NewRegistry(pool *threadpool.Pool, opts ...RegistryOption) *Registry {
	r := &Registry{
		pool:    pool,
		loggers: make(map[string]*Logger),
		policy:  api.Block,
		now:     time.Now,
		setenv:  os.Setenv,
		diag:    log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetOrCreate returns the logger called name, creating it on first use with
// a file "<dir>/<name>_<timestamp>.log" and the given level. Later calls
// return the existing logger and ignore the other arguments.
func (r *Registry) GetOrCreate(cpuID int, name, dir, level string) (*Logger, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.loggers[name]; ok {
		return l, nil
	}

	if err := r.setenv(EnvCPUID, strconv.Itoa(cpuID)); err != nil {
		r.diag.Printf("[logger] failed to export %s: %v", EnvCPUID, err)
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	path := FileName(dir, name, r.now())
	sink, err := OpenFileSink(path)
	if err != nil {
		return nil, errors.From(
			ErrOpenFile,
			errors.WithMeta(errMetaNameKey, name),
			errors.WithMeta(errMetaPathKey, path),
			errors.WithWrap(err),
		)
	}

	l := New(name, r.pool, []api.Sink{sink},
		WithPolicy(r.policy),
		WithLevel(lvl),
		WithFlushOn(api.LevelInfo),
		WithCPU(cpuID),
		WithClock(r.now),
		withClosers(sink),
	)
	r.loggers[name] = l
	return l, nil
}

// Register adds an externally built logger. It fails if the name is taken.
func (r *Registry) Register(l *Logger) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.loggers[l.Name()]; ok {
		return false
	}
	r.loggers[l.Name()] = l
	return true
}

// Get looks up a logger by name.
func (r *Registry) Get(name string) (*Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.loggers[name]
	return l, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.loggers))
	for n := range r.loggers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Drop removes and closes the named logger.
func (r *Registry) Drop(name string) error {
	r.mu.Lock()
	l, ok := r.loggers[name]
	delete(r.loggers, name)
	r.mu.Unlock()
	if !ok {
		return nil
	}
	return l.Close()
}

// FlushAll flushes every logger and waits for completion.
func (r *Registry) FlushAll() error {
	var first error
	for _, l := range r.snapshot() {
		if err := l.Flush(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Close closes every logger and empties the registry. The pool is not closed.
func (r *Registry) Close() error {
	r.mu.Lock()
	all := r.loggers
	r.loggers = make(map[string]*Logger)
	r.mu.Unlock()

	var first error
	for _, l := range all {
		if err := l.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (r *Registry) snapshot() []*Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Logger, 0, len(r.loggers))
	for _, l := range r.loggers {
		out = append(out, l)
	}
	return out
}
