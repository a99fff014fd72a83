// File: affinity/binder.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// EnvBinder pins worker threads to the CPU list named by an environment
// variable. Every failure is advisory: the caller keeps running unpinned.

package affinity

import (
	"log"
	"os"
	"strconv"

	"github.com/brickingsoft/errors"
	"github.com/momentics/hioload-logpool/api"
	"github.com/momentics/hioload-logpool/cpuset"
)

// EnvCPUSet is the default variable holding the worker CPU range list.
const EnvCPUSet = "LogCPUSet"

// Ensure compile-time interface compliance.
var _ api.Binder = (*EnvBinder)(nil)

// EnvBinder implements api.Binder from an environment-provided range list.
type EnvBinder struct {
	env       string
	lookupEnv func(string) (string, bool)
	numCPU    func() int
	apply     func(api.ThreadID, *cpuset.Set) error
	logger    *log.Logger
}

// Option customises an EnvBinder.
type Option func(*EnvBinder)

// WithEnv reads the CPU list from a different variable name.
func WithEnv(name string) Option {
	return func(b *EnvBinder) { b.env = name }
}

// WithLookup replaces os.LookupEnv, e.g. to feed a value from configuration.
func WithLookup(fn func(string) (string, bool)) Option {
	return func(b *EnvBinder) { b.lookupEnv = fn }
}

// WithCPUList binds to a fixed list instead of reading the environment.
// An empty list disables pinning.
func WithCPUList(list string) Option {
	return WithLookup(func(string) (string, bool) { return list, list != "" })
}

// WithNumCPU replaces the CPU inventory probe.
func WithNumCPU(fn func() int) Option {
	return func(b *EnvBinder) { b.numCPU = fn }
}

// WithApply replaces the OS affinity call, which lets tests inject failures.
func WithApply(fn func(api.ThreadID, *cpuset.Set) error) Option {
	return func(b *EnvBinder) { b.apply = fn }
}

// WithLogger sets the diagnostics sink. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(b *EnvBinder) { b.logger = l }
}

// NewEnvBinder creates a binder reading EnvCPUSet.
func NewEnvBinder(opts ...Option) *EnvBinder {
	b := &EnvBinder{
		env:       EnvCPUSet,
		lookupEnv: os.LookupEnv,
		numCPU:    cpuset.MaxCPUs,
		apply:     SetThreadAffinity,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Resolve reads and parses the configured CPU list. CPUs beyond the
// inventory are ignored. ErrNotConfigured is returned when the variable is unset.
func (b *EnvBinder) Resolve() (*cpuset.Set, error) {
	value, ok := b.lookupEnv(b.env)
	if !ok {
		return nil, errors.From(ErrNotConfigured, errors.WithMeta(errMetaEnvKey, b.env))
	}
	ncpus := b.numCPU()
	if ncpus <= 0 {
		b.logger.Printf("[affinity] failed to get cpu count")
		return nil, errors.From(ErrInvalidCPUSet, errors.WithMeta(errMetaEnvKey, b.env))
	}
	set, err := cpuset.ParseList(value, ncpus, false)
	if err != nil {
		b.logger.Printf("[affinity] failed to parse cpu list %s=%q: %v", b.env, value, err)
		return nil, errors.From(
			ErrInvalidCPUSet,
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithMeta(errMetaValueKey, value),
			errors.WithWrap(err),
		)
	}
	if set.Count() == 0 {
		b.logger.Printf("[affinity] cpu list %s=%q selects no cpu", b.env, value)
		return nil, errors.From(ErrEmptySet, errors.WithMeta(errMetaValueKey, value))
	}
	return set, nil
}

// Bind pins every thread in threads to the configured CPU set. A thread that
// cannot be pinned is logged and skipped; threads already pinned stay pinned.
func (b *EnvBinder) Bind(threads []api.ThreadID) error {
	set, err := b.Resolve()
	if err != nil {
		return err
	}
	var (
		failed   int
		firstErr error
	)
	for _, tid := range threads {
		if applyErr := b.apply(tid, set); applyErr != nil {
			b.logger.Printf("[affinity] failed to pin thread %d to cpus %s: %v", tid, set, applyErr)
			if firstErr == nil {
				firstErr = applyErr
			}
			failed++
		}
	}
	if failed > 0 {
		return errors.From(
			ErrBindFailed,
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithMeta(errMetaFailedKey, strconv.Itoa(failed)),
			errors.WithMeta(errMetaThreadKey, strconv.Itoa(len(threads))),
			errors.WithWrap(firstErr),
		)
	}
	return nil
}
