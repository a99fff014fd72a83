// File: logger/logger.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package logger

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/brickingsoft/errors"
	"github.com/momentics/hioload-logpool/api"
	"github.com/momentics/hioload-logpool/threadpool"
)

// Logger is an asynchronous front end: Log captures a record and posts it
// to the pool; a worker later writes it to every sink of the logger.
type Logger struct {
	name    string
	pool    *threadpool.Pool
	policy  api.OverflowPolicy
	sinks   []api.Sink
	closers []io.Closer
	cpuID   int
	now     func() time.Time

	level   atomic.Int32
	flushOn atomic.Int32
	be      backend
}

// Option customises a Logger.
type Option func(*Logger)

// WithPolicy sets the overflow policy used for every post. Defaults to api.Block.
func WithPolicy(p api.OverflowPolicy) Option {
	return func(l *Logger) { l.policy = p }
}

// WithLevel sets the minimum level. Defaults to api.LevelInfo.
func WithLevel(lvl api.Level) Option {
	return func(l *Logger) { l.level.Store(int32(lvl)) }
}

// WithFlushOn triggers an asynchronous flush after records at or above lvl.
// Defaults to api.LevelInfo.
func WithFlushOn(lvl api.Level) Option {
	return func(l *Logger) { l.flushOn.Store(int32(lvl)) }
}

// WithCPU records the CPU the owning component runs on.
func WithCPU(cpu int) Option {
	return func(l *Logger) { l.cpuID = cpu }
}

// WithClock replaces time.Now for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// withClosers hands ownership of opened files to the logger.
func withClosers(c ...io.Closer) Option {
	return func(l *Logger) { l.closers = append(l.closers, c...) }
}

// New creates a logger posting to pool and writing to sinks.
func New(name string, pool *threadpool.Pool, sinks []api.Sink, opts ...Option) *Logger {
	l := &Logger{
		name:   name,
		pool:   pool,
		policy: api.Block,
		sinks:  sinks,
		cpuID:  -1,
		now:    time.Now,
	}
	l.level.Store(int32(api.LevelInfo))
	l.flushOn.Store(int32(api.LevelInfo))
	l.be = backend{l: l}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Logger) Name() string                 { return l.name }
func (l *Logger) CPU() int                     { return l.cpuID }
func (l *Logger) Policy() api.OverflowPolicy   { return l.policy }
func (l *Logger) Level() api.Level             { return api.Level(l.level.Load()) }
func (l *Logger) SetLevel(lvl api.Level)       { l.level.Store(int32(lvl)) }
func (l *Logger) FlushLevel() api.Level        { return api.Level(l.flushOn.Load()) }
func (l *Logger) FlushOn(lvl api.Level)        { l.flushOn.Store(int32(lvl)) }
func (l *Logger) ShouldLog(lvl api.Level) bool { return lvl >= l.Level() && lvl < api.LevelOff }

// ParseLevel accepts debug, info, warning and error in any case.
func ParseLevel(s string) (api.Level, error) {
	lvl, err := api.ParseLevel(s)
	if err != nil {
		return api.LevelOff, errors.From(
			ErrInvalidLevel,
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithMeta(errMetaLevelKey, s),
			errors.WithWrap(err),
		)
	}
	return lvl, nil
}

// Log posts msg at lvl. Records below the logger level are dropped here.
func (l *Logger) Log(lvl api.Level, msg string) error {
	if !l.ShouldLog(lvl) {
		return nil
	}
	rec := api.Record{Time: l.now(), Level: lvl, Logger: l.name, Message: msg}
	if err := l.pool.PostLog(l.be, rec, l.policy); err != nil {
		return err
	}
	if lvl >= l.FlushLevel() {
		_, err := l.pool.PostFlush(l.be, l.policy)
		return err
	}
	return nil
}

func (l *Logger) Debugf(format string, args ...any) error {
	return l.logf(api.LevelDebug, format, args)
}

func (l *Logger) Infof(format string, args ...any) error {
	return l.logf(api.LevelInfo, format, args)
}

func (l *Logger) Warnf(format string, args ...any) error {
	return l.logf(api.LevelWarn, format, args)
}

func (l *Logger) Errorf(format string, args ...any) error {
	return l.logf(api.LevelError, format, args)
}

func (l *Logger) logf(lvl api.Level, format string, args []any) error {
	if !l.ShouldLog(lvl) {
		return nil
	}
	return l.Log(lvl, fmt.Sprintf(format, args...))
}

// Flush waits until every record posted before it has been written and the
// sinks flushed.
// The barrier is posted under the logger's policy and may be dropped.
func (l *Logger) Flush() error {
	return l.flush(l.policy)
}

func (l *Logger) flush(policy api.OverflowPolicy) error {
	f, err := l.pool.PostFlush(l.be, policy)
	if err != nil {
		return err
	}
	return f.Wait()
}

// Close flushes and closes the files the logger owns. The final barrier
// always blocks for room, so files close only after every earlier record
// is written. The pool is left running.
func (l *Logger) Close() error {
	err := l.flush(api.Block)
	for _, c := range l.closers {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// backend is the api.Sink the pool drives for this logger.
type backend struct {
	l *Logger
}

func (b backend) Write(rec api.Record) error {
	var first error
	for _, s := range b.l.sinks {
		if err := s.Write(rec); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (b backend) Flush() error {
	var first error
	for _, s := range b.l.sinks {
		if err := s.Flush(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
