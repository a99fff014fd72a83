// File: facade/logging.go
// Unified facade layer for the async logging runtime.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Logging aggregates the worker pool, the logger registry and the control
// registries behind one value built from a control.Config. Close flushes
// every logger before the pool drains and joins its workers.

package facade

import (
	"log"
	"os"
	"sync"

	"github.com/momentics/hioload-logpool/affinity"
	"github.com/momentics/hioload-logpool/api"
	"github.com/momentics/hioload-logpool/control"
	"github.com/momentics/hioload-logpool/logger"
	"github.com/momentics/hioload-logpool/threadpool"
)

// Ensure compliance with the control and shutdown contracts.
var (
	_ api.Control          = (*Logging)(nil)
	_ api.GracefulShutdown = (*Logging)(nil)
)

// Logging is the main facade type.
type Logging struct {
	cfg      *control.Config
	pool     *threadpool.Pool
	registry *logger.Registry
	store    *control.ConfigStore
	metrics  *control.MetricsRegistry
	probes   *control.DebugProbes
	lookup   func(string) (string, bool)
	diag     *log.Logger

	closeOnce sync.Once
	closeErr  error
}

type options struct {
	diag        *log.Logger
	lookup      func(string) (string, bool)
	binder      api.Binder
	poolOpts    []threadpool.Option
	registryOps []logger.RegistryOption
}

// Option customises New.
type Option func(*options)

// WithDiagnostics routes component diagnostics to l.
func WithDiagnostics(l *log.Logger) Option {
	return func(o *options) { o.diag = l }
}

// WithLookup replaces os.LookupEnv for Reload and for New with a nil config.
func WithLookup(fn func(string) (string, bool)) Option {
	return func(o *options) { o.lookup = fn }
}

// WithBinder overrides the CPU binder built from Config.CPUSet.
func WithBinder(b api.Binder) Option {
	return func(o *options) { o.binder = b }
}

// WithPoolOptions passes extra options to threadpool.New.
func WithPoolOptions(opts ...threadpool.Option) Option {
	return func(o *options) { o.poolOpts = append(o.poolOpts, opts...) }
}

// WithRegistryOptions passes extra options to logger.NewRegistry.
func WithRegistryOptions(opts ...logger.RegistryOption) Option {
	return func(o *options) { o.registryOps = append(o.registryOps, opts...) }
}

// New builds the runtime. A nil cfg is loaded from the environment.
func New(cfg *control.Config, opts ...Option) (*Logging, error) {
	o := options{diag: log.Default(), lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(&o)
	}
	if cfg == nil {
		var err error
		if cfg, err = control.LoadConfig(o.lookup); err != nil {
			return nil, err
		}
	} else if err := cfg.Validate(); err != nil {
		return nil, err
	}

	binder := o.binder
	if binder == nil {
		binder = affinity.NewEnvBinder(affinity.WithCPUList(cfg.CPUSet), affinity.WithLogger(o.diag))
	}
	poolOpts := append([]threadpool.Option{
		threadpool.WithBinder(binder),
		threadpool.WithLogger(o.diag),
	}, o.poolOpts...)
	pool, err := threadpool.New(cfg.QueueSize, cfg.Threads, poolOpts...)
	if err != nil {
		return nil, err
	}

	regOpts := append([]logger.RegistryOption{
		logger.WithRegistryPolicy(cfg.Overflow),
		logger.WithDiagnostics(o.diag),
	}, o.registryOps...)

	l := &Logging{
		cfg:      cfg,
		pool:     pool,
		registry: logger.NewRegistry(pool, regOpts...),
		store:    control.NewConfigStore(),
		metrics:  control.NewMetricsRegistry(),
		probes:   control.NewDebugProbes(),
		lookup:   o.lookup,
		diag:     o.diag,
	}

	l.store.SetConfig(cfg.Map())
	l.store.OnReload(l.applyLevel)

	l.metrics.Set(control.MetricThreads, len(pool.Threads()))
	control.PublishPool(l.metrics, pool)
	control.RegisterPoolProbes(l.probes, pool)
	control.RegisterPlatformProbes(l.probes)
	l.probes.RegisterProbe("loggers", func() any { return l.registry.Names() })
	return l, nil
}

// Logger returns the logger called name, creating its file under the
// configured directory on first use.
func (l *Logging) Logger(cpuID int, name string) (*logger.Logger, error) {
	return l.registry.GetOrCreate(cpuID, name, l.cfg.Dir, l.currentLevel().String())
}

// Config returns the configuration the runtime was built with.
func (l *Logging) Config() *control.Config { return l.cfg }

// Pool returns the shared worker pool.
func (l *Logging) Pool() *threadpool.Pool { return l.pool }

// Registry returns the logger registry.
func (l *Logging) Registry() *logger.Registry { return l.registry }

// GetConfig returns the active settings.
func (l *Logging) GetConfig() map[string]any {
	return l.store.GetSnapshot()
}

// SetConfig merges settings. Only the log level takes effect on live loggers.
func (l *Logging) SetConfig(cfg map[string]any) error {
	if v, ok := cfg[control.EnvLevel]; ok {
		s, isString := v.(string)
		if !isString {
			return api.NewError(api.ErrCodeInvalidArgument, "log level must be a string").
				WithContext("value", v)
		}
		if _, err := api.ParseLevel(s); err != nil {
			return err
		}
	}
	l.store.SetConfig(cfg)
	return nil
}

// Reload re-reads the environment and applies the new log level.
func (l *Logging) Reload() error {
	_, err := control.Reload(l.store, l.lookup)
	return err
}

// Stats refreshes and returns pool metrics.
func (l *Logging) Stats() map[string]any {
	control.PublishPool(l.metrics, l.pool)
	return l.metrics.GetSnapshot()
}

// OnReload registers fn to run after every configuration change.
func (l *Logging) OnReload(fn func()) {
	l.store.OnReload(func(map[string]any) { fn() })
}

// RegisterDebugProbe adds a named probe to DumpState.
func (l *Logging) RegisterDebugProbe(name string, fn func() any) {
	l.probes.RegisterProbe(name, fn)
}

// DumpState evaluates every probe.
func (l *Logging) DumpState() map[string]any {
	return l.probes.DumpState()
}

// Flush flushes every logger and waits.
func (l *Logging) Flush() error {
	return l.registry.FlushAll()
}

// Close flushes and closes all loggers, then shuts the pool down.
// Later calls return the first result.
func (l *Logging) Close() error {
	l.closeOnce.Do(func() {
		err := l.registry.Close()
		if perr := l.pool.Close(); err == nil {
			err = perr
		}
		l.closeErr = err
	})
	return l.closeErr
}

// Shutdown implements api.GracefulShutdown by delegating to Close.
func (l *Logging) Shutdown() error {
	return l.Close()
}

func (l *Logging) currentLevel() api.Level {
	if v, ok := l.store.Get(control.EnvLevel); ok {
		if s, isString := v.(string); isString {
			if lvl, err := api.ParseLevel(s); err == nil {
				return lvl
			}
		}
	}
	return l.cfg.Level
}

// applyLevel pushes a changed log level to every live logger.
func (l *Logging) applyLevel(snap map[string]any) {
	s, ok := snap[control.EnvLevel].(string)
	if !ok {
		return
	}
	lvl, err := api.ParseLevel(s)
	if err != nil {
		l.diag.Printf("[facade] ignoring log level %q: %v", s, err)
		return
	}
	for _, name := range l.registry.Names() {
		if lg, found := l.registry.Get(name); found && lg.Level() != lvl {
			lg.SetLevel(lvl)
		}
	}
}
