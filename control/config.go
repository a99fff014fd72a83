// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Environment configuration of the async logging runtime and a thread-safe
// store publishing the active settings to reload listeners.

package control

import (
	"strconv"
	"strings"
	"sync"

	"github.com/momentics/hioload-logpool/api"
)

// Environment variables understood by LoadConfig.
const (
	EnvCPUSet    = "LogCPUSet"
	EnvQueueSize = "LogQueueSize"
	EnvThreads   = "LogThreads"
	EnvOverflow  = "LogOverflow"
	EnvLevel     = "LogLevel"
	EnvDir       = "LogDir"
)

// Defaults and limits.
const (
	DefaultQueueSize = 8192
	DefaultThreads   = 1
	DefaultDir       = "./"
	MaxThreads       = 1000
)

// Config is the resolved runtime configuration.
type Config struct {
	// CPUSet is a range list such as "0-3,8". Empty disables pinning.
	CPUSet    string
	QueueSize int
	Threads   int
	Overflow  api.OverflowPolicy
	Level     api.Level
	Dir       string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		QueueSize: DefaultQueueSize,
		Threads:   DefaultThreads,
		Overflow:  api.Block,
		Level:     api.LevelInfo,
		Dir:       DefaultDir,
	}
}

// LoadConfig builds a Config from lookup, typically os.LookupEnv.
// Unset or empty variables keep their defaults.
func LoadConfig(lookup func(string) (string, bool)) (*Config, error) {
	cfg := DefaultConfig()
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvCPUSet); ok {
		cfg.CPUSet = v
	}
	if v, ok := get(EnvQueueSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, api.NewError(api.ErrCodeInvalidArgument, "queue size is not a number").
				WithContext("key", EnvQueueSize).WithContext("value", v)
		}
		cfg.QueueSize = n
	}
	if v, ok := get(EnvThreads); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, api.NewError(api.ErrCodeInvalidArgument, "thread count is not a number").
				WithContext("key", EnvThreads).WithContext("value", v)
		}
		cfg.Threads = n
	}
	if v, ok := get(EnvOverflow); ok {
		p, err := api.ParseOverflowPolicy(v)
		if err != nil {
			return nil, err
		}
		cfg.Overflow = p
	}
	if v, ok := get(EnvLevel); ok {
		lvl, err := api.ParseLevel(v)
		if err != nil {
			return nil, err
		}
		cfg.Level = lvl
	}
	if v, ok := get(EnvDir); ok {
		cfg.Dir = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges. The CPU list is validated later by the binder,
// which tolerates a bad list by running unpinned.
func (c *Config) Validate() error {
	if c.QueueSize <= 0 {
		return api.NewError(api.ErrCodeOutOfRange, "queue size must be positive").
			WithContext("queue_size", c.QueueSize)
	}
	if c.Threads < 1 || c.Threads > MaxThreads {
		return api.NewError(api.ErrCodeOutOfRange, "thread count out of range").
			WithContext("threads", c.Threads).
			WithContext("valid", "1.."+strconv.Itoa(MaxThreads))
	}
	if !c.Overflow.Valid() {
		return api.NewError(api.ErrCodeInvalidArgument, "invalid overflow policy").
			WithContext("policy", int(c.Overflow))
	}
	if c.Level < api.LevelDebug || c.Level > api.LevelError {
		return api.NewError(api.ErrCodeInvalidArgument, "invalid log level").
			WithContext("level", int(c.Level))
	}
	return nil
}

// Map flattens c into the key/value form held by ConfigStore.
func (c *Config) Map() map[string]any {
	return map[string]any{
		EnvCPUSet:    c.CPUSet,
		EnvQueueSize: c.QueueSize,
		EnvThreads:   c.Threads,
		EnvOverflow:  c.Overflow.String(),
		EnvLevel:     c.Level.String(),
		EnvDir:       c.Dir,
	}
}

// ConfigStore is a dynamic key/value map with atomic snapshot and listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func(map[string]any)
}

// NewConfigStore initializes a new config store with empty data.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config: make(map[string]any),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.snapshotLocked()
}

// Get returns one value.
func (cs *ConfigStore) Get(key string) (any, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	v, ok := cs.config[key]
	return v, ok
}

// SetConfig merges new values and notifies listeners with the merged snapshot.
// Listeners run synchronously after the lock is released.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	snap := cs.snapshotLocked()
	listeners := append([]func(map[string]any)(nil), cs.listeners...)
	cs.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

// OnReload registers a listener called after every SetConfig.
func (cs *ConfigStore) OnReload(fn func(map[string]any)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

func (cs *ConfigStore) snapshotLocked() map[string]any {
	out := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}
