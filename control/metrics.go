// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for the worker pool.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"
)

// Metric keys published by PublishPool.
const (
	MetricQueueSize     = "pool.queue.size"
	MetricQueueCapacity = "pool.queue.capacity"
	MetricOverrun       = "pool.queue.overrun"
	MetricDiscard       = "pool.queue.discard"
	MetricThreads       = "pool.threads"
	MetricPinned        = "pool.pinned"
)

// PoolStats is the read side of a worker pool.
type PoolStats interface {
	QueueSize() int
	QueueCapacity() int
	OverrunCounter() uint64
	DiscardCounter() uint64
	Pinned() bool
}

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Updated reports when a metric last changed.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

// PublishPool copies the current pool counters into mr.
func PublishPool(mr *MetricsRegistry, p PoolStats) {
	mr.Set(MetricQueueSize, p.QueueSize())
	mr.Set(MetricQueueCapacity, p.QueueCapacity())
	mr.Set(MetricOverrun, p.OverrunCounter())
	mr.Set(MetricDiscard, p.DiscardCounter())
	mr.Set(MetricPinned, p.Pinned())
}
