// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Named probes evaluated on demand for internal inspection.

package control

import (
	"sync"

	"github.com/momentics/hioload-logpool/api"
)

// Ensure compile-time interface compliance.
var _ api.Debug = (*DebugProbes)(nil)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}

// RegisterPoolProbes exposes live pool counters under the metric keys.
func RegisterPoolProbes(dp *DebugProbes, p PoolStats) {
	dp.RegisterProbe(MetricQueueSize, func() any { return p.QueueSize() })
	dp.RegisterProbe(MetricOverrun, func() any { return p.OverrunCounter() })
	dp.RegisterProbe(MetricDiscard, func() any { return p.DiscardCounter() })
	dp.RegisterProbe(MetricPinned, func() any { return p.Pinned() })
}
