// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-logpool/api"
)

// Sink counts writes and flushes and optionally keeps messages.
type Sink struct {
	Keep bool

	writes  atomic.Uint64
	flushes atomic.Uint64

	mu   sync.Mutex
	msgs []string
}

func (s *Sink) Write(rec api.Record) error {
	s.writes.Add(1)
	if s.Keep {
		s.mu.Lock()
		s.msgs = append(s.msgs, rec.Message)
		s.mu.Unlock()
	}
	return nil
}

func (s *Sink) Flush() error {
	s.flushes.Add(1)
	return nil
}

func (s *Sink) Writes() uint64  { return s.writes.Load() }
func (s *Sink) Flushes() uint64 { return s.flushes.Load() }

// Messages returns a copy of the kept messages.
func (s *Sink) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.msgs...)
}
