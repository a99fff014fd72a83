// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"sync"

	"github.com/momentics/hioload-logpool/api"
)

// Binder records the threads it was asked to pin and returns Err.
type Binder struct {
	Err error

	mu      sync.Mutex
	threads []api.ThreadID
}

func (b *Binder) Bind(threads []api.ThreadID) error {
	b.mu.Lock()
	b.threads = append([]api.ThreadID(nil), threads...)
	b.mu.Unlock()
	return b.Err
}

// Threads returns the last bound threads.
func (b *Binder) Threads() []api.ThreadID {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]api.ThreadID(nil), b.threads...)
}
