// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral API for OS thread identity, naming and CPU affinity.
// Platform-specific implementations are located in separate files
// (affinity_linux.go, affinity_windows.go, affinity_stub.go) guarded by build tags.
//
// All functions operate on OS threads, so callers that want the effect to
// follow a goroutine must hold runtime.LockOSThread for as long as it matters.

package affinity

import (
	"github.com/momentics/hioload-logpool/api"
	"github.com/momentics/hioload-logpool/cpuset"
)

// CurrentThreadID returns the id of the calling OS thread.
func CurrentThreadID() api.ThreadID {
	return currentThreadPlatform()
}

// SetThreadAffinity restricts thread tid to the CPUs in set.
func SetThreadAffinity(tid api.ThreadID, set *cpuset.Set) error {
	if set == nil || set.Count() == 0 {
		return ErrEmptySet
	}
	return setAffinityPlatform(tid, set)
}

// SetCurrentThreadName labels the calling OS thread for debuggers and top(1).
// Linux keeps at most MaxThreadNameLen bytes; longer names are truncated.
func SetCurrentThreadName(name string) error {
	return setThreadNamePlatform(name)
}

// MaxThreadNameLen is the longest thread name kept by Linux (16 bytes with NUL).
const MaxThreadNameLen = 15
