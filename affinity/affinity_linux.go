//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux implementation. sched_setaffinity is issued directly with the set's
// own word storage, so masks wider than unix.CPUSet (1024 CPUs) work.

package affinity

import (
	"unsafe"

	"github.com/momentics/hioload-logpool/api"
	"github.com/momentics/hioload-logpool/cpuset"
	"golang.org/x/sys/unix"
)

func currentThreadPlatform() api.ThreadID {
	return api.ThreadID(unix.Gettid())
}

func setAffinityPlatform(tid api.ThreadID, set *cpuset.Set) error {
	words := set.Words()
	_, _, e := unix.RawSyscall(unix.SYS_SCHED_SETAFFINITY,
		uintptr(tid), uintptr(set.SizeInBytes()), uintptr(unsafe.Pointer(&words[0])))
	if e != 0 {
		return e
	}
	return nil
}

func setThreadNamePlatform(name string) error {
	if len(name) > MaxThreadNameLen {
		name = name[:MaxThreadNameLen]
	}
	buf := make([]byte, len(name)+1)
	copy(buf, name)
	return unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0)
}
