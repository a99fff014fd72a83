//go:build windows
// +build windows

// File: affinity/affinity_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows implementation. Only the first processor group (CPUs 0-63) is
// addressable through SetThreadAffinityMask.

package affinity

import (
	"fmt"
	"unsafe"

	"github.com/momentics/hioload-logpool/api"
	"github.com/momentics/hioload-logpool/cpuset"
	"golang.org/x/sys/windows"
)

var (
	modkernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadAffinityMask = modkernel32.NewProc("SetThreadAffinityMask")
	procSetThreadDescription  = modkernel32.NewProc("SetThreadDescription")
)

func currentThreadPlatform() api.ThreadID {
	return api.ThreadID(windows.GetCurrentThreadId())
}

func setAffinityPlatform(tid api.ThreadID, set *cpuset.Set) error {
	mask := uintptr(set.Words()[0])
	if mask == 0 {
		return ErrEmptySet
	}
	h, err := windows.OpenThread(windows.THREAD_SET_INFORMATION|windows.THREAD_QUERY_INFORMATION, false, uint32(tid))
	if err != nil {
		return err
	}
	defer windows.CloseHandle(h)
	old, _, callErr := procSetThreadAffinityMask.Call(uintptr(h), mask)
	if old == 0 {
		return fmt.Errorf("SetThreadAffinityMask failed: %v", callErr)
	}
	return nil
}

func setThreadNamePlatform(name string) error {
	if err := procSetThreadDescription.Find(); err != nil {
		return ErrNotSupported
	}
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	hr, _, _ := procSetThreadDescription.Call(uintptr(windows.CurrentThread()), uintptr(unsafe.Pointer(p)))
	if int32(hr) < 0 {
		return fmt.Errorf("SetThreadDescription failed: 0x%x", hr)
	}
	return nil
}
