//go:build !linux && !windows
// +build !linux,!windows

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub implementation for unsupported platforms.
// Returns error to indicate unavailability.

package affinity

import (
	"github.com/momentics/hioload-logpool/api"
	"github.com/momentics/hioload-logpool/cpuset"
)

func currentThreadPlatform() api.ThreadID { return 0 }

func setAffinityPlatform(api.ThreadID, *cpuset.Set) error { return ErrNotSupported }

func setThreadNamePlatform(string) error { return ErrNotSupported }
