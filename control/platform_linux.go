//go:build linux
// +build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific debug probes.

package control

import (
	"runtime"

	"github.com/momentics/hioload-logpool/cpuset"
	"golang.org/x/sys/unix"
)

// RegisterPlatformProbes sets Linux-specific debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus.online", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.cpus.possible", func() any {
		return cpuset.MaxCPUs()
	})
	dp.RegisterProbe("platform.affinity", func() any {
		return processAffinity()
	})
}

// processAffinity formats the calling thread's allowed CPUs as a range list.
func processAffinity() string {
	var mask unix.CPUSet
	if err := unix.SchedGetaffinity(0, &mask); err != nil {
		return "unknown"
	}
	const probeCPUs = 1024
	set, err := cpuset.New(probeCPUs)
	if err != nil {
		return "unknown"
	}
	for i := 0; i < probeCPUs; i++ {
		if mask.IsSet(i) {
			set.Set(i)
		}
	}
	return cpuset.FormatList(set)
}
