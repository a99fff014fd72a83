//go:build linux
// +build linux

// File: cpuset/online_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux reports configured CPUs as a range list in sysfs.

package cpuset

import (
	"os"
	"strings"
)

const possiblePath = "/sys/devices/system/cpu/possible"

// sysfsLimit bounds the index space accepted from sysfs.
const sysfsLimit = 8192

func platformMaxCPUs() int {
	data, err := os.ReadFile(possiblePath)
	if err != nil {
		return 0
	}
	return maxFromList(strings.TrimSpace(string(data)))
}

func maxFromList(list string) int {
	s, err := ParseList(list, sysfsLimit, false)
	if err != nil {
		return 0
	}
	cpus := s.CPUs()
	if len(cpus) == 0 {
		return 0
	}
	return cpus[len(cpus)-1] + 1
}
