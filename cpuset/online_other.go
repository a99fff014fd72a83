//go:build !linux
// +build !linux

// File: cpuset/online_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package cpuset

func platformMaxCPUs() int { return 0 }
