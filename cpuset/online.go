// File: cpuset/online.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package cpuset

import "runtime"

// MaxCPUs returns the number of CPUs configured on this system, the upper
// bound for any CPU index a set needs to hold. It never returns less than
// runtime.NumCPU.
func MaxCPUs() int {
	n := platformMaxCPUs()
	if cpus := runtime.NumCPU(); n < cpus {
		n = cpus
	}
	return n
}
