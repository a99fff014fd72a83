// Package cpuset
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity CPU bitsets and their two textual notations:
//   - range lists such as "0,1,3-9" or "0-15:2" (stride), as used by taskset(1)
//     and the LogCPUSet environment variable;
//   - hexadecimal masks such as "0x3f" or "ff,00000000", as exported by
//     /proc/<pid>/status and /sys/devices/system/cpu/*/cpumap.
//
// Capacity is rounded up to whole 64-bit words so that the word view can be
// handed to sched_setaffinity(2) unchanged.
package cpuset
