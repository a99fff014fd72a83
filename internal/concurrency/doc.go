// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Concurrency primitives shared by the worker pool. BoundedQueue is a
// fixed-capacity MPMC queue supporting blocking, overrun-oldest and
// discard-new enqueue with drop counters.
package concurrency
