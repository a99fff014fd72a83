// Package api
// Author: momentics@gmail.com
//
// CPU affinity contracts for worker threads.

package api

// ThreadID identifies an OS thread to the affinity layer: the kernel TID on
// Linux, the thread id on Windows.
type ThreadID int

// Binder pins a group of OS threads to a CPU set chosen by configuration.
// Implementations are best-effort: an error means some or all threads were
// left unpinned, never that the threads are unusable.
type Binder interface {
	Bind(threads []ThreadID) error
}

// BinderFunc adapts a function to Binder.
type BinderFunc func(threads []ThreadID) error

// Bind calls f(threads).
func (f BinderFunc) Bind(threads []ThreadID) error {
	return f(threads)
}
