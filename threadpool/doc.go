// Package threadpool
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Asynchronous log dispatch: a bounded queue drained by a fixed set of
// worker goroutines, each locked to its own OS thread so the thread can be
// named and pinned to CPUs.
//
// Producers post payload records and flush barriers under a per-call
// overflow policy (block, overrun oldest, discard new). Workers deliver each
// message to the api.Sink it references. Close posts one terminate message
// per worker behind everything already queued and waits for all workers, so
// every message accepted before Close is delivered.
//
// Worker threads are never unlocked: when a worker exits, the Go runtime
// retires its thread together with the name and affinity applied to it.
package threadpool
