// File: threadpool/message.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Queue entries. message is a closed set: payload, flush and terminate.

package threadpool

import "github.com/momentics/hioload-logpool/api"

type message interface {
	isMessage()
}

// payload delivers one record to its sink.
type payload struct {
	sink api.Sink
	rec  api.Record
}

// flushBarrier flushes its sink and resolves the future. It is dequeued only
// after every message queued before it.
type flushBarrier struct {
	sink   api.Sink
	future *FlushFuture
}

// terminate stops exactly one worker.
type terminate struct{}

func (payload) isMessage()      {}
func (flushBarrier) isMessage() {}
func (terminate) isMessage()    {}
