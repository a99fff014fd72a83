// File: api/sink.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contracts between the worker pool and the destinations it writes to.

package api

import (
	"strings"
	"time"
)

// Level is the severity of a log record.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

// String returns the short lowercase name used in formatted records.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warning"
	case LevelError:
		return "error"
	case LevelOff:
		return "off"
	default:
		return "unknown"
	}
}

// ParseLevel maps a case-insensitive level name to a Level.
// Accepted: debug, info, warning|warn, error|err.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	}
	return LevelOff, NewError(ErrCodeInvalidArgument, "invalid log level").
		WithContext("level", s).
		WithContext("valid", "debug, info, warning, error")
}

// Record is one log entry captured on the producer side. It is copied into
// the queue, so producers may reuse their buffers once a post returns.
type Record struct {
	Time    time.Time
	Level   Level
	Logger  string
	Message string
}

// Sink is a destination driven by pool workers. Write is called for every
// payload message and Flush for every flush barrier. A sink may be referenced
// by many in-flight messages and may be called from several workers at once.
type Sink interface {
	Write(rec Record) error
	Flush() error
}
