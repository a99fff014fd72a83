// Package logger
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Asynchronous named loggers on top of threadpool. A Logger formats nothing
// on the caller's goroutine: it captures a Record and posts it to the shared
// pool, whose workers write it to the logger's sinks. Registry builds each
// named logger at most once and owns the log files it opened.
package logger
