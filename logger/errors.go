// File: logger/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package logger

import "github.com/brickingsoft/errors"

var (
	// ErrInvalidLevel is returned for a level name outside debug, info, warning, error.
	ErrInvalidLevel = errors.Define("logger: invalid log level")
	// ErrInvalidName is returned for an empty logger name.
	ErrInvalidName = errors.Define("logger: invalid logger name")
	// ErrOpenFile wraps a failure to create the log file.
	ErrOpenFile = errors.Define("logger: open log file failed")
)

const (
	errMetaPkgKey   = "pkg"
	errMetaPkgVal   = "logger"
	errMetaNameKey  = "name"
	errMetaLevelKey = "level"
	errMetaPathKey  = "path"
)
