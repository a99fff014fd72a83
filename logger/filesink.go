// File: logger/filesink.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FileSink appends formatted records to a file. Lines look like
//   [2024-09-18 10:51:58.123456789][name][info] message

package logger

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/momentics/hioload-logpool/api"
)

// Ensure compile-time interface compliance.
var _ api.Sink = (*FileSink)(nil)

const fileTimeLayout = "20060102_150405"

// FileName builds "<dir>/<name>_<YYYYMMDD_HHMMSS>.log". An empty dir means "./".
func FileName(dir, name string, now time.Time) string {
	if dir == "" {
		dir = "./"
	}
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	return dir + name + "_" + now.Format(fileTimeLayout) + ".log"
}

// FileSink is safe for concurrent use by several workers.
type FileSink struct {
	mu   sync.Mutex
	out  io.WriteCloser
	w    *bufio.Writer
	path string
	line []byte
}

// OpenFileSink opens path for appending, creating missing parent directories.
func OpenFileSink(path string) (*FileSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return NewWriterSink(f, path), nil
}

// NewWriterSink wraps an arbitrary writer; path is informational.
func NewWriterSink(out io.WriteCloser, path string) *FileSink {
	return &FileSink{out: out, w: bufio.NewWriter(out), path: path}
}

// Path returns the file the sink writes to.
func (s *FileSink) Path() string {
	return s.path
}

// Write formats rec and buffers it.
func (s *FileSink) Write(rec api.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.line = AppendRecord(s.line[:0], rec)
	_, err := s.w.Write(s.line)
	return err
}

// Flush pushes buffered lines to the file.
func (s *FileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Flush()
}

// Close flushes and closes the file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.w.Flush()
	if cerr := s.out.Close(); err == nil {
		err = cerr
	}
	return err
}

// AppendRecord appends the formatted line for rec, newline included.
func AppendRecord(dst []byte, rec api.Record) []byte {
	dst = append(dst, '[')
	dst = rec.Time.AppendFormat(dst, "2006-01-02 15:04:05")
	dst = append(dst, '.')
	ns := strconv.Itoa(rec.Time.Nanosecond())
	for i := len(ns); i < 9; i++ {
		dst = append(dst, '0')
	}
	dst = append(dst, ns...)
	dst = append(dst, "]["...)
	dst = append(dst, rec.Logger...)
	dst = append(dst, "]["...)
	dst = append(dst, rec.Level.String()...)
	dst = append(dst, "] "...)
	dst = append(dst, rec.Message...)
	return append(dst, '\n')
}
