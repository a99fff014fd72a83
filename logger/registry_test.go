// File: logger/registry_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brickingsoft/errors"
	"github.com/momentics/hioload-logpool/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envRecorder map[string]string

func (e envRecorder) setenv(k, v string) error {
	e[k] = v
	return nil
}

func newTestRegistry(t *testing.T, env envRecorder) *Registry {
	t.Helper()
	r := NewRegistry(newTestPool(t),
		WithRegistryClock(fixedClock),
		WithSetenv(env.setenv),
		WithDiagnostics(quietLogger()),
	)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRegistry_GetOrCreateWritesFile(t *testing.T) {
	dir := t.TempDir()
	env := envRecorder{}
	r := newTestRegistry(t, env)

	l, err := r.GetOrCreate(3, "core", dir, "debug")
	require.NoError(t, err)
	assert.Equal(t, 3, l.CPU())
	assert.Equal(t, api.LevelDebug, l.Level())
	assert.Equal(t, "3", env[EnvCPUID])

	require.NoError(t, l.Debugf("started"))
	require.NoError(t, r.FlushAll())

	data, err := os.ReadFile(filepath.Join(dir, "core_20240918_105158.log"))
	require.NoError(t, err)
	assert.Equal(t, "[2024-09-18 10:51:58.000000123][core][debug] started\n", string(data))
}

func TestRegistry_CreatesOnce(t *testing.T) {
	dir := t.TempDir()
	r := newTestRegistry(t, envRecorder{})

	a, err := r.GetOrCreate(0, "core", dir, "info")
	require.NoError(t, err)
	b, err := r.GetOrCreate(5, "core", dir, "error")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, api.LevelInfo, b.Level())

	got, ok := r.Get("core")
	assert.True(t, ok)
	assert.Same(t, a, got)
	assert.Equal(t, []string{"core"}, r.Names())
}

func TestRegistry_RejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	r := newTestRegistry(t, envRecorder{})

	_, err := r.GetOrCreate(0, "", dir, "info")
	assert.True(t, errors.Is(err, ErrInvalidName))

	_, err = r.GetOrCreate(0, "core", dir, "loud")
	assert.True(t, errors.Is(err, ErrInvalidLevel))
	_, ok := r.Get("core")
	assert.False(t, ok)

	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	_, err = r.GetOrCreate(0, "core", blocker, "info")
	assert.True(t, errors.Is(err, ErrOpenFile))
}

func TestRegistry_Drop(t *testing.T) {
	dir := t.TempDir()
	r := newTestRegistry(t, envRecorder{})

	_, err := r.GetOrCreate(0, "core", dir, "info")
	require.NoError(t, err)
	require.NoError(t, r.Drop("core"))
	_, ok := r.Get("core")
	assert.False(t, ok)
	assert.NoError(t, r.Drop("core"))
}

func TestRegistry_Register(t *testing.T) {
	r := newTestRegistry(t, envRecorder{})
	l := New("mem", newTestPool(t), []api.Sink{NewWriterSink(&memFile{}, "mem")})
	assert.True(t, r.Register(l))
	assert.False(t, r.Register(l))
}
