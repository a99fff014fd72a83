// control/config_test.go
// Author: momentics <momentics@gmail.com>

package control

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-logpool/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Empty(t, cfg.CPUSet)
}

func TestLoadConfig_AllKeys(t *testing.T) {
	cfg, err := LoadConfig(lookupFrom(map[string]string{
		EnvCPUSet:    "0-3,8",
		EnvQueueSize: "1024",
		EnvThreads:   " 4 ",
		EnvOverflow:  "overrun_oldest",
		EnvLevel:     "WARNING",
		EnvDir:       "/tmp/logs",
	}))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		CPUSet:    "0-3,8",
		QueueSize: 1024,
		Threads:   4,
		Overflow:  api.OverrunOldest,
		Level:     api.LevelWarn,
		Dir:       "/tmp/logs",
	}, cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		code api.ErrorCode
	}{
		{"queue not a number", map[string]string{EnvQueueSize: "big"}, api.ErrCodeInvalidArgument},
		{"queue zero", map[string]string{EnvQueueSize: "0"}, api.ErrCodeOutOfRange},
		{"threads zero", map[string]string{EnvThreads: "0"}, api.ErrCodeOutOfRange},
		{"threads too many", map[string]string{EnvThreads: "1001"}, api.ErrCodeOutOfRange},
		{"threads not a number", map[string]string{EnvThreads: "x"}, api.ErrCodeInvalidArgument},
		{"bad policy", map[string]string{EnvOverflow: "drop_all"}, api.ErrCodeInvalidArgument},
		{"bad level", map[string]string{EnvLevel: "chatty"}, api.ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(lookupFrom(tc.env))
			require.Error(t, err)
			assert.True(t, errors.Is(err, &api.Error{Code: tc.code}), "got %v", err)
		})
	}
}

func TestLoadConfig_ThreadBounds(t *testing.T) {
	for _, v := range []string{"1", "1000"} {
		_, err := LoadConfig(lookupFrom(map[string]string{EnvThreads: v}))
		assert.NoError(t, err, v)
	}
}

func TestConfigStore_ReloadListeners(t *testing.T) {
	cs := NewConfigStore()
	var got []map[string]any
	cs.OnReload(func(snap map[string]any) { got = append(got, snap) })

	cs.SetConfig(map[string]any{EnvLevel: "info"})
	cs.SetConfig(map[string]any{EnvDir: "/tmp"})

	require.Len(t, got, 2)
	assert.Equal(t, map[string]any{EnvLevel: "info", EnvDir: "/tmp"}, got[1])
	v, ok := cs.Get(EnvLevel)
	assert.True(t, ok)
	assert.Equal(t, "info", v)

	snap := cs.GetSnapshot()
	snap[EnvLevel] = "error"
	v, _ = cs.Get(EnvLevel)
	assert.Equal(t, "info", v)
}

func TestReload(t *testing.T) {
	cs := NewConfigStore()
	cfg, err := Reload(cs, lookupFrom(map[string]string{EnvLevel: "debug"}))
	require.NoError(t, err)
	assert.Equal(t, api.LevelDebug, cfg.Level)
	v, _ := cs.Get(EnvLevel)
	assert.Equal(t, "debug", v)

	_, err = Reload(cs, lookupFrom(map[string]string{EnvLevel: "nope"}))
	require.Error(t, err)
	v, _ = cs.Get(EnvLevel)
	assert.Equal(t, "debug", v)
}
