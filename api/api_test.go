// File: api/api_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": LevelDebug, "INFO": LevelInfo, "warning": LevelWarn,
		"warn": LevelWarn, "Error": LevelError, "err": LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("trace")
	assert.True(t, errors.Is(err, &Error{Code: ErrCodeInvalidArgument}))
}

func TestParseOverflowPolicy(t *testing.T) {
	for _, p := range []OverflowPolicy{Block, OverrunOldest, DiscardNew} {
		got, err := ParseOverflowPolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
		assert.True(t, p.Valid())
	}
	assert.False(t, OverflowPolicy(3).Valid())
	assert.Equal(t, "invalid", OverflowPolicy(-1).String())
	_, err := ParseOverflowPolicy("spill")
	assert.Error(t, err)
}

func TestErrorContext(t *testing.T) {
	err := NewError(ErrCodeOutOfRange, "too many").WithContext("threads", 2000)
	assert.Equal(t, "too many (context: map[threads:2000])", err.Error())
	assert.False(t, errors.Is(err, &Error{Code: ErrCodeInvalidArgument}))
	assert.Equal(t, "out of range", err.Code.String())
}

func TestBinderFunc(t *testing.T) {
	var got []ThreadID
	b := BinderFunc(func(ts []ThreadID) error {
		got = ts
		return nil
	})
	require.NoError(t, b.Bind([]ThreadID{4}))
	assert.Equal(t, []ThreadID{4}, got)
}
