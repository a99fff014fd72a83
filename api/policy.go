// File: api/policy.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "strings"

// OverflowPolicy selects what a post does when the queue is full.
type OverflowPolicy int

const (
	// Block waits until a worker frees a slot. Nothing is lost.
	Block OverflowPolicy = iota
	// OverrunOldest evicts the oldest queued message to make room.
	OverrunOldest
	// DiscardNew drops the message being posted.
	DiscardNew
)

func (p OverflowPolicy) String() string {
	switch p {
	case Block:
		return "block"
	case OverrunOldest:
		return "overrun_oldest"
	case DiscardNew:
		return "discard_new"
	default:
		return "invalid"
	}
}

// Valid reports whether p is one of the defined policies.
func (p OverflowPolicy) Valid() bool {
	return p >= Block && p <= DiscardNew
}

// ParseOverflowPolicy maps a policy name to its value.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch strings.ToLower(s) {
	case "block":
		return Block, nil
	case "overrun_oldest", "overrun":
		return OverrunOldest, nil
	case "discard_new", "discard":
		return DiscardNew, nil
	}
	return -1, NewError(ErrCodeInvalidArgument, "invalid overflow policy").
		WithContext("policy", s)
}
