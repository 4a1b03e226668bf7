package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a rejected process set (duplicate pid,
	// negative arrival, non-positive burst, empty submission).
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidConfig marks a rejected algorithm configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidTimeline marks an inconsistent simulation result and
	// signals a scheduler bug, not a user error.
	ErrInvalidTimeline = errors.New("invalid timeline")
)

// Process is the immutable input record of one simulated process.
// The engine never mutates it; run progress lives in State.
type Process struct {
	Pid     string `json:"pid"`
	Arrival int    `json:"arrival"`
	Burst   int    `json:"burst"`
}

// ArrivalLess is the shared (arrival, pid) total order used for every
// arrival-time tie-break.
func ArrivalLess(a, b Process) bool {
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.Pid < b.Pid
}

// ValidateProcesses rejects process sets the algorithms cannot
// simulate. An empty set is valid here; request layers that require at
// least one process enforce that themselves.
func ValidateProcesses(processes []Process) error {
	seen := make(map[string]struct{}, len(processes))
	for _, p := range processes {
		if p.Pid == "" {
			return fmt.Errorf("%w: process with empty pid", ErrInvalidInput)
		}
		if _, ok := seen[p.Pid]; ok {
			return fmt.Errorf("%w: duplicate pid %q", ErrInvalidInput, p.Pid)
		}
		seen[p.Pid] = struct{}{}
		if p.Arrival < 0 {
			return fmt.Errorf("%w: process %s has negative arrival time", ErrInvalidInput, p.Pid)
		}
		if p.Burst <= 0 {
			return fmt.Errorf("%w: process %s has non-positive burst time", ErrInvalidInput, p.Pid)
		}
	}
	return nil
}
