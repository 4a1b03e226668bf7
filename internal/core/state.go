package core

import "sort"

// Unset marks first-start and completion times not yet reached.
const Unset = -1

// State is the runtime bookkeeping of one process during a single
// simulation run. It is owned exclusively by the running algorithm and
// exposed read-only through Run once the run finishes.
type State struct {
	Process    Process
	Remaining  int
	FirstStart int
	Completion int
}

// ShorterJob is the SJF selection order: (remaining, arrival, pid).
func ShorterJob(a, b State) bool {
	if a.Remaining != b.Remaining {
		return a.Remaining < b.Remaining
	}
	return ArrivalLess(a.Process, b.Process)
}

// NewStates builds the runtime table for one run, sorted by the shared
// (arrival, pid) order. The input slice is left untouched.
func NewStates(processes []Process) []State {
	states := make([]State, len(processes))
	for i, p := range processes {
		states[i] = State{
			Process:    p,
			Remaining:  p.Burst,
			FirstStart: Unset,
			Completion: Unset,
		}
	}
	sort.SliceStable(states, func(i, j int) bool {
		return ArrivalLess(states[i].Process, states[j].Process)
	})
	return states
}

// Run is the complete output of one algorithm invocation: the timeline
// plus the finished runtime table, in (arrival, pid) order.
type Run struct {
	Timeline Timeline
	States   []State
}
