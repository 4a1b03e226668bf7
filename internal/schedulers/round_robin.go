package schedulers

import (
	"fmt"
	"log"

	"procsim/internal/core"
)

// RoundRobinName labels a round-robin run with its quantum.
func RoundRobinName(quantum int) string {
	return fmt.Sprintf("Round Robin (q=%d)", quantum)
}

// ScheduleRoundRobin runs preemptive round-robin with the given time
// quantum. contextSwitchOverhead simulated-time units are consumed
// whenever the CPU changes process, recorded as tagged overhead
// intervals so they are never conflated with true idle time.
//
// At a quantum boundary, processes that arrived during the slice are
// admitted to the ready queue before the preempted process is
// re-queued. This ordering is externally observable in waiting times
// and must not be reversed.
func ScheduleRoundRobin(processes []core.Process, quantum, contextSwitchOverhead int) (core.Run, error) {
	if quantum < 1 {
		return core.Run{}, fmt.Errorf("%w: quantum must be a positive integer, got %d", core.ErrInvalidConfig, quantum)
	}
	if contextSwitchOverhead < 0 {
		return core.Run{}, fmt.Errorf("%w: context switch overhead must be non-negative, got %d", core.ErrInvalidConfig, contextSwitchOverhead)
	}
	if err := core.ValidateProcesses(processes); err != nil {
		return core.Run{}, err
	}
	log.Println("running round-robin algorithm with timeQuantum =", quantum)

	states := core.NewStates(processes)
	timeline := make(core.Timeline, 0, len(states))

	queue := make([]int, 0, len(states))
	admitted := make([]bool, len(states))
	clock := 0
	lastPid := ""

	// states is in (arrival, pid) order, so a linear scan admits
	// simultaneous arrivals deterministically.
	admit := func() {
		for i := range states {
			if !admitted[i] && states[i].Process.Arrival <= clock {
				queue = append(queue, i)
				admitted[i] = true
			}
		}
	}

	for done := 0; done < len(states); {
		admit()
		if len(queue) == 0 {
			next := -1
			for i := range states {
				if !admitted[i] && (next == -1 || states[i].Process.Arrival < states[next].Process.Arrival) {
					next = i
				}
			}
			timeline = append(timeline, core.Interval{Start: clock, End: states[next].Process.Arrival, Occupant: core.OccupantIdle})
			clock = states[next].Process.Arrival
			continue
		}

		i := queue[0]
		queue = queue[1:]
		pid := states[i].Process.Pid

		if contextSwitchOverhead > 0 && lastPid != "" && lastPid != pid {
			timeline = append(timeline, core.Interval{Start: clock, End: clock + contextSwitchOverhead, Occupant: core.OccupantOverhead})
			clock += contextSwitchOverhead
		}

		if states[i].FirstStart == core.Unset {
			states[i].FirstStart = clock
		}

		slice := quantum
		if states[i].Remaining < slice {
			slice = states[i].Remaining
		}
		timeline = append(timeline, core.Interval{Start: clock, End: clock + slice, Occupant: pid})
		clock += slice
		states[i].Remaining -= slice
		lastPid = pid

		// Arrivals up to the new clock enter the queue ahead of the
		// just-run process.
		admit()

		if states[i].Remaining == 0 {
			states[i].Completion = clock
			done++
		} else {
			queue = append(queue, i)
		}
	}

	return core.Run{Timeline: timeline, States: states}, nil
}
