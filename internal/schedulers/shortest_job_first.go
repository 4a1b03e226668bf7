package schedulers

import (
	"procsim/internal/core"
)

// ScheduleShortestJobFirst runs non-preemptive SJF: at every decision
// point the ready process minimizing (remaining, arrival, pid) is
// dispatched and runs to completion, even if a shorter job arrives
// mid-burst.
func ScheduleShortestJobFirst(processes []core.Process) (core.Run, error) {
	if err := core.ValidateProcesses(processes); err != nil {
		return core.Run{}, err
	}

	states := core.NewStates(processes)
	timeline := make(core.Timeline, 0, len(states))
	clock := 0

	for done := 0; done < len(states); {
		shortest := -1
		for i := range states {
			if states[i].Completion != core.Unset || states[i].Process.Arrival > clock {
				continue
			}
			if shortest == -1 || core.ShorterJob(states[i], states[shortest]) {
				shortest = i
			}
		}

		if shortest == -1 {
			// Ready set empty: fast-forward to the next arrival and
			// record the gap as idle.
			next := -1
			for i := range states {
				if states[i].Completion == core.Unset && (next == -1 || states[i].Process.Arrival < states[next].Process.Arrival) {
					next = i
				}
			}
			timeline = append(timeline, core.Interval{Start: clock, End: states[next].Process.Arrival, Occupant: core.OccupantIdle})
			clock = states[next].Process.Arrival
			continue
		}

		p := states[shortest].Process
		states[shortest].FirstStart = clock
		timeline = append(timeline, core.Interval{Start: clock, End: clock + p.Burst, Occupant: p.Pid})
		clock += p.Burst
		states[shortest].Remaining = 0
		states[shortest].Completion = clock
		done++
	}

	return core.Run{Timeline: timeline, States: states}, nil
}
