package schedulers

import (
	"procsim/internal/core"
)

// ScheduleFirstComeFirstServe runs the non-preemptive FCFS policy:
// processes occupy the CPU in (arrival, pid) order, each for its full
// burst.
func ScheduleFirstComeFirstServe(processes []core.Process) (core.Run, error) {
	if err := core.ValidateProcesses(processes); err != nil {
		return core.Run{}, err
	}

	states := core.NewStates(processes)
	timeline := make(core.Timeline, 0, len(states))
	clock := 0

	for i := range states {
		p := states[i].Process
		if clock < p.Arrival {
			timeline = append(timeline, core.Interval{Start: clock, End: p.Arrival, Occupant: core.OccupantIdle})
			clock = p.Arrival
		}
		// FCFS never preempts, so the first dispatch is the only one.
		states[i].FirstStart = clock
		timeline = append(timeline, core.Interval{Start: clock, End: clock + p.Burst, Occupant: p.Pid})
		clock += p.Burst
		states[i].Remaining = 0
		states[i].Completion = clock
	}

	return core.Run{Timeline: timeline, States: states}, nil
}
