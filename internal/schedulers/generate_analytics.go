package schedulers

import (
	"fmt"

	"procsim/internal/core"
	"procsim/internal/responses"
	"procsim/internal/util"
)

// GenerateAnalytics derives the metrics record from a completed run.
// It is algorithm-agnostic: every scheduler produces the same run
// shape. The run is first checked against the timeline invariants;
// a failure here means a scheduler bug, surfaced as
// core.ErrInvalidTimeline.
func GenerateAnalytics(algorithm string, run core.Run) (responses.ScheduleResponse, error) {
	if err := validateRun(run); err != nil {
		return responses.ScheduleResponse{}, err
	}

	processDetails := make([]responses.ProcessResponse, 0, len(run.States))
	for _, state := range run.States {
		turnAround := state.Completion - state.Process.Arrival
		processDetails = append(processDetails, responses.ProcessResponse{
			Pid:            state.Process.Pid,
			Arrival:        state.Process.Arrival,
			Burst:          state.Process.Burst,
			FirstStart:     state.FirstStart,
			Completion:     state.Completion,
			WaitingTime:    turnAround - state.Process.Burst,
			TurnAroundTime: turnAround,
			ResponseTime:   state.FirstStart - state.Process.Arrival,
		})
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processDetails)

	makespan := run.Timeline.Makespan()
	response := responses.ScheduleResponse{
		Algorithm:             algorithm,
		Timeline:              run.Timeline,
		TotalTime:             makespan,
		IdleTime:              run.Timeline.IdleTime(),
		OverheadTime:          run.Timeline.OverheadTime(),
		ContextSwitches:       run.Timeline.ContextSwitches(),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Details:               processDetails,
	}
	if makespan > 0 {
		// Overhead reduces utilization the same way idle time does,
		// so utilization is simply busy/makespan.
		response.CpuUtilization = float64(run.Timeline.BusyTime()) / float64(makespan)
		response.CpuThroughput = float64(len(run.States)) / float64(makespan)
	}

	return response, nil
}

// validateRun checks the structural invariants every scheduler must
// uphold: intervals contiguous and non-overlapping from time 0, all
// busy occupants known, and per-process busy durations equal to the
// burst time.
func validateRun(run core.Run) error {
	busy := make(map[string]int, len(run.States))
	known := make(map[string]struct{}, len(run.States))
	for _, state := range run.States {
		known[state.Process.Pid] = struct{}{}
	}

	cursor := 0
	for i, iv := range run.Timeline {
		if iv.Start >= iv.End {
			return fmt.Errorf("%w: interval %d has non-positive duration [%d, %d)", core.ErrInvalidTimeline, i, iv.Start, iv.End)
		}
		if iv.Start != cursor {
			return fmt.Errorf("%w: interval %d starts at %d, expected %d", core.ErrInvalidTimeline, i, iv.Start, cursor)
		}
		cursor = iv.End
		if iv.Busy() {
			if _, ok := known[iv.Occupant]; !ok {
				return fmt.Errorf("%w: interval %d has unknown occupant %q", core.ErrInvalidTimeline, i, iv.Occupant)
			}
			busy[iv.Occupant] += iv.End - iv.Start
		}
	}

	for _, state := range run.States {
		if busy[state.Process.Pid] != state.Process.Burst {
			return fmt.Errorf("%w: process %s ran %d units, burst is %d",
				core.ErrInvalidTimeline, state.Process.Pid, busy[state.Process.Pid], state.Process.Burst)
		}
	}
	return nil
}
