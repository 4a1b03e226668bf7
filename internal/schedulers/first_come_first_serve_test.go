package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procsim/internal/core"
)

func TestFirstComeFirstServe(t *testing.T) {
	processes := []core.Process{
		{Pid: "P1", Arrival: 0, Burst: 5},
		{Pid: "P2", Arrival: 1, Burst: 3},
		{Pid: "P3", Arrival: 2, Burst: 8},
	}

	run, err := ScheduleFirstComeFirstServe(processes)
	require.NoError(t, err)

	assert.Equal(t, core.Timeline{
		{Start: 0, End: 5, Occupant: "P1"},
		{Start: 5, End: 8, Occupant: "P2"},
		{Start: 8, End: 16, Occupant: "P3"},
	}, run.Timeline)

	response, err := GenerateAnalytics("FCFS", run)
	require.NoError(t, err)
	assert.Equal(t, 0, response.Details[0].WaitingTime)
	assert.Equal(t, 4, response.Details[1].WaitingTime)
	assert.Equal(t, 6, response.Details[2].WaitingTime)
}

func TestFirstComeFirstServeIdleGap(t *testing.T) {
	processes := []core.Process{
		{Pid: "P1", Arrival: 2, Burst: 3},
		{Pid: "P2", Arrival: 9, Burst: 1},
	}

	run, err := ScheduleFirstComeFirstServe(processes)
	require.NoError(t, err)

	assert.Equal(t, core.Timeline{
		{Start: 0, End: 2, Occupant: core.OccupantIdle},
		{Start: 2, End: 5, Occupant: "P1"},
		{Start: 5, End: 9, Occupant: core.OccupantIdle},
		{Start: 9, End: 10, Occupant: "P2"},
	}, run.Timeline)
}

func TestFirstComeFirstServeSimultaneousArrivals(t *testing.T) {
	// same arrival time: pid ascending decides
	processes := []core.Process{
		{Pid: "P2", Arrival: 0, Burst: 2},
		{Pid: "P1", Arrival: 0, Burst: 3},
	}

	run, err := ScheduleFirstComeFirstServe(processes)
	require.NoError(t, err)

	assert.Equal(t, core.Timeline{
		{Start: 0, End: 3, Occupant: "P1"},
		{Start: 3, End: 5, Occupant: "P2"},
	}, run.Timeline)
}

func TestFirstComeFirstServeCompletionOrder(t *testing.T) {
	processes := []core.Process{
		{Pid: "P3", Arrival: 5, Burst: 2},
		{Pid: "P1", Arrival: 0, Burst: 9},
		{Pid: "P2", Arrival: 3, Burst: 1},
	}

	run, err := ScheduleFirstComeFirstServe(processes)
	require.NoError(t, err)

	// completion order matches (arrival, pid) order
	last := 0
	for _, state := range run.States {
		assert.Greater(t, state.Completion, last)
		assert.GreaterOrEqual(t, state.Completion, state.Process.Arrival+state.Process.Burst)
		last = state.Completion
	}
}

func TestFirstComeFirstServeEmpty(t *testing.T) {
	run, err := ScheduleFirstComeFirstServe(nil)
	require.NoError(t, err)
	assert.Empty(t, run.Timeline)
	assert.Empty(t, run.States)
}

func TestFirstComeFirstServeInvalidInput(t *testing.T) {
	_, err := ScheduleFirstComeFirstServe([]core.Process{{Pid: "P1", Arrival: 0, Burst: 0}})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}
