package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimelineAccounting(t *testing.T) {
	timeline := Timeline{
		{Start: 0, End: 2, Occupant: "P1"},
		{Start: 2, End: 3, Occupant: OccupantOverhead},
		{Start: 3, End: 5, Occupant: "P2"},
		{Start: 5, End: 8, Occupant: OccupantIdle},
		{Start: 8, End: 10, Occupant: "P1"},
	}

	assert.Equal(t, 10, timeline.Makespan())
	assert.Equal(t, 6, timeline.BusyTime())
	assert.Equal(t, 3, timeline.IdleTime())
	assert.Equal(t, 1, timeline.OverheadTime())
}

func TestTimelineEmpty(t *testing.T) {
	var timeline Timeline
	assert.Equal(t, 0, timeline.Makespan())
	assert.Equal(t, 0, timeline.BusyTime())
	assert.Equal(t, 0, timeline.ContextSwitches())
}

func TestContextSwitches(t *testing.T) {
	tests := []struct {
		name     string
		timeline Timeline
		want     int
	}{
		{
			name: "plain handoffs",
			timeline: Timeline{
				{Start: 0, End: 5, Occupant: "P1"},
				{Start: 5, End: 8, Occupant: "P2"},
				{Start: 8, End: 16, Occupant: "P3"},
			},
			want: 2,
		},
		{
			name: "idle gap to the same process is not a switch",
			timeline: Timeline{
				{Start: 0, End: 2, Occupant: "P1"},
				{Start: 2, End: 4, Occupant: OccupantIdle},
				{Start: 4, End: 6, Occupant: "P1"},
			},
			want: 0,
		},
		{
			name: "overhead between two processes counts once",
			timeline: Timeline{
				{Start: 0, End: 2, Occupant: "P1"},
				{Start: 2, End: 3, Occupant: OccupantOverhead},
				{Start: 3, End: 5, Occupant: "P2"},
			},
			want: 1,
		},
		{
			name: "idle gap across a process change counts",
			timeline: Timeline{
				{Start: 0, End: 2, Occupant: "P1"},
				{Start: 2, End: 4, Occupant: OccupantIdle},
				{Start: 4, End: 6, Occupant: "P2"},
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.timeline.ContextSwitches())
		})
	}
}
