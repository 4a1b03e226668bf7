package core

// Timeline occupants that are not process pids.
const (
	OccupantIdle     = "idle"
	OccupantOverhead = "overhead"
)

// Interval is one contiguous stretch of simulated time with a single
// CPU occupant: a process pid, OccupantIdle, or OccupantOverhead.
type Interval struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Occupant string `json:"occupant"`
}

// Busy reports whether the interval credits CPU time to a process.
func (iv Interval) Busy() bool {
	return iv.Occupant != OccupantIdle && iv.Occupant != OccupantOverhead
}

// Timeline is the chronologically ordered, contiguous sequence of
// intervals covering [0, makespan). Produced once per run, read-only
// thereafter.
type Timeline []Interval

// Makespan returns the end of the last interval, 0 for an empty
// timeline.
func (t Timeline) Makespan() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

// BusyTime sums the durations credited to processes.
func (t Timeline) BusyTime() int {
	total := 0
	for _, iv := range t {
		if iv.Busy() {
			total += iv.End - iv.Start
		}
	}
	return total
}

// IdleTime sums true idle gaps. Context-switch overhead is tracked
// separately and never counted here.
func (t Timeline) IdleTime() int {
	total := 0
	for _, iv := range t {
		if iv.Occupant == OccupantIdle {
			total += iv.End - iv.Start
		}
	}
	return total
}

// OverheadTime sums context-switch overhead consumption.
func (t Timeline) OverheadTime() int {
	total := 0
	for _, iv := range t {
		if iv.Occupant == OccupantOverhead {
			total += iv.End - iv.Start
		}
	}
	return total
}

// ContextSwitches counts transitions of the running process. Idle and
// overhead intervals are transparent: P1,idle,P1 is no switch while
// P1,overhead,P2 is one.
func (t Timeline) ContextSwitches() int {
	switches := 0
	last := ""
	for _, iv := range t {
		if !iv.Busy() {
			continue
		}
		if last != "" && last != iv.Occupant {
			switches++
		}
		last = iv.Occupant
	}
	return switches
}
