package requests

import (
	"fmt"

	"procsim/internal/core"
)

// Job is one process row as submitted by a caller.
type Job struct {
	Pid     string `json:"pid"`
	Arrival int    `json:"arrival"`
	Burst   int    `json:"burst"`
}

// ScheduleRequest is the body of every simulation endpoint. Quantum
// and ContextSwitchOverhead only apply to round-robin; zero values
// fall back to the configured defaults.
type ScheduleRequest struct {
	Jobs                  []Job `json:"jobs"`
	Quantum               int   `json:"quantum"`
	ContextSwitchOverhead int   `json:"context_switch_overhead"`
}

// Processes converts and validates the submitted jobs. Unlike the
// engine, the request layer requires at least one process.
func (r *ScheduleRequest) Processes() ([]core.Process, error) {
	if len(r.Jobs) == 0 {
		return nil, fmt.Errorf("%w: provide at least one process", core.ErrInvalidInput)
	}
	processes := make([]core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		processes[i] = core.Process{Pid: job.Pid, Arrival: job.Arrival, Burst: job.Burst}
	}
	if err := core.ValidateProcesses(processes); err != nil {
		return nil, err
	}
	return processes, nil
}
