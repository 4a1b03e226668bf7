package responses

import "procsim/internal/core"

// ProcessResponse is the per-process metrics row derived from one run.
type ProcessResponse struct {
	Pid            string `json:"pid"`
	Arrival        int    `json:"arrival"`
	Burst          int    `json:"burst"`
	FirstStart     int    `json:"first_start"`
	Completion     int    `json:"completion"`
	WaitingTime    int    `json:"waiting_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	ResponseTime   int    `json:"response_time"`
}

// ScheduleResponse is the complete, presentation-agnostic output of a
// simulation: the timeline plus per-process and aggregate metrics.
type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Timeline              core.Timeline     `json:"timeline"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	OverheadTime          int               `json:"overhead_time"`
	ContextSwitches       int               `json:"context_switches"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	Details               []ProcessResponse `json:"details"`
}
