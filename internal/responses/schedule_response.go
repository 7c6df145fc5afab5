package responses

import (
	"cpusched/internal/schedulers"
)

// ProcessResponse is the per-process statistics row of a scheduling run.
type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	CompletionTime int `json:"completion_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
	ResponseTime   int `json:"response_time"`
}

// GanttSliceResponse is one interval of the rendered CPU timeline.
type GanttSliceResponse struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

// ScheduleResponse is the full result of running one policy.
type ScheduleResponse struct {
	Algorithm             string               `json:"algorithm"`
	AverageTurnAroundTime float64              `json:"average_turn_around_time"`
	AverageWaitingTime    float64              `json:"average_waiting_time"`
	AverageResponseTime   float64              `json:"average_response_time"`
	TotalProcesses        int                  `json:"total_processes"`
	Details               []ProcessResponse    `json:"details"`
	Gantt                 []GanttSliceResponse `json:"gantt"`
}

// NewScheduleResponse flattens an engine result into the wire shape.
func NewScheduleResponse(algorithm string, result *schedulers.Result) ScheduleResponse {
	details := make([]ProcessResponse, len(result.Completed))
	for i, p := range result.Completed {
		details[i] = ProcessResponse{
			ProcessId:      p.Pid,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			CompletionTime: p.CompletionTime,
			TurnAroundTime: p.TurnaroundTime,
			WaitingTime:    p.WaitingTime,
			ResponseTime:   p.ResponseTime,
		}
	}

	gantt := make([]GanttSliceResponse, len(result.Gantt))
	for i, s := range result.Gantt {
		gantt[i] = GanttSliceResponse{Start: s.Start, End: s.End, Label: s.Label}
	}

	return ScheduleResponse{
		Algorithm:             algorithm,
		AverageTurnAroundTime: result.Metrics.AvgTurnaroundTime,
		AverageWaitingTime:    result.Metrics.AvgWaitingTime,
		AverageResponseTime:   result.Metrics.AvgResponseTime,
		TotalProcesses:        result.Metrics.TotalProcesses,
		Details:               details,
		Gantt:                 gantt,
	}
}
