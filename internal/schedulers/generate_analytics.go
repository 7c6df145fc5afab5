package schedulers

import (
	"cpusched/internal/core"
	"cpusched/internal/util"
)

// Metrics holds the aggregate averages over a run's completed processes,
// rounded to 2 decimal places.
type Metrics struct {
	AvgTurnaroundTime float64 `json:"avg_turnaround_time"`
	AvgWaitingTime    float64 `json:"avg_waiting_time"`
	AvgResponseTime   float64 `json:"avg_response_time"`
	TotalProcesses    int     `json:"total_processes"`
}

// GenerateAnalytics computes aggregate metrics for the completed processes.
// An empty input yields the zero Metrics value rather than dividing by zero.
func GenerateAnalytics(completed []*core.Process) Metrics {
	if len(completed) == 0 {
		return Metrics{}
	}

	turnaround := make([]float64, len(completed))
	waiting := make([]float64, len(completed))
	response := make([]float64, len(completed))
	for i, p := range completed {
		turnaround[i] = float64(p.TurnaroundTime)
		waiting[i] = float64(p.WaitingTime)
		response[i] = float64(p.ResponseTime)
	}

	return Metrics{
		AvgTurnaroundTime: util.Round2(util.Mean(turnaround)),
		AvgWaitingTime:    util.Round2(util.Mean(waiting)),
		AvgResponseTime:   util.Round2(util.Mean(response)),
		TotalProcesses:    len(completed),
	}
}
