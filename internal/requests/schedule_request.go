package requests

import (
	"fmt"

	"cpusched/internal/core"
)

// Job is one process description as submitted by a client.
type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

// ScheduleRequest carries the job set for one scheduling run. TimeQuantum is
// only consulted by the round-robin endpoint; zero means "use the configured
// default".
type ScheduleRequest struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum int   `json:"time_quantum"`
}

// Validate enforces the engine's preconditions: at least one job, unique
// pids, non-negative arrival times and positive burst times. The engine
// itself assumes pre-validated input.
func (r *ScheduleRequest) Validate() error {
	if len(r.Jobs) == 0 {
		return fmt.Errorf("at least one job is required")
	}
	seen := make(map[int]bool, len(r.Jobs))
	for _, job := range r.Jobs {
		if seen[job.ProcessId] {
			return fmt.Errorf("duplicate process_id %d", job.ProcessId)
		}
		seen[job.ProcessId] = true
		if job.ArrivalTime < 0 {
			return fmt.Errorf("process %d: arrival_time must be >= 0", job.ProcessId)
		}
		if job.BurstTime <= 0 {
			return fmt.Errorf("process %d: burst_time must be > 0", job.ProcessId)
		}
	}
	if r.TimeQuantum < 0 {
		return fmt.Errorf("time_quantum must not be negative")
	}
	return nil
}

// Processes converts the request's jobs into fresh process records.
func (r *ScheduleRequest) Processes() []*core.Process {
	procs := make([]*core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		procs[i] = core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime, job.Priority)
	}
	return procs
}
