package schedulers

import "cpusched/internal/core"

// ShortestJobFirst selects, among arrived processes, the one with the
// minimum (burst_time, arrival_time, pid) and runs it to completion.
// Non-preemptive: a running process is never reconsidered mid-burst, even
// when a shorter job arrives.
type ShortestJobFirst struct{}

func (ShortestJobFirst) Name() string { return "SJF" }

func (ShortestJobFirst) Schedule(processes []*core.Process) *Result {
	return runNonPreemptive(processes, func(p *core.Process) int {
		return p.BurstTime
	})
}
