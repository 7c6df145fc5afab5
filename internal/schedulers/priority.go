package schedulers

import "cpusched/internal/core"

// Priority selects, among arrived processes, the one with the minimum
// (priority, arrival_time, pid) — a lower priority value wins the CPU.
// Non-preemptive: once dispatched, a process runs to completion regardless
// of later higher-priority arrivals.
type Priority struct{}

func (Priority) Name() string { return "Priority" }

func (Priority) Schedule(processes []*core.Process) *Result {
	return runNonPreemptive(processes, func(p *core.Process) int {
		return p.Priority
	})
}
