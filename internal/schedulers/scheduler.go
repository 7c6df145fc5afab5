package schedulers

import (
	"sort"

	"cpusched/internal/core"
)

// Scheduler is the single capability every policy exposes. Schedule consumes
// an independent copy of the given processes, so the caller's records are
// never mutated and the same input can be replayed across policies.
type Scheduler interface {
	Name() string
	Schedule(processes []*core.Process) *Result
}

// Result bundles everything one scheduling run produces: the completed
// processes in completion order, the aggregate metrics over them, and the
// Gantt sequence of CPU allocation. It is never mutated after Schedule
// returns.
type Result struct {
	Completed []*core.Process
	Metrics   Metrics
	Gantt     []GanttSlice
}

func newResult(completed []*core.Process, gantt []GanttSlice) *Result {
	return &Result{
		Completed: completed,
		Metrics:   GenerateAnalytics(completed),
		Gantt:     gantt,
	}
}

// sortByArrival orders processes by (arrival_time, pid) ascending; the pid
// tie-break keeps simultaneous arrivals deterministic.
func sortByArrival(processes []*core.Process) {
	sort.Slice(processes, func(i, j int) bool {
		if processes[i].ArrivalTime != processes[j].ArrivalTime {
			return processes[i].ArrivalTime < processes[j].ArrivalTime
		}
		return processes[i].Pid < processes[j].Pid
	})
}

// dispatch hands the CPU to a process at the given time. StartTime and
// ResponseTime are recorded only on the first dispatch ever; a preempted
// process keeps its original response time when re-dispatched.
func dispatch(p *core.Process, now int) {
	p.State = core.StateRunning
	if p.StartTime == core.Unset {
		p.StartTime = now
		p.ResponseTime = now - p.ArrivalTime
	}
}

// finalize sets the derived statistics exactly once, at completion.
func finalize(p *core.Process, completionTime int) {
	p.CompletionTime = completionTime
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	p.RemainingTime = 0
	p.State = core.StateTerminated
}

// runNonPreemptive is the loop SJF and Priority share: arrived processes
// collect in a ranked ready queue, the minimum-key member runs to completion
// uninterrupted, and the CPU idles forward to the next arrival whenever the
// queue drains before all processes have arrived.
func runNonPreemptive(processes []*core.Process, rank func(*core.Process) int) *Result {
	procs := core.CloneAll(processes)
	sortByArrival(procs)

	ready := newReadyQueue(rank)
	var gantt ganttBuilder
	completed := make([]*core.Process, 0, len(procs))
	now := 0
	next := 0

	for next < len(procs) || !ready.Empty() {
		for next < len(procs) && procs[next].ArrivalTime <= now {
			procs[next].State = core.StateReady
			ready.Push(procs[next])
			next++
		}

		if ready.Empty() {
			gantt.Append(now, procs[next].ArrivalTime, IdleLabel)
			now = procs[next].ArrivalTime
			continue
		}

		p := ready.Pop()
		dispatch(p, now)
		gantt.Append(now, now+p.BurstTime, ProcessLabel(p.Pid))
		now += p.BurstTime

		finalize(p, now)
		completed = append(completed, p)
	}

	return newResult(completed, gantt.Slices())
}
