package schedulers

import "cpusched/internal/core"

// FirstComeFirstServe runs processes to completion in (arrival_time, pid)
// order. The order is fixed after the initial sort; the ready queue is never
// reordered and nothing preempts a running process.
type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Name() string { return "FCFS" }

func (FirstComeFirstServe) Schedule(processes []*core.Process) *Result {
	procs := core.CloneAll(processes)
	sortByArrival(procs)

	var gantt ganttBuilder
	completed := make([]*core.Process, 0, len(procs))
	now := 0

	for _, p := range procs {
		if now < p.ArrivalTime {
			gantt.Append(now, p.ArrivalTime, IdleLabel)
			now = p.ArrivalTime
		}

		dispatch(p, now)
		gantt.Append(now, now+p.BurstTime, ProcessLabel(p.Pid))
		now += p.BurstTime

		finalize(p, now)
		completed = append(completed, p)
	}

	return newResult(completed, gantt.Slices())
}
