package schedulers

import "cpusched/internal/core"

// ShortestRemainingTimeFirst is the preemptive variant of SJF. Time advances
// in unit steps; at each step the running process is preempted if an arrived
// process has strictly less remaining time (a tie never preempts). Ready
// processes are ordered by (remaining_time, arrival_time, pid).
type ShortestRemainingTimeFirst struct{}

func (ShortestRemainingTimeFirst) Name() string { return "SRTF" }

func (ShortestRemainingTimeFirst) Schedule(processes []*core.Process) *Result {
	procs := core.CloneAll(processes)
	sortByArrival(procs)

	ready := newReadyQueue(func(p *core.Process) int {
		return p.RemainingTime
	})

	// Upper bound on simulated time; guarantees termination even though the
	// loop normally breaks as soon as all work is done.
	maxTime := 0
	for _, p := range procs {
		maxTime += p.BurstTime
	}
	maxTime += procs[len(procs)-1].ArrivalTime

	var gantt ganttBuilder
	completed := make([]*core.Process, 0, len(procs))
	var running *core.Process
	next := 0

	for t := 0; t <= maxTime; t++ {
		for next < len(procs) && procs[next].ArrivalTime <= t {
			procs[next].State = core.StateReady
			ready.Push(procs[next])
			next++
		}

		if running != nil {
			if running.IsComplete() {
				finalize(running, t)
				completed = append(completed, running)
				running = nil
			} else if shortest := ready.Min(); shortest != nil && shortest.RemainingTime < running.RemainingTime {
				running.State = core.StateReady
				ready.Push(running)
				running = nil
			}
		}

		if running == nil && !ready.Empty() {
			running = ready.Pop()
			dispatch(running, t)
		}

		if running != nil {
			gantt.Append(t, t+1, ProcessLabel(running.Pid))
			running.Execute(1)
		} else {
			gantt.Append(t, t+1, IdleLabel)
		}

		if next == len(procs) && ready.Empty() && (running == nil || running.IsComplete()) {
			if running != nil {
				finalize(running, t+1)
				completed = append(completed, running)
			}
			break
		}
	}

	return newResult(completed, gantt.Slices())
}
