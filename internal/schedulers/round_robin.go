package schedulers

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"cpusched/internal/core"
)

// RoundRobin cycles through a strict FIFO ready queue, granting each process
// at most TimeQuantum units per dispatch. Processes that arrive while a
// quantum is running are enqueued before the incumbent is requeued, so a new
// arrival always gets the CPU ahead of the process that just used it.
type RoundRobin struct {
	TimeQuantum int
}

func (r RoundRobin) Name() string {
	return fmt.Sprintf("Round Robin (Q=%d)", r.TimeQuantum)
}

func (r RoundRobin) Schedule(processes []*core.Process) *Result {
	procs := core.CloneAll(processes)
	sortByArrival(procs)

	ready := linkedlistqueue.New()
	var gantt ganttBuilder
	completed := make([]*core.Process, 0, len(procs))
	now := 0
	next := 0

	admitArrived := func() {
		for next < len(procs) && procs[next].ArrivalTime <= now {
			procs[next].State = core.StateReady
			ready.Enqueue(procs[next])
			next++
		}
	}

	for next < len(procs) || !ready.Empty() {
		admitArrived()

		if ready.Empty() {
			gantt.Append(now, procs[next].ArrivalTime, IdleLabel)
			now = procs[next].ArrivalTime
			continue
		}

		head, _ := ready.Dequeue()
		p := head.(*core.Process)
		dispatch(p, now)

		run := r.TimeQuantum
		if p.RemainingTime < run {
			run = p.RemainingTime
		}
		gantt.Append(now, now+run, ProcessLabel(p.Pid))
		p.Execute(run)
		now += run

		// Arrivals during the quantum go ahead of the requeued incumbent.
		admitArrived()

		if p.IsComplete() {
			finalize(p, now)
			completed = append(completed, p)
		} else {
			p.State = core.StateReady
			ready.Enqueue(p)
		}
	}

	return newResult(completed, gantt.Slices())
}
