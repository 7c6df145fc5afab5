package schedulers

import (
	"testing"

	"cpusched/internal/core"
)

// checkGanttTiling verifies the shared engine contract: slices are
// well-formed, contiguous and time-ordered, with idle gaps labeled
// explicitly.
func checkGanttTiling(t *testing.T, gantt []GanttSlice) {
	t.Helper()
	if len(gantt) == 0 {
		t.Fatal("empty gantt sequence")
	}
	for i, s := range gantt {
		if s.Start >= s.End {
			t.Errorf("slice %d: start %d not before end %d", i, s.Start, s.End)
		}
		if i > 0 && gantt[i-1].End != s.Start {
			t.Errorf("slice %d: starts at %d, previous ended at %d", i, s.Start, gantt[i-1].End)
		}
		if i > 0 && gantt[i-1].Label == s.Label {
			t.Errorf("slice %d: adjacent slices share label %q, should be merged", i, s.Label)
		}
	}
}

// checkInvariants verifies the per-process identities that must hold for
// every completed process under every policy.
func checkInvariants(t *testing.T, result *Result) {
	t.Helper()
	for _, p := range result.Completed {
		if p.State != core.StateTerminated {
			t.Errorf("P%d: completed but state is %s", p.Pid, p.State)
		}
		if p.RemainingTime != 0 {
			t.Errorf("P%d: completed with remaining time %d", p.Pid, p.RemainingTime)
		}
		if p.TurnaroundTime != p.WaitingTime+p.BurstTime {
			t.Errorf("P%d: turnaround %d != waiting %d + burst %d", p.Pid, p.TurnaroundTime, p.WaitingTime, p.BurstTime)
		}
		if p.CompletionTime != p.ArrivalTime+p.TurnaroundTime {
			t.Errorf("P%d: completion %d != arrival %d + turnaround %d", p.Pid, p.CompletionTime, p.ArrivalTime, p.TurnaroundTime)
		}
		if p.WaitingTime < 0 {
			t.Errorf("P%d: negative waiting time %d", p.Pid, p.WaitingTime)
		}
		if p.ResponseTime < 0 {
			t.Errorf("P%d: negative response time %d", p.Pid, p.ResponseTime)
		}
	}
}

func completedPids(result *Result) []int {
	pids := make([]int, len(result.Completed))
	for i, p := range result.Completed {
		pids[i] = p.Pid
	}
	return pids
}

func findCompleted(t *testing.T, result *Result, pid int) *core.Process {
	t.Helper()
	for _, p := range result.Completed {
		if p.Pid == pid {
			return p
		}
	}
	t.Fatalf("P%d not in completed list", pid)
	return nil
}

func equalPids(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalGantt(a, b []GanttSlice) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Every policy must leave the caller's records untouched and produce
// identical results when replayed on the same input.
func TestScheduleDoesNotMutateInputAndIsIdempotent(t *testing.T) {
	policies := []Scheduler{
		FirstComeFirstServe{},
		ShortestJobFirst{},
		ShortestRemainingTimeFirst{},
		RoundRobin{TimeQuantum: 2},
		Priority{},
	}

	for _, policy := range policies {
		t.Run(policy.Name(), func(t *testing.T) {
			input := []*core.Process{
				core.NewProcess(1, 0, 5, 2),
				core.NewProcess(2, 1, 3, 1),
				core.NewProcess(3, 2, 8, 3),
			}

			first := policy.Schedule(input)

			for _, p := range input {
				if p.State != core.StateNew || p.RemainingTime != p.BurstTime || p.StartTime != core.Unset {
					t.Errorf("P%d: caller's record was mutated: %+v", p.Pid, p)
				}
			}

			second := policy.Schedule(input)
			if !equalGantt(first.Gantt, second.Gantt) {
				t.Errorf("gantt differs between runs:\n%v\n%v", first.Gantt, second.Gantt)
			}
			if first.Metrics != second.Metrics {
				t.Errorf("metrics differ between runs: %+v vs %+v", first.Metrics, second.Metrics)
			}
		})
	}
}
