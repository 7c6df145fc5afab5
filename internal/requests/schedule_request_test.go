package requests

import (
	"testing"

	"cpusched/internal/core"
)

func validRequest() ScheduleRequest {
	return ScheduleRequest{
		Jobs: []Job{
			{ProcessId: 1, ArrivalTime: 0, BurstTime: 5, Priority: 2},
			{ProcessId: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
		},
	}
}

func TestValidateAcceptsWellFormedRequest(t *testing.T) {
	r := validRequest()
	if err := r.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := map[string]func(*ScheduleRequest){
		"no jobs":          func(r *ScheduleRequest) { r.Jobs = nil },
		"duplicate pid":    func(r *ScheduleRequest) { r.Jobs[1].ProcessId = r.Jobs[0].ProcessId },
		"negative arrival": func(r *ScheduleRequest) { r.Jobs[0].ArrivalTime = -1 },
		"zero burst":       func(r *ScheduleRequest) { r.Jobs[0].BurstTime = 0 },
		"negative burst":   func(r *ScheduleRequest) { r.Jobs[0].BurstTime = -3 },
		"negative quantum": func(r *ScheduleRequest) { r.TimeQuantum = -1 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := validRequest()
			mutate(&r)
			if err := r.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestProcessesBuildsFreshRecords(t *testing.T) {
	r := validRequest()
	procs := r.Processes()

	if len(procs) != 2 {
		t.Fatalf("len = %d, want 2", len(procs))
	}
	if procs[0].Pid != 1 || procs[0].BurstTime != 5 || procs[0].Priority != 2 {
		t.Errorf("first record wrong: %+v", procs[0])
	}
	if procs[0].State != core.StateNew || procs[0].RemainingTime != procs[0].BurstTime {
		t.Errorf("record not fresh: %+v", procs[0])
	}
}
