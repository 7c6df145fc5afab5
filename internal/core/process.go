package core

// ProcessState represents the lifecycle state of a simulated process.
type ProcessState int

const (
	StateNew ProcessState = iota
	StateReady
	StateRunning
	StateWaiting // reserved: no current policy blocks a process on I/O
	StateTerminated
)

func (s ProcessState) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateReady:
		return "READY"
	case StateRunning:
		return "RUNNING"
	case StateWaiting:
		return "WAITING"
	case StateTerminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// Unset marks StartTime and ResponseTime before the first dispatch.
const Unset = -1

// Process is the unit of schedulable work plus its accumulated statistics.
// Pid, ArrivalTime, BurstTime and Priority are fixed at construction; the
// scheduler mutates the remaining fields on its own copy of the record.
type Process struct {
	Pid         int
	ArrivalTime int
	BurstTime   int
	Priority    int // lower value = higher priority

	State         ProcessState
	RemainingTime int
	StartTime     int
	ResponseTime  int

	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
}

// NewProcess creates a process in the NEW state with its full burst remaining.
func NewProcess(pid, arrivalTime, burstTime, priority int) *Process {
	return &Process{
		Pid:           pid,
		ArrivalTime:   arrivalTime,
		BurstTime:     burstTime,
		Priority:      priority,
		State:         StateNew,
		RemainingTime: burstTime,
		StartTime:     Unset,
		ResponseTime:  Unset,
	}
}

// Execute consumes up to timeSlice units of the remaining burst and returns
// the amount actually executed. It is a no-op unless the process is RUNNING.
// The process transitions to TERMINATED when the burst is exhausted.
func (p *Process) Execute(timeSlice int) int {
	if p.State != StateRunning {
		return 0
	}
	executed := timeSlice
	if p.RemainingTime < executed {
		executed = p.RemainingTime
	}
	p.RemainingTime -= executed
	if p.RemainingTime == 0 {
		p.State = StateTerminated
	}
	return executed
}

// IsComplete reports whether the process has consumed its full burst.
func (p *Process) IsComplete() bool {
	return p.RemainingTime == 0
}

// Clone returns an independent copy of the process.
func (p *Process) Clone() *Process {
	c := *p
	return &c
}

// CloneAll deep-copies a process list so one input set can be replayed
// across several scheduling runs without cross-contamination.
func CloneAll(processes []*Process) []*Process {
	out := make([]*Process, len(processes))
	for i, p := range processes {
		out[i] = p.Clone()
	}
	return out
}
