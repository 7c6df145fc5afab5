package schedulers

import "fmt"

// IdleLabel marks Gantt slices where no process occupied the CPU.
const IdleLabel = "IDLE"

// GanttSlice is one interval of CPU allocation. Slices are contiguous and
// time-ordered across a run: each slice starts where the previous one ended.
type GanttSlice struct {
	Start int
	End   int
	Label string
}

// ProcessLabel is the Gantt label for a process id.
func ProcessLabel(pid int) string {
	return fmt.Sprintf("P%d", pid)
}

// ganttBuilder accumulates Gantt slices, extending the last slice instead of
// appending when the label is unchanged. Unit-step policies (SRTF) and
// Round-Robin therefore never emit fragmented adjacent slices for the same
// process.
type ganttBuilder struct {
	slices []GanttSlice
}

func (b *ganttBuilder) Append(start, end int, label string) {
	if n := len(b.slices); n > 0 && b.slices[n-1].Label == label && b.slices[n-1].End == start {
		b.slices[n-1].End = end
		return
	}
	b.slices = append(b.slices, GanttSlice{Start: start, End: end, Label: label})
}

func (b *ganttBuilder) Slices() []GanttSlice {
	return b.slices
}
