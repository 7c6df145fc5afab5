package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpusched/internal/schedulers"
)

// PrintGantt writes an ASCII timeline of CPU allocation:
//
//	| P1   | P2  | IDLE | P3   |
//	0      5     8      10     16
func PrintGantt(w io.Writer, title string, slices []schedulers.GanttSlice) {
	if len(slices) == 0 {
		return
	}

	fmt.Fprintf(w, "\nGantt Chart - %s\n", title)

	var bar, axis strings.Builder
	bar.WriteString("|")
	axis.WriteString(fmt.Sprintf("%d", slices[0].Start))
	for _, s := range slices {
		width := (s.End - s.Start) * 2
		if width < len(s.Label)+2 {
			width = len(s.Label) + 2
		}
		cell := " " + s.Label + strings.Repeat(" ", width-len(s.Label)-1)
		bar.WriteString(cell + "|")

		end := fmt.Sprintf("%d", s.End)
		pad := len(cell) + 1 - len(end)
		if pad < 1 {
			pad = 1
		}
		axis.WriteString(strings.Repeat(" ", pad) + end)
	}
	fmt.Fprintln(w, bar.String())
	fmt.Fprintln(w, axis.String())
}

// PrintStatistics writes the per-process statistics table and the aggregate
// averages for one scheduling run.
func PrintStatistics(w io.Writer, title string, result *schedulers.Result) {
	fmt.Fprintf(w, "\nStatistics - %s\n", title)

	table := tablewriter.NewWriter(w)
	table.Header("PID", "Arrival", "Burst", "Priority", "Completion", "Turnaround", "Waiting", "Response")
	for _, p := range result.Completed {
		table.Append(
			fmt.Sprint(p.Pid),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.CompletionTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.ResponseTime),
		)
	}
	table.Render()

	m := result.Metrics
	fmt.Fprintf(w, "Average Turnaround Time: %.2f\n", m.AvgTurnaroundTime)
	fmt.Fprintf(w, "Average Waiting Time:    %.2f\n", m.AvgWaitingTime)
	fmt.Fprintf(w, "Average Response Time:   %.2f\n", m.AvgResponseTime)
	fmt.Fprintf(w, "Total Processes:         %d\n", m.TotalProcesses)
}

// ComparisonRow pairs an algorithm name with its run metrics, keeping the
// caller's ordering (a map would shuffle the table between runs).
type ComparisonRow struct {
	Algorithm string
	Metrics   schedulers.Metrics
}

// PrintComparison writes the algorithm comparison table.
func PrintComparison(w io.Writer, rows []ComparisonRow) {
	fmt.Fprintln(w, "\nAlgorithm Comparison")

	table := tablewriter.NewWriter(w)
	table.Header("Algorithm", "Avg Turnaround", "Avg Waiting", "Avg Response")
	for _, row := range rows {
		table.Append(
			row.Algorithm,
			fmt.Sprintf("%.2f", row.Metrics.AvgTurnaroundTime),
			fmt.Sprintf("%.2f", row.Metrics.AvgWaitingTime),
			fmt.Sprintf("%.2f", row.Metrics.AvgResponseTime),
		)
	}
	table.Render()
}
