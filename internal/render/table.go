package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"procsim/internal/responses"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))

// Title renders a styled section heading for terminal output.
func Title(s string) string {
	return titleStyle.Render(s)
}

// ScheduleTable writes the per-process metrics table with aggregate
// averages in the footer.
func ScheduleTable(w io.Writer, response responses.ScheduleResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Pid", "Arrival", "Burst", "Start", "Exit", "Wait", "Turnaround", "Response"})
	for _, detail := range response.Details {
		table.Append([]string{
			detail.Pid,
			fmt.Sprint(detail.Arrival),
			fmt.Sprint(detail.Burst),
			fmt.Sprint(detail.FirstStart),
			fmt.Sprint(detail.Completion),
			fmt.Sprint(detail.WaitingTime),
			fmt.Sprint(detail.TurnAroundTime),
			fmt.Sprint(detail.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "Average",
		fmt.Sprintf("%.2f", response.AverageWaitingTime),
		fmt.Sprintf("%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("%.2f", response.AverageResponseTime)})
	table.Render()

	_, _ = fmt.Fprintf(w, "utilization=%.2f throughput=%.2f/t switches=%d idle=%d overhead=%d\n",
		response.CpuUtilization, response.CpuThroughput,
		response.ContextSwitches, response.IdleTime, response.OverheadTime)
}
