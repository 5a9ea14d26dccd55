// Package reporter formats scenario run summaries for the CLI.
package reporter

import (
	"fmt"
	"strings"
	"time"

	"github.com/yarlson/go-procedure/internal/scenario"
)

// barWidth is the inner width of the per-operation bars.
const barWidth = 20

// Counts holds the number of operations by outcome.
type Counts struct {
	// Total is the number of operations that ran.
	Total int

	// Succeeded is the number of operations that finished at 100%.
	Succeeded int

	// Failed is the number of operations that returned an error.
	Failed int

	// Skipped is the number of operations that never ran.
	Skipped int
}

// CountOutcomes tallies the operations in a report.
func CountOutcomes(report *scenario.Report) Counts {
	counts := Counts{
		Total:   len(report.Operations),
		Skipped: report.Skipped,
	}
	for _, op := range report.Operations {
		if op.Succeeded() {
			counts.Succeeded++
		} else {
			counts.Failed++
		}
	}
	return counts
}

// FormatReport formats a run report for CLI display.
func FormatReport(report *scenario.Report) string {
	var sb strings.Builder

	sb.WriteString("## Summary\n\n")
	_, _ = fmt.Fprintf(&sb, "Run: %s\n", report.RunID)
	if !report.StartTime.IsZero() && !report.EndTime.IsZero() {
		_, _ = fmt.Fprintf(&sb, "Duration: %s\n", formatDuration(report.EndTime.Sub(report.StartTime)))
	}
	sb.WriteString("\n")

	counts := CountOutcomes(report)
	sb.WriteString("### Operations\n")
	_, _ = fmt.Fprintf(&sb, "Total: %d\n", counts.Total)
	_, _ = fmt.Fprintf(&sb, "Succeeded: %d\n", counts.Succeeded)
	_, _ = fmt.Fprintf(&sb, "Failed: %d\n", counts.Failed)
	if counts.Skipped > 0 {
		_, _ = fmt.Fprintf(&sb, "Skipped: %d\n", counts.Skipped)
	}
	if report.Messages > 0 {
		_, _ = fmt.Fprintf(&sb, "Messages: %d\n", report.Messages)
	}

	if len(report.Operations) == 0 {
		return sb.String()
	}

	sb.WriteString("\n### Results\n")
	for _, op := range report.Operations {
		mark := "x"
		detail := op.Display
		if !op.Succeeded() {
			mark = "!"
			detail = op.Err.Error()
		}
		_, _ = fmt.Fprintf(&sb, "- [%s] %s %s %3d%% %s", mark, op.Action, ProgressBar(op.Percent, barWidth), op.Percent, detail)
		if op.Duration > 0 {
			_, _ = fmt.Fprintf(&sb, " (%s)", formatDuration(op.Duration.Round(time.Millisecond)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
