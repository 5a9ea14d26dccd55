package reporter

import (
	"fmt"
	"strings"
	"time"
)

// ProgressBar returns an ASCII bar for the given percentage. The width is
// the inner width, excluding brackets. Percentages are clamped to 0-100.
//
// Example: ProgressBar(50, 20) returns "[==========          ]"
func ProgressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	if width < 0 {
		width = 0
	}

	filled := (percent * width) / 100

	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(strings.Repeat("=", filled))
	sb.WriteString(strings.Repeat(" ", width-filled))
	sb.WriteString("]")

	return sb.String()
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1f seconds", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.1f minutes", d.Minutes())
	}
	return fmt.Sprintf("%.1f hours", d.Hours())
}
