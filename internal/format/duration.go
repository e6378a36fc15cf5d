// Package format holds pure formatting helpers shared by the presenters.
package format

import (
	"fmt"
	"time"
)

// FormatSeconds renders d as seconds with two decimals, e.g. "1.23".
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.2f", d.Seconds())
}

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Millisecond).String()
}

// FormatRatio renders a dimensionless ratio such as a speedup, e.g. "3.91x".
func FormatRatio(r float64) string {
	return fmt.Sprintf("%.2fx", r)
}

// FormatPercent renders a 0-100 value with one decimal, e.g. "97.5%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
