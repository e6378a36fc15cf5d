package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/agbru/parbench/internal/bench"
	"github.com/agbru/parbench/internal/format"
	"github.com/agbru/parbench/internal/ui"
)

// Comparison summarises a sequential and a parallel phase over the same task count.
type Comparison struct {
	Algorithm  string
	Sequential bench.Result
	Parallel   bench.Result
}

// Speedup is the sequential duration divided by the parallel duration.
// It is zero when the parallel phase took no measurable time.
func (c Comparison) Speedup() float64 {
	if c.Parallel.Elapsed <= 0 {
		return 0
	}
	return float64(c.Sequential.Elapsed) / float64(c.Parallel.Elapsed)
}

// Efficiency is the speedup per task as a percentage; 100% is linear scaling.
func (c Comparison) Efficiency() float64 {
	if c.Parallel.Tasks == 0 {
		return 0
	}
	return c.Speedup() / float64(c.Parallel.Tasks) * 100
}

// DisplayComparisonTable writes a bordered summary table to out. Colours are
// used only when out is a colour-capable terminal.
func DisplayComparisonTable(out io.Writer, c Comparison) {
	s := ui.OrangePalette.Styles(lipgloss.NewRenderer(out))

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.Border).
		Headers("Phase", "Tasks", "Elapsed", "Per task", "CPU").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.Header
			case row == 1 && col == 2:
				return s.Highlight
			default:
				return s.Cell
			}
		})
	for _, res := range []bench.Result{c.Sequential, c.Parallel} {
		t.Row(
			string(res.Phase),
			strconv.Itoa(res.Tasks),
			format.FormatExecutionDuration(res.Elapsed),
			format.FormatExecutionDuration(res.PerTask()),
			format.FormatPercent(res.CPUPercent),
		)
	}

	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "Algorithm: %s   Speedup: %s   Efficiency: %s\n",
		c.Algorithm, format.FormatRatio(c.Speedup()), format.FormatPercent(c.Efficiency()))
}
