package cli

import (
	"fmt"
	"io"

	"github.com/agbru/parbench/internal/bench"
	"github.com/agbru/parbench/internal/format"
)

// ImplName prefixes every line of benchmark output.
const ImplName = "Go"

// FormatBanner returns the line announcing the experiment.
func FormatBanner(tasks, cores int) string {
	return fmt.Sprintf("%s (multi-threading) experiment: Running %d tasks on %d CPU cores.", ImplName, tasks, cores)
}

// FormatPhaseResult returns the timing line for a completed phase.
func FormatPhaseResult(res bench.Result) string {
	seconds := format.FormatSeconds(res.Elapsed)
	if res.Phase == bench.Parallel {
		return fmt.Sprintf("%s: Multi-threaded completion of %d tasks in: %s seconds", ImplName, res.Tasks, seconds)
	}
	return fmt.Sprintf("%s: Sequentially completed %d tasks in: %s seconds", ImplName, res.Tasks, seconds)
}

// DisplayBanner writes the banner line to out.
func DisplayBanner(out io.Writer, tasks, cores int) {
	fmt.Fprintln(out, FormatBanner(tasks, cores))
}

// DisplayPhaseResult writes the timing line for res to out.
func DisplayPhaseResult(out io.Writer, res bench.Result) {
	fmt.Fprintln(out, FormatPhaseResult(res))
}
