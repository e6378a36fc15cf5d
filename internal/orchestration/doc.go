// Package orchestration runs the benchmark phases and does the bookkeeping
// around them (progress display, memory deltas, metrics, logging). It is
// decoupled from presentation via the ProgressReporter and ResultPresenter
// interfaces.
package orchestration
