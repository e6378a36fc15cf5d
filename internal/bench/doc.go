// Package bench times a CPU-bound task executed N times, first one after
// another on the calling goroutine and then as N concurrent goroutines joined
// at a single barrier. A task that panics fails its phase: the panic is
// recovered and returned as an *apperrors.TaskPanicError, never swallowed.
package bench
