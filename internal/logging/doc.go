// Package logging provides the structured logging interface used by the
// benchmark. Components depend on Logger and typed Field values; the
// zerolog-backed adapter is the only production implementation.
package logging
