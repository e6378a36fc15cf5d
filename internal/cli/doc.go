// Package cli renders benchmark output.
//
// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a formatted string without performing I/O.
//
// Standard output only ever receives the banner and one line per phase;
// everything else (progress, details table) goes to the error writer.
package cli
