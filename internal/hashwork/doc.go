// Package hashwork implements the CPU-bound workload timed by the benchmark:
// a buffer seeded from a fixed string is repeatedly replaced by its own
// cryptographic digest. The work is deterministic for a given seed,
// iteration count and algorithm, and every invocation owns its buffer and
// hasher state exclusively.
package hashwork
