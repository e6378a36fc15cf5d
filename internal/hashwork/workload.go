package hashwork

// DefaultSeed is the fixed string every task starts hashing from.
const DefaultSeed = "a long string of initial data to make it a bit more work"

// DefaultIterations is the number of digest rounds performed per task.
const DefaultIterations = 500_000

// Workload describes one task's worth of iterative hashing.
type Workload struct {
	Seed       []byte
	Iterations int
	Algorithm  Algorithm
}

// Default returns the benchmark workload: 500,000 SHA-256 rounds over DefaultSeed.
func Default() Workload {
	alg, _ := Lookup(DefaultAlgorithm)
	return Workload{
		Seed:       []byte(DefaultSeed),
		Iterations: DefaultIterations,
		Algorithm:  alg,
	}
}

// New builds a workload over DefaultSeed for the named algorithm.
func New(algorithm string, iterations int) (Workload, error) {
	alg, err := Lookup(algorithm)
	if err != nil {
		return Workload{}, err
	}
	return Workload{Seed: []byte(DefaultSeed), Iterations: iterations, Algorithm: alg}, nil
}

// Run performs the hashing rounds and returns the final buffer contents.
// Each round resets the hasher, digests the current buffer and overwrites the
// buffer with the digest. With zero iterations the seed is returned unchanged.
func (w Workload) Run() []byte {
	buf := make([]byte, len(w.Seed), max(len(w.Seed), 64))
	copy(buf, w.Seed)
	if w.Iterations <= 0 {
		return buf
	}

	h := w.Algorithm.New()
	for range w.Iterations {
		h.Reset()
		h.Write(buf)
		buf = h.Sum(buf[:0])
	}
	return buf
}

// Task adapts the workload to the runners' task signature, discarding the digest.
func (w Workload) Task() func() {
	return func() { _ = w.Run() }
}

// TotalIterations is the number of digest rounds n tasks perform together.
func (w Workload) TotalIterations(n int) uint64 {
	if n <= 0 || w.Iterations <= 0 {
		return 0
	}
	return uint64(n) * uint64(w.Iterations)
}
