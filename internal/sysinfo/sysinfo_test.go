package sysinfo

import (
	"runtime"
	"testing"
)

func TestParallelism(t *testing.T) {
	p := Parallelism()
	if p < 1 {
		t.Fatalf("Parallelism() = %d, want >= 1", p)
	}
	if p > runtime.NumCPU() || p > runtime.GOMAXPROCS(0) {
		t.Errorf("Parallelism() = %d exceeds NumCPU=%d or GOMAXPROCS=%d", p, runtime.NumCPU(), runtime.GOMAXPROCS(0))
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name             string
		maxProcs, numCPU int
		want             int
	}{
		{"GOMAXPROCS lower", 2, 8, 2},
		{"NumCPU lower", 16, 4, 4},
		{"equal", 8, 8, 8},
		{"zero clamps to one", 0, 0, 1},
		{"negative clamps to one", -3, 4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp(tt.maxProcs, tt.numCPU); got != tt.want {
				t.Errorf("clamp(%d, %d) = %d, want %d", tt.maxProcs, tt.numCPU, got, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	h := Describe()
	if h.LogicalCores != runtime.NumCPU() {
		t.Errorf("LogicalCores = %d, want %d", h.LogicalCores, runtime.NumCPU())
	}
	if h.GOMAXPROCS < 1 {
		t.Errorf("GOMAXPROCS = %d", h.GOMAXPROCS)
	}
	if h.PhysicalCores < 0 {
		t.Errorf("PhysicalCores = %d", h.PhysicalCores)
	}
}

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
}
