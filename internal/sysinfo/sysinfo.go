// Package sysinfo answers host capability questions: how many tasks can run
// in parallel, what CPU is present, and how busy the system is.
package sysinfo

import (
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	xcpu "golang.org/x/sys/cpu"
)

// Parallelism returns the number of CPU-bound goroutines the process can run
// at once: the smaller of GOMAXPROCS and the usable CPU count, never below 1.
func Parallelism() int {
	return clamp(runtime.GOMAXPROCS(0), runtime.NumCPU())
}

func clamp(maxProcs, numCPU int) int {
	return max(min(maxProcs, numCPU), 1)
}

// Host describes the machine the benchmark runs on.
type Host struct {
	Model         string
	LogicalCores  int
	PhysicalCores int
	GOMAXPROCS    int
	// Features lists CPU extensions used by the Go digest implementations.
	Features []string
}

// Describe gathers host information. Fields that cannot be read are left zero.
func Describe() Host {
	h := Host{
		LogicalCores: runtime.NumCPU(),
		GOMAXPROCS:   runtime.GOMAXPROCS(0),
		Features:     hashFeatures(),
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		h.Model = strings.TrimSpace(infos[0].ModelName)
	}
	if n, err := cpu.Counts(false); err == nil {
		h.PhysicalCores = n
	}
	return h
}

func hashFeatures() []string {
	var features []string
	add := func(ok bool, name string) {
		if ok {
			features = append(features, name)
		}
	}
	add(xcpu.X86.HasSSSE3, "ssse3")
	add(xcpu.X86.HasSSE41, "sse4.1")
	add(xcpu.X86.HasAVX2, "avx2")
	add(xcpu.X86.HasAVX512F, "avx512f")
	add(xcpu.X86.HasBMI2, "bmi2")
	add(xcpu.ARM64.HasSHA2, "sha2")
	add(xcpu.ARM64.HasSHA512, "sha512")
	add(xcpu.ARM64.HasSHA3, "sha3")
	return features
}

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	return Stats{CPUPercent: CPUPercent(), MemPercent: memPercent()}
}

// CPUPercent returns system-wide CPU utilisation since the previous call.
func CPUPercent() float64 {
	pcts, err := cpu.Percent(0, false)
	if err != nil || len(pcts) == 0 {
		return 0
	}
	return pcts[0]
}

func memPercent() float64 {
	vmem, err := mem.VirtualMemory()
	if err != nil || vmem == nil {
		return 0
	}
	return vmem.UsedPercent
}
