// Package metrics collects benchmark measurements: runtime memory snapshots
// and a Prometheus registry that can be exported in text exposition format.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "parbench"

// Recorder owns a private Prometheus registry for one benchmark run.
type Recorder struct {
	registry   *prometheus.Registry
	duration   *prometheus.GaugeVec
	tasks      *prometheus.GaugeVec
	cpuPercent *prometheus.GaugeVec
	iterations *prometheus.CounterVec
	speedup    prometheus.Gauge
}

// NewRecorder creates a Recorder with Go runtime and process collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Wall-clock duration of a benchmark phase.",
		}, []string{"phase"}),
		tasks: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tasks",
			Help:      "Number of tasks executed in a benchmark phase.",
		}, []string{"phase"}),
		cpuPercent: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "phase_cpu_percent",
			Help:      "System-wide CPU utilisation measured over a benchmark phase.",
		}, []string{"phase"}),
		iterations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hash_iterations_total",
			Help:      "Digest rounds computed, by phase and algorithm.",
		}, []string{"phase", "algorithm"}),
		speedup: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "speedup_ratio",
			Help:      "Sequential duration divided by parallel duration.",
		}),
	}
	r.registry.MustRegister(
		r.duration, r.tasks, r.cpuPercent, r.iterations, r.speedup,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObservePhase records the outcome of one completed phase.
func (r *Recorder) ObservePhase(phase, algorithm string, tasks int, seconds, cpuPercent float64, iterations uint64) {
	r.duration.WithLabelValues(phase).Set(seconds)
	r.tasks.WithLabelValues(phase).Set(float64(tasks))
	r.cpuPercent.WithLabelValues(phase).Set(cpuPercent)
	r.iterations.WithLabelValues(phase, algorithm).Add(float64(iterations))
}

// SetSpeedup records the sequential/parallel duration ratio.
func (r *Recorder) SetSpeedup(ratio float64) {
	r.speedup.Set(ratio)
}

// Gatherer exposes the registry, e.g. for promhttp or tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the registry to path in the text exposition format
// read by node_exporter's textfile collector. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
