package bench

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/agbru/parbench/internal/bench"

// ProgressFunc receives the number of finished tasks out of total.
// RunParallel calls it from the worker goroutines, so it must be safe for
// concurrent use. Calls carry an increasing done count but may arrive out of order.
type ProgressFunc func(done, total int)

// CPUSampler returns system CPU utilisation (0-100) since its previous call.
type CPUSampler func() float64

// Option configures a runner invocation.
type Option func(*options)

type options struct {
	now      func() time.Time
	progress ProgressFunc
	sampler  CPUSampler
	tracer   trace.Tracer
}

func newOptions(opts []Option) options {
	o := options{
		now:    time.Now,
		tracer: otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock replaces time.Now. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithProgress registers a completion callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) { o.progress = fn }
}

// WithCPUSampler samples CPU utilisation at the start and end of the phase.
func WithCPUSampler(fn CPUSampler) Option {
	return func(o *options) { o.sampler = fn }
}

// WithTracer overrides the global OpenTelemetry tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) { o.tracer = tracer }
}

func (o options) report(done, total int) {
	if o.progress != nil {
		o.progress(done, total)
	}
}

func (o options) sampleCPU() float64 {
	if o.sampler == nil {
		return 0
	}
	return o.sampler()
}
