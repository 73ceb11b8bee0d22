// Package observe provides the observability primitives of an agent run:
// OpenTelemetry metrics, tracing spans and a Prometheus bridge.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can be
// scraped from [Handler]. A package-level default [Metrics] instance
// ([DefaultMetrics]) is provided for convenience; tests should use
// [NewMetrics] with a custom [metric.MeterProvider] to avoid cross-test
// pollution.
package observe

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all toolagent metrics.
const meterName = "github.com/hupe1980/toolagent"

// Tool call statuses recorded on ToolCalls.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusNotFound = "not_found"
)

// Metrics holds all OpenTelemetry metric instruments for the agent loop.
// All fields are safe for concurrent use.
type Metrics struct {
	// ModelDuration tracks gateway call latency. Use with attributes:
	//   attribute.String("model", ...), attribute.String("status", ...)
	ModelDuration metric.Float64Histogram

	// ToolExecutionDuration tracks tool handler latency. Use with attribute:
	//   attribute.String("tool", ...)
	ToolExecutionDuration metric.Float64Histogram

	// ToolCalls counts tool invocations. Use with attributes:
	//   attribute.String("tool", ...), attribute.String("status", ...)
	ToolCalls metric.Int64Counter

	// Runs counts finished runs. Use with attribute:
	//   attribute.String("state", ...)
	Runs metric.Int64Counter

	// RunIterations tracks the number of tool iterations per run.
	RunIterations metric.Int64Histogram

	// ActiveRuns tracks the number of runs currently in progress.
	ActiveRuns metric.Int64UpDownCounter
}

// latencyBuckets defines histogram bucket boundaries (in seconds) for model
// and tool latencies.
var latencyBuckets = []float64{
	0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
}

var iterationBuckets = []float64{0, 1, 2, 3, 5, 8, 10, 15, 20}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.ModelDuration, err = m.Float64Histogram("toolagent.model.duration",
		metric.WithDescription("Latency of model gateway calls."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ToolExecutionDuration, err = m.Float64Histogram("toolagent.tool_execution.duration",
		metric.WithDescription("Latency of tool execution."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ToolCalls, err = m.Int64Counter("toolagent.tool.calls",
		metric.WithDescription("Total tool invocations by tool name and status."),
	); err != nil {
		return nil, err
	}
	if met.Runs, err = m.Int64Counter("toolagent.runs",
		metric.WithDescription("Total finished runs by terminal state."),
	); err != nil {
		return nil, err
	}
	if met.RunIterations, err = m.Int64Histogram("toolagent.run.iterations",
		metric.WithDescription("Tool iterations performed per run."),
		metric.WithExplicitBucketBoundaries(iterationBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ActiveRuns, err = m.Int64UpDownCounter("toolagent.active_runs",
		metric.WithDescription("Number of runs currently in progress."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Panics if instrument creation
// fails (should not happen with the global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordModelCall records the latency of one gateway call.
func (m *Metrics) RecordModelCall(ctx context.Context, model string, dur time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.ModelDuration.Record(ctx, dur.Seconds(),
		metric.WithAttributes(
			attribute.String("model", model),
			attribute.String("status", status),
		),
	)
}

// RecordToolCall records a tool call counter increment and, for executed
// tools, its latency.
func (m *Metrics) RecordToolCall(ctx context.Context, tool, status string, dur time.Duration) {
	m.ToolCalls.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("tool", tool),
			attribute.String("status", status),
		),
	)
	if status != StatusNotFound {
		m.ToolExecutionDuration.Record(ctx, dur.Seconds(),
			metric.WithAttributes(attribute.String("tool", tool)),
		)
	}
}

// RecordRun records a finished run with its terminal state and iteration count.
func (m *Metrics) RecordRun(ctx context.Context, state string, iterations int) {
	m.Runs.Add(ctx, 1, metric.WithAttributes(attribute.String("state", state)))
	m.RunIterations.Record(ctx, int64(iterations))
}
