// Package telemetry records how long the steps of a command take and prints
// them as a tree once the command is done.
//
// Collectors travel through a context so instrumented code never needs an
// extra parameter. When no collector is attached every call is a no-op.
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	root := collector.Start("capita export")
//	ctx = telemetry.WithRootTimer(ctx, root)
//
//	timer := telemetry.StartTimer(ctx, "store.load")
//	// ... work ...
//	timer.End()
//
//	root.End()
//	collector.Report(os.Stderr, output.NewStyles(os.Stderr))
package telemetry

import (
	"context"
	"io"

	"github.com/robinvdvleuten/capita/output"
)

type (
	collectorKey struct{}
	timerKey     struct{}
)

// Collector gathers timers and reports them.
type Collector interface {
	// Start begins a timer nested under the most recently started open timer.
	Start(name string) Timer

	// Report writes the collected timings. styles may be nil for plain text.
	Report(w io.Writer, styles *output.Styles)
}

// Timer tracks a single step.
type Timer interface {
	End()
	Child(name string) Timer
}

// WithCollector attaches a collector to ctx.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey{}, collector)
}

// FromContext returns the collector attached to ctx, or a no-op collector.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey{}).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

// WithRootTimer makes timer the parent of every StartTimer call made with
// the returned context.
func WithRootTimer(ctx context.Context, timer Timer) context.Context {
	return context.WithValue(ctx, timerKey{}, timer)
}

// StartTimer starts a timer below the root timer in ctx, falling back to the
// collector in ctx when there is no root.
func StartTimer(ctx context.Context, name string) Timer {
	if parent, ok := ctx.Value(timerKey{}).(Timer); ok {
		return parent.Child(name)
	}
	return FromContext(ctx).Start(name)
}

type noOpCollector struct{}

func (noOpCollector) Start(string) Timer { return noOpTimer{} }
func (noOpCollector) Report(io.Writer, *output.Styles) {}

type noOpTimer struct{}

func (noOpTimer) End() {}
func (noOpTimer) Child(string) Timer { return noOpTimer{} }
