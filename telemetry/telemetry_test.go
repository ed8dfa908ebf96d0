package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

// steppingClock advances by step on every call.
func steppingClock(step time.Duration) func() time.Time {
	current := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(step)
		return current
	}
}

func TestFromContextReturnsNoOpWhenMissing(t *testing.T) {
	collector := FromContext(context.Background())
	if _, ok := collector.(noOpCollector); !ok {
		t.Fatalf("expected noOpCollector, got %T", collector)
	}

	timer := StartTimer(context.Background(), "anything")
	timer.Child("child").End()
	timer.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("no-op collector wrote %q", buf.String())
	}
}

func TestWithCollector(t *testing.T) {
	collector := NewTimingCollector()
	ctx := WithCollector(context.Background(), collector)

	got, ok := FromContext(ctx).(*TimingCollector)
	if !ok || got != collector {
		t.Error("FromContext should return the attached collector")
	}
}

func TestStartTimerNestsUnderRoot(t *testing.T) {
	collector := NewTimingCollector()
	collector.now = steppingClock(10 * time.Millisecond)
	ctx := WithCollector(context.Background(), collector)

	root := collector.Start("capita export")
	ctx = WithRootTimer(ctx, root)

	StartTimer(ctx, "store.load").End()
	render := StartTimer(ctx, "pdf.render")
	render.Child("pdf.generate").End()
	render.End()
	root.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	want := strings.Join([]string{
		"capita export: 70ms",
		"├─ store.load: 10ms",
		"└─ pdf.render: 30ms",
		"   └─ pdf.generate: 10ms",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("unexpected report:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestStartTimerWithoutRootUsesCollector(t *testing.T) {
	collector := NewTimingCollector()
	ctx := WithCollector(context.Background(), collector)

	outer := StartTimer(ctx, "outer")
	StartTimer(ctx, "inner").End()
	outer.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[1], "└─ inner") {
		t.Errorf("inner should nest under outer, got:\n%s", buf.String())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{0, "0ms"},
		{1 * time.Millisecond, "1ms"},
		{999 * time.Millisecond, "999ms"},
		{1 * time.Second, "1.00s"},
		{1500 * time.Millisecond, "1.50s"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.duration); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.duration, got, tt.want)
		}
	}
}

func TestEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	NewTimingCollector().Report(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("empty collector wrote %q", buf.String())
	}
}
