package telemetry

import (
	"io"
	"sync"
	"time"

	"github.com/robinvdvleuten/capita/output"
)

// TimingCollector builds a tree of timed steps. It is safe for concurrent use.
type TimingCollector struct {
	mu      sync.Mutex
	now     func() time.Time
	root    *span
	current *span
}

type span struct {
	name     string
	start    time.Time
	end      time.Time
	parent   *span
	children []*span
}

func (s *span) duration() time.Duration {
	if s.end.IsZero() {
		return 0
	}
	return s.end.Sub(s.start)
}

// NewTimingCollector creates an empty collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{now: time.Now}
}

// Start opens a timer. The first timer becomes the root; later ones nest
// under whichever timer is currently open.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := &span{name: name, start: c.now()}
	if c.root == nil {
		c.root = s
	} else {
		s.parent = c.current
		c.current.children = append(c.current.children, s)
	}
	c.current = s

	return &timer{collector: c, span: s}
}

// Report writes the timing tree. Nothing is written before the first Start.
func (c *TimingCollector) Report(w io.Writer, styles *output.Styles) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.root == nil {
		return
	}
	writeTree(w, c.root, styles)
}

type timer struct {
	collector *TimingCollector
	span      *span
}

func (t *timer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.span.end = t.collector.now()
	if t.collector.current == t.span && t.span.parent != nil {
		t.collector.current = t.span.parent
	}
}

func (t *timer) Child(name string) Timer {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	s := &span{name: name, start: t.collector.now(), parent: t.span}
	t.span.children = append(t.span.children, s)

	return &timer{collector: t.collector, span: s}
}
