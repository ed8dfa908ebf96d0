package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/robinvdvleuten/capita/output"
)

// Steps at or above this duration are highlighted.
const slowThreshold = 100 * time.Millisecond

// writeTree prints the root followed by its children:
//
//	capita export: 42ms
//	├─ store.load: 3ms
//	├─ report.build (12 expenses): 0ms
//	└─ pdf.render: 38ms
func writeTree(w io.Writer, root *span, styles *output.Styles) {
	name := root.name
	if styles != nil {
		name = styles.Keyword(name)
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", name, formatDuration(root.duration()))

	for i, child := range root.children {
		writeNode(w, child, "", i == len(root.children)-1, styles)
	}
}

func writeNode(w io.Writer, s *span, prefix string, last bool, styles *output.Styles) {
	branch, extension := "├─ ", "│  "
	if last {
		branch, extension = "└─ ", "   "
	}

	d := s.duration()
	timing := formatDuration(d)
	tree := prefix + branch
	if styles != nil {
		tree = styles.Dim(tree)
		timing = styles.Timing(timing, d >= slowThreshold)
	}
	_, _ = fmt.Fprintf(w, "%s%s: %s\n", tree, s.name, timing)

	for i, child := range s.children {
		writeNode(w, child, prefix+extension, i == len(s.children)-1, styles)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
