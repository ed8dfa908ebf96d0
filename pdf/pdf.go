// Package pdf renders expense reports as A4 PDF documents.
package pdf

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/robinvdvleuten/capita/report"
	"github.com/robinvdvleuten/capita/telemetry"
)

// Column widths out of maroto's 12-column grid: Item | Category | Amount.
var columnWidths = []int{6, 3, 3}

// Stripe color for alternating table rows.
var stripe = &props.Color{Red: 240, Green: 240, Blue: 240}

// Renderer lays out reports with maroto.
type Renderer struct {
	pageSize pagesize.Type
	striped  bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPageSize overrides the default A4 page.
func WithPageSize(size pagesize.Type) Option {
	return func(r *Renderer) {
		r.pageSize = size
	}
}

// WithStripes toggles the alternating row background.
func WithStripes(enabled bool) Option {
	return func(r *Renderer) {
		r.striped = enabled
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		pageSize: pagesize.A4,
		striped:  true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ report.Renderer = (*Renderer)(nil)

// Render draws every section of rep in order and returns the PDF bytes.
func (r *Renderer) Render(ctx context.Context, rep *report.Report) ([]byte, error) {
	timer := telemetry.StartTimer(ctx, "pdf.render")
	defer timer.End()

	cfg := config.NewBuilder().
		WithPageSize(r.pageSize).
		WithOrientation(orientation.Vertical).
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		WithBottomMargin(10).
		Build()

	m := maroto.New(cfg)

	for _, section := range rep.Sections {
		switch s := section.(type) {
		case *report.TitleSection:
			r.title(m, s)
		case *report.DateSection:
			r.date(m, s)
		case *report.GrandTotalSection:
			r.grandTotal(m, s)
		default:
			return nil, fmt.Errorf("unsupported report section %T", section)
		}
	}

	generate := timer.Child("pdf.generate")
	doc, err := m.Generate()
	generate.End()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// Save renders rep and writes it to dir under the report's file name,
// creating dir when needed. It returns the written path.
func (r *Renderer) Save(ctx context.Context, rep *report.Report, dir string) (string, error) {
	data, err := r.Render(ctx, rep)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, rep.Filename())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	slog.Debug("report saved", "component", "pdf", "path", path, "bytes", len(data))
	return path, nil
}

func (r *Renderer) title(m core.Maroto, s *report.TitleSection) {
	m.AddRow(12,
		text.NewCol(12, s.Text, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(4)
}

func (r *Renderer) date(m core.Maroto, s *report.DateSection) {
	m.AddRow(4)
	m.AddRow(9,
		text.NewCol(12, s.Header, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	header := row.New(8)
	for i, name := range report.Columns {
		header.Add(text.NewCol(columnWidths[i], name, cellText(i, fontstyle.Bold)))
	}
	m.AddRows(header)
	m.AddRow(2, line.NewCol(12))

	rows := make([]core.Row, 0, len(s.Rows))
	for n, entry := range s.Rows {
		rw := row.New(7)
		for i, cell := range entry.Cells() {
			rw.Add(text.NewCol(columnWidths[i], cell, cellText(i, fontstyle.Normal)))
		}
		if r.striped && n%2 == 1 {
			rw.WithStyle(&props.Cell{BackgroundColor: stripe})
		}
		rows = append(rows, rw)
	}
	m.AddRows(rows...)
}

func (r *Renderer) grandTotal(m core.Maroto, s *report.GrandTotalSection) {
	m.AddRow(4)
	m.AddRow(2, line.NewCol(12))
	m.AddRow(10,
		text.NewCol(12, s.Text, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
	)
}

// cellText right-aligns the amount column.
func cellText(column int, style fontstyle.Type) props.Text {
	a := align.Left
	if column == len(columnWidths)-1 {
		a = align.Right
	}
	return props.Text{
		Size:  10,
		Style: style,
		Align: a,
		Top:   1,
	}
}
