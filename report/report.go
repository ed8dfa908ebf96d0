// Package report turns a snapshot of expenses into an ordered list of
// sections ready for a document renderer.
//
// A report always consists of a title section, one section per date the
// expenses were recorded on, and a closing grand total. Dates appear in the
// order they are first encountered in the input, which for a ledger is
// newest first.
//
// The builder never reads or writes storage or files. Rendering and saving
// are left to a Renderer implementation such as the pdf package.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNoExpenses is returned when a report is requested for an empty expense list.
var ErrNoExpenses = errors.New("No expenses available for this month!")

// Placeholders for fields that are missing from a stored expense.
const (
	UnnamedItem  = "Unnamed"
	MiscCategory = "Misc"
)

// Columns are the table headings of every date section.
var Columns = []string{"Item", "Category", "Amount"}

// Renderer lays out a report and returns the encoded document.
type Renderer interface {
	Render(ctx context.Context, r *Report) ([]byte, error)
}

// Section is one drawable block of a report: *TitleSection, *DateSection or
// *GrandTotalSection.
type Section interface {
	section()
}

// TitleSection opens the report.
type TitleSection struct {
	Month time.Month
	Year  int
	Text  string
}

// DateSection lists the expenses recorded on a single date.
type DateSection struct {
	Date   string
	Total  decimal.Decimal
	Header string
	Rows   []Row
}

// GrandTotalSection closes the report.
type GrandTotalSection struct {
	Total decimal.Decimal
	Text  string
}

func (*TitleSection) section()      {}
func (*DateSection) section()       {}
func (*GrandTotalSection) section() {}

// Row is one table line of a date section.
type Row struct {
	Item     string
	Category string
	Amount   string
	Price    decimal.Decimal
}

// Cells returns the row in column order.
func (r Row) Cells() []string {
	return []string{r.Item, r.Category, r.Amount}
}

// Report is the built section list plus the values it was derived from.
type Report struct {
	Month      time.Month
	Year       int
	GrandTotal decimal.Decimal
	Sections   []Section
}

// Filename is the name the exported document is saved under.
func (r *Report) Filename() string {
	return fmt.Sprintf("Expense_Report_%s_%d.pdf", r.Month, r.Year)
}

// Days returns the date sections in report order.
func (r *Report) Days() []*DateSection {
	var days []*DateSection
	for _, s := range r.Sections {
		if d, ok := s.(*DateSection); ok {
			days = append(days, d)
		}
	}
	return days
}
