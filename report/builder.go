package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/capita/ledger"
	"github.com/robinvdvleuten/capita/telemetry"
)

// DefaultCurrencySymbol prefixes every amount unless overridden.
const DefaultCurrencySymbol = "₹"

// Builder produces reports. The zero value is not usable; create one with New.
type Builder struct {
	now    func() time.Time
	symbol string
}

// Option configures a Builder.
type Option func(*Builder)

// WithClock replaces time.Now for the report month and year.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// WithCurrencySymbol sets the prefix used when formatting amounts.
func WithCurrencySymbol(symbol string) Option {
	return func(b *Builder) {
		b.symbol = symbol
	}
}

// New creates a Builder with the given options.
func New(opts ...Option) *Builder {
	b := &Builder{
		now:    time.Now,
		symbol: DefaultCurrencySymbol,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build groups expenses by date and lays out the report sections. It returns
// ErrNoExpenses when there is nothing to report.
func (b *Builder) Build(expenses []ledger.Expense) (*Report, error) {
	return b.BuildContext(context.Background(), expenses)
}

// BuildContext is Build with telemetry taken from ctx.
func (b *Builder) BuildContext(ctx context.Context, expenses []ledger.Expense) (*Report, error) {
	if len(expenses) == 0 {
		return nil, ErrNoExpenses
	}

	timer := telemetry.StartTimer(ctx, fmt.Sprintf("report.build (%d expenses)", len(expenses)))
	defer timer.End()

	now := b.now()
	r := &Report{
		Month:      now.Month(),
		Year:       now.Year(),
		GrandTotal: decimal.Zero,
	}

	r.Sections = append(r.Sections, &TitleSection{
		Month: r.Month,
		Year:  r.Year,
		Text:  fmt.Sprintf("Expense Report - %s %d", r.Month, r.Year),
	})

	for _, group := range ledger.GroupByDate(expenses) {
		day := &DateSection{
			Date:  group.Date,
			Total: group.Total(),
			Rows:  make([]Row, 0, len(group.Expenses)),
		}
		day.Header = fmt.Sprintf("%s (Total: %s)", group.Date, b.Format(day.Total))

		for _, e := range group.Expenses {
			day.Rows = append(day.Rows, b.row(e))
		}

		r.GrandTotal = r.GrandTotal.Add(day.Total)
		r.Sections = append(r.Sections, day)
	}

	r.Sections = append(r.Sections, &GrandTotalSection{
		Total: r.GrandTotal,
		Text:  fmt.Sprintf("Grand Total: %s", b.Format(r.GrandTotal)),
	})

	return r, nil
}

// Format renders an amount with the builder's currency symbol.
func (b *Builder) Format(d decimal.Decimal) string {
	return b.symbol + d.String()
}

func (b *Builder) row(e ledger.Expense) Row {
	item := e.Item
	if item == "" {
		item = UnnamedItem
	}
	category := e.Category.String()
	if category == "" {
		category = MiscCategory
	}

	return Row{
		Item:     item,
		Category: category,
		Amount:   b.Format(e.Price),
		Price:    e.Price,
	}
}
