package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/capita/ledger"
	"github.com/robinvdvleuten/capita/telemetry"
)

func at(year int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 15, 12, 0, 0, 0, time.Local)
	}
}

func expense(id int64, item, price string, category ledger.Category, date string) ledger.Expense {
	return ledger.Expense{
		ID:       id,
		Item:     item,
		Price:    decimal.RequireFromString(price),
		Category: category,
		Date:     date,
	}
}

func TestBuild(t *testing.T) {
	expenses := []ledger.Expense{
		expense(1, "Milk", "40", ledger.Groceries, "1/1/2024"),
		expense(2, "Bus", "20", ledger.Transport, "1/1/2024"),
		expense(3, "Rent", "1000", ledger.Home, "2/1/2024"),
	}

	r, err := New(WithClock(at(2024, time.January))).Build(expenses)
	assert.NoError(t, err)

	t.Run("Title", func(t *testing.T) {
		title, ok := r.Sections[0].(*TitleSection)
		assert.True(t, ok)
		assert.Equal(t, "Expense Report - January 2024", title.Text)
		assert.Equal(t, "Expense_Report_January_2024.pdf", r.Filename())
	})

	t.Run("DateSections", func(t *testing.T) {
		days := r.Days()
		assert.Equal(t, 2, len(days))

		assert.Equal(t, "1/1/2024 (Total: ₹60)", days[0].Header)
		assert.Equal(t, [][]string{
			{"Milk", "Groceries", "₹40"},
			{"Bus", "Transport", "₹20"},
		}, cells(days[0].Rows))

		assert.Equal(t, "2/1/2024 (Total: ₹1000)", days[1].Header)
		assert.Equal(t, [][]string{{"Rent", "Home", "₹1000"}}, cells(days[1].Rows))
	})

	t.Run("GrandTotal", func(t *testing.T) {
		total, ok := r.Sections[len(r.Sections)-1].(*GrandTotalSection)
		assert.True(t, ok)
		assert.Equal(t, "Grand Total: ₹1060", total.Text)
		assert.Equal(t, "1060", r.GrandTotal.String())
		assert.Equal(t, 4, len(r.Sections))
	})
}

func TestBuildPlaceholders(t *testing.T) {
	expenses := []ledger.Expense{
		{ID: 1, Price: decimal.RequireFromString("2.5"), Date: "3/4/2024"},
	}

	r, err := New(WithClock(at(2024, time.April)), WithCurrencySymbol("Rs.")).Build(expenses)
	assert.NoError(t, err)

	days := r.Days()
	assert.Equal(t, [][]string{{"Unnamed", "Misc", "Rs.2.5"}}, cells(days[0].Rows))
	assert.Equal(t, "3/4/2024 (Total: Rs.2.5)", days[0].Header)
	assert.Equal(t, "Expense_Report_April_2024.pdf", r.Filename())
}

func TestBuildTotalsMatchInput(t *testing.T) {
	expenses := []ledger.Expense{
		expense(1, "a", "0.1", ledger.Other, "1/3/2024"),
		expense(2, "b", "0.2", ledger.Other, "1/2/2024"),
		expense(3, "c", "0.3", ledger.Other, "1/3/2024"),
	}

	r, err := New().Build(expenses)
	assert.NoError(t, err)

	sum := decimal.Zero
	for _, day := range r.Days() {
		sum = sum.Add(day.Total)
	}
	assert.Equal(t, "0.6", sum.String())
	assert.True(t, sum.Equal(r.GrandTotal))
	assert.Equal(t, "1/3/2024", r.Days()[0].Date)
}

func TestBuildEmpty(t *testing.T) {
	_, err := New().Build(nil)
	assert.IsError(t, err, ErrNoExpenses)
	assert.EqualError(t, err, "No expenses available for this month!")
}

func TestBuildContextRecordsTiming(t *testing.T) {
	collector := telemetry.NewTimingCollector()
	ctx := telemetry.WithCollector(context.Background(), collector)

	_, err := New().BuildContext(ctx, []ledger.Expense{expense(1, "a", "1", ledger.Other, "1/1/2024")})
	assert.NoError(t, err)

	var buf strings.Builder
	collector.Report(&buf, nil)
	assert.Contains(t, buf.String(), "report.build (1 expenses)")
}

func cells(rows []Row) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = r.Cells()
	}
	return out
}
