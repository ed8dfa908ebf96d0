package pdf

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/capita/ledger"
	"github.com/robinvdvleuten/capita/report"
)

func buildReport(t *testing.T) *report.Report {
	t.Helper()

	expenses := []ledger.Expense{
		{ID: 1, Item: "Milk", Price: decimal.NewFromInt(40), Category: ledger.Groceries, Date: "1/1/2024"},
		{ID: 2, Item: "Bus", Price: decimal.NewFromInt(20), Category: ledger.Transport, Date: "1/1/2024"},
		{ID: 3, Item: "Rent", Price: decimal.NewFromInt(1000), Category: ledger.Home, Date: "2/1/2024"},
	}

	clock := func() time.Time { return time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local) }
	r, err := report.New(report.WithClock(clock), report.WithCurrencySymbol("Rs.")).Build(expenses)
	assert.NoError(t, err)
	return r
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "Default"},
		{name: "Unstriped", opts: []Option{WithStripes(false)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := New(tt.opts...).Render(context.Background(), buildReport(t))
			assert.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
		})
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := New().Save(context.Background(), buildReport(t), dir)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Expense_Report_January_2024.pdf"), path)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
