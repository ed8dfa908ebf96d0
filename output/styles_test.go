package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewStyles(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if styles == nil || styles.Output() == nil {
		t.Fatal("NewStyles should return Styles with an output")
	}
}

func TestStylesKeepText(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	tests := []struct {
		name  string
		style func(string) string
		text  string
	}{
		{"Success", styles.Success, "Added Milk"},
		{"Error", styles.Error, "Price must be greater than 0"},
		{"Warning", styles.Warning, "careful"},
		{"FilePath", styles.FilePath, "/tmp/Expense_Report_January_2024.pdf"},
		{"Category", styles.Category, "Groceries"},
		{"Date", styles.Date, "1/1/2024"},
		{"Amount", styles.Amount, "₹40"},
		{"Keyword", styles.Keyword, "Total"},
		{"Dim", styles.Dim, "secondary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style(tt.text); !strings.Contains(got, tt.text) {
				t.Errorf("%s() = %q, should contain %q", tt.name, got, tt.text)
			}
		})
	}
}

func TestStylesBalance(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	for _, v := range []string{"-10", "0", "250.5"} {
		value := decimal.RequireFromString(v)
		if got := styles.Balance(v, value); !strings.Contains(got, v) {
			t.Errorf("Balance(%s) = %q", v, got)
		}
	}
}

func TestStylesTiming(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if got := styles.Timing("150ms", true); !strings.Contains(got, "150ms") {
		t.Errorf("Timing(slow) = %q", got)
	}
	if got := styles.Timing("5ms", false); !strings.Contains(got, "5ms") {
		t.Errorf("Timing(fast) = %q", got)
	}
}
