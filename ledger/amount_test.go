package ledger

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		want      string
		wantErr   error
	}{
		{name: "integer", input: "40", wantValid: true, want: "40"},
		{name: "decimal", input: "12.50", wantValid: true, want: "12.5"},
		{name: "surrounding space", input: "  7 ", wantValid: true, want: "7"},
		{name: "negative", input: "-3", wantValid: true, want: "-3"},
		{name: "blank is missing", input: "   ", wantValid: false},
		{name: "not a number", input: "abc", wantErr: ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr != nil {
				assert.IsError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantValid, got.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.want, got.Decimal.String())
			}
		})
	}
}

func TestParseBudget(t *testing.T) {
	d, err := ParseBudget("-250")
	assert.NoError(t, err)
	assert.Equal(t, "-250", d.String())

	_, err = ParseBudget("")
	assert.IsError(t, err, ErrNotANumber)

	_, err = ParseBudget("five")
	assert.IsError(t, err, ErrNotANumber)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" transport ")
	assert.NoError(t, err)
	assert.Equal(t, Transport, c)

	_, err = ParseCategory("Fuel")
	assert.IsError(t, err, ErrUnknownCategory)

	for _, known := range Categories {
		assert.True(t, known.Valid())
	}
	assert.False(t, Category("").Valid())
}

func TestComputeBalance(t *testing.T) {
	expenses := []Expense{
		{Price: decimal.NewFromInt(40)},
		{Price: decimal.RequireFromString("0.25")},
	}
	assert.Equal(t, "59.75", ComputeBalance(decimal.NewFromInt(100), expenses).String())
	assert.Equal(t, "100", ComputeBalance(decimal.NewFromInt(100), nil).String())
}
