package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts user-entered text into a price.
//
// Blank input yields an invalid NullDecimal and no error, so that the caller's
// validation reports the price as missing. Text that is not a number returns
// ErrNotANumber.
func ParseAmount(s string) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, ErrNotANumber
	}

	return decimal.NewNullDecimal(d), nil
}

// ParseBudget converts user-entered text into a budget. Any number is accepted,
// including zero and negative values.
func ParseBudget(s string) (decimal.Decimal, error) {
	amount, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.Valid {
		return decimal.Zero, ErrNotANumber
	}
	return amount.Decimal, nil
}

// Price wraps d as a present price, for callers that already hold a decimal.
func Price(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(d)
}

// ComputeBalance returns budget minus the sum of all prices.
func ComputeBalance(budget decimal.Decimal, expenses []Expense) decimal.Decimal {
	return budget.Sub(sumPrices(expenses))
}

func sumPrices(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Price)
	}
	return total
}
