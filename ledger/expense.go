package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category is the spending bucket an expense is filed under.
type Category string

const (
	Groceries  Category = "Groceries"
	Vegetables Category = "Vegetables"
	Home       Category = "Home"
	Transport  Category = "Transport"
	Other      Category = "Other"
)

// DefaultCategory is preselected for new expenses.
const DefaultCategory = Groceries

// Categories lists every valid category in display order.
var Categories = []Category{Groceries, Vegetables, Home, Transport, Other}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, known := range Categories {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", ErrUnknownCategory
}

// Expense is a single spending entry.
//
// ID and Date are fixed when the expense is created; Item, Price and Category
// may change through EditExpense.
type Expense struct {
	ID       int64
	Item     string
	Price    decimal.Decimal
	Category Category
	Date     string
}
