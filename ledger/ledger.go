// Package ledger keeps a monthly budget and the list of expenses spent
// against it.
//
// The ledger owns its state exclusively. Every mutating operation either
// completes or is rejected with a *ValidationError and leaves the state
// untouched. Derived values (the balance and the grouping by date) are
// computed on read, so they always reflect the latest mutation.
//
// Example usage:
//
//	l := ledger.New()
//	l.SetBudget(decimal.NewFromInt(5000))
//
//	price, err := ledger.ParseAmount("40")
//	if err != nil {
//	    return err
//	}
//	if _, err := l.AddExpense("Milk", price, ledger.Groceries); err != nil {
//	    fmt.Println(err) // "Please enter item and price", ...
//	}
//
//	fmt.Println(l.Balance()) // 4960
package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// DefaultDateLayout renders dates the way en-US locales print a short date.
const DefaultDateLayout = "1/2/2006"

// Ledger holds the budget and the expenses, newest first.
type Ledger struct {
	budget     decimal.Decimal
	expenses   []Expense
	now        func() time.Time
	dateLayout string
}

// Snapshot is a copy of the ledger state, used for persistence and reporting.
type Snapshot struct {
	Budget   decimal.Decimal
	Expenses []Expense
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock replaces time.Now for id and date assignment.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithDateLayout sets the time layout used to render expense dates.
func WithDateLayout(layout string) Option {
	return func(l *Ledger) {
		if layout != "" {
			l.dateLayout = layout
		}
	}
}

// New creates an empty ledger with a zero budget.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		budget:     decimal.Zero,
		expenses:   make([]Expense, 0),
		now:        time.Now,
		dateLayout: DefaultDateLayout,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// FromSnapshot creates a ledger initialized with the given state.
func FromSnapshot(s Snapshot, opts ...Option) *Ledger {
	l := New(opts...)
	l.budget = s.Budget
	if s.Expenses != nil {
		l.expenses = slices.Clone(s.Expenses)
	}
	return l
}

// Snapshot returns a copy of the current state.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{
		Budget:   l.budget,
		Expenses: l.Expenses(),
	}
}

// Budget returns the current budget.
func (l *Ledger) Budget() decimal.Decimal {
	return l.budget
}

// Expenses returns a copy of the expenses, newest first.
func (l *Ledger) Expenses() []Expense {
	return slices.Clone(l.expenses)
}

// Len returns the number of expenses.
func (l *Ledger) Len() int {
	return len(l.expenses)
}

// Expense returns the expense with the given id.
func (l *Ledger) Expense(id int64) (Expense, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return Expense{}, false
	}
	return l.expenses[i], true
}

// TotalSpent sums all prices.
func (l *Ledger) TotalSpent() decimal.Decimal {
	return sumPrices(l.expenses)
}

// Balance returns budget minus total spent.
func (l *Ledger) Balance() decimal.Decimal {
	return ComputeBalance(l.budget, l.expenses)
}

// GroupByDate groups the current expenses by their date.
func (l *Ledger) GroupByDate() Groups {
	return GroupByDate(l.expenses)
}

// SetBudget replaces the budget. Any value is accepted.
func (l *Ledger) SetBudget(amount decimal.Decimal) {
	l.budget = amount
}

// AddExpense records a new expense at the front of the list.
//
// The item must be non-blank and the price present and greater than zero.
func (l *Ledger) AddExpense(item string, price decimal.NullDecimal, category Category) (Expense, error) {
	item = strings.TrimSpace(item)
	if item == "" || !price.Valid {
		return Expense{}, ErrItemOrPriceMissing
	}
	if !price.Decimal.IsPositive() {
		return Expense{}, ErrPriceNotPositive
	}
	if !category.Valid() {
		return Expense{}, ErrUnknownCategory
	}

	now := l.now()
	e := Expense{
		ID:       l.nextID(now),
		Item:     item,
		Price:    price.Decimal,
		Category: category,
		Date:     now.Local().Format(l.dateLayout),
	}

	l.expenses = slices.Insert(l.expenses, 0, e)
	return e, nil
}

// EditExpense replaces item, price and category of an existing expense. The
// id, date and position are kept. Editing an unknown id does nothing.
//
// Unlike AddExpense, the price is not required to be positive.
func (l *Ledger) EditExpense(id int64, item string, price decimal.NullDecimal, category Category) error {
	item = strings.TrimSpace(item)
	if item == "" || !price.Valid {
		return ErrItemOrPriceMissing
	}
	if !category.Valid() {
		return ErrUnknownCategory
	}

	i := l.indexOf(id)
	if i < 0 {
		return nil
	}

	l.expenses[i].Item = item
	l.expenses[i].Price = price.Decimal
	l.expenses[i].Category = category
	return nil
}

// RemoveExpense deletes the expense with the given id and reports whether one
// was found. Callers are expected to have confirmed the deletion.
func (l *Ledger) RemoveExpense(id int64) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.expenses = slices.Delete(l.expenses, i, i+1)
	return true
}

// ResetMonth clears all expenses and sets the budget to zero.
func (l *Ledger) ResetMonth() {
	l.expenses = make([]Expense, 0)
	l.budget = decimal.Zero
}

func (l *Ledger) indexOf(id int64) int {
	return slices.IndexFunc(l.expenses, func(e Expense) bool {
		return e.ID == id
	})
}

// nextID derives an id from the clock and bumps it past every existing id.
func (l *Ledger) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	for _, e := range l.expenses {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	return id
}
