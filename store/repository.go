package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/capita/ledger"
	"github.com/robinvdvleuten/capita/telemetry"
)

// Slot names.
const (
	BudgetKey   = "budget"
	ExpensesKey = "expenses"
)

// DefaultBudget is the purse a first run starts with.
var DefaultBudget = decimal.NewFromInt(5000)

// record is the stored shape of an expense. Price is kept as a JSON number.
type record struct {
	ID       int64       `json:"id"`
	Item     string      `json:"item"`
	Price    json.Number `json:"price"`
	Category string      `json:"category"`
	Date     string      `json:"date"`
}

// Repository loads and saves ledger snapshots through a Store.
type Repository struct {
	store         Store
	defaultBudget decimal.Decimal
}

// RepositoryOption configures a Repository.
type RepositoryOption func(*Repository)

// WithDefaultBudget sets the budget used when the budget slot is missing.
func WithDefaultBudget(budget decimal.Decimal) RepositoryOption {
	return func(r *Repository) {
		r.defaultBudget = budget
	}
}

// NewRepository wraps s.
func NewRepository(s Store, opts ...RepositoryOption) *Repository {
	r := &Repository{
		store:         s,
		defaultBudget: DefaultBudget,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load reads both slots. A missing or empty budget slot yields the default
// budget and a missing expenses slot yields no expenses.
func (r *Repository) Load(ctx context.Context) (ledger.Snapshot, error) {
	timer := telemetry.StartTimer(ctx, "store.load")
	defer timer.End()

	snapshot := ledger.Snapshot{
		Budget:   r.defaultBudget,
		Expenses: []ledger.Expense{},
	}

	raw, ok, err := r.store.Get(ctx, BudgetKey)
	if err != nil {
		return ledger.Snapshot{}, err
	}
	if ok && strings.TrimSpace(raw) != "" {
		budget, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			logger().Warn("ignoring unreadable budget slot", "value", raw, "error", err)
		} else {
			snapshot.Budget = budget
		}
	}

	raw, ok, err = r.store.Get(ctx, ExpensesKey)
	if err != nil {
		return ledger.Snapshot{}, err
	}
	if ok && strings.TrimSpace(raw) != "" {
		expenses, err := decodeExpenses(raw)
		if err != nil {
			return ledger.Snapshot{}, err
		}
		snapshot.Expenses = expenses
	}

	logger().Debug("loaded snapshot", "budget", snapshot.Budget.String(), "expenses", len(snapshot.Expenses))
	return snapshot, nil
}

// Save rewrites both slots.
func (r *Repository) Save(ctx context.Context, snapshot ledger.Snapshot) error {
	timer := telemetry.StartTimer(ctx, "store.save")
	defer timer.End()

	expenses, err := encodeExpenses(snapshot.Expenses)
	if err != nil {
		return err
	}

	values := map[string]string{
		BudgetKey:   snapshot.Budget.String(),
		ExpensesKey: expenses,
	}

	if b, ok := r.store.(batchSetter); ok {
		return b.SetAll(ctx, values)
	}
	for _, key := range []string{BudgetKey, ExpensesKey} {
		if err := r.store.Set(ctx, key, values[key]); err != nil {
			return err
		}
	}
	return nil
}

// Raw returns the undecoded slot values for diagnostics.
func (r *Repository) Raw(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string)
	for _, key := range []string{BudgetKey, ExpensesKey} {
		value, ok, err := r.store.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if ok {
			out[key] = value
		}
	}
	return out, nil
}

func decodeExpenses(raw string) ([]ledger.Expense, error) {
	var records []record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decoding expenses: %w", err)
	}

	expenses := make([]ledger.Expense, 0, len(records))
	for _, rec := range records {
		price := decimal.Zero
		if rec.Price != "" {
			p, err := decimal.NewFromString(rec.Price.String())
			if err != nil {
				return nil, fmt.Errorf("decoding price of expense %d: %w", rec.ID, err)
			}
			price = p
		}

		expenses = append(expenses, ledger.Expense{
			ID:       rec.ID,
			Item:     rec.Item,
			Price:    price,
			Category: ledger.Category(rec.Category),
			Date:     rec.Date,
		})
	}
	return expenses, nil
}

func encodeExpenses(expenses []ledger.Expense) (string, error) {
	records := make([]record, len(expenses))
	for i, e := range expenses {
		records[i] = record{
			ID:       e.ID,
			Item:     e.Item,
			Price:    json.Number(e.Price.String()),
			Category: e.Category.String(),
			Date:     e.Date,
		}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encoding expenses: %w", err)
	}
	return string(data), nil
}
