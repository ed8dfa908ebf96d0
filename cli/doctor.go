package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/robinvdvleuten/capita/store"
)

// DoctorCmd provides doctor utilities for debugging stored data.
type DoctorCmd struct {
	Dump DumpCmd `cmd:"" help:"Show the raw storage slots and the decoded ledger."`
}

// DumpCmd shows what is stored and how it decodes.
type DumpCmd struct {
	Raw bool `help:"Only print the raw slot values."`
}

// dumpedExpense is an Expense with the price flattened to text, which keeps
// the decimal internals out of the dump.
type dumpedExpense struct {
	ID       int64
	Item     string
	Price    string
	Category string
	Date     string
}

// Run executes the dump command.
func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	raw, err := s.repo.Raw(s.ctx)
	if err != nil {
		return err
	}

	printInfof(ctx.Stdout, "capita %s, %s backend at %s", versionString(), s.cfg.General.Backend, pathStyle.Render(s.storePath()))

	for _, key := range []string{store.BudgetKey, store.ExpensesKey} {
		value, ok := raw[key]
		if !ok {
			_, _ = fmt.Fprintf(ctx.Stdout, "%-10s %s\n", key, s.styles.Dim("<missing>"))
			continue
		}
		_, _ = fmt.Fprintf(ctx.Stdout, "%-10s %s\n", key, value)
	}

	if cmd.Raw {
		return nil
	}

	expenses := make([]dumpedExpense, 0, s.ledger.Len())
	for _, e := range s.ledger.Expenses() {
		expenses = append(expenses, dumpedExpense{
			ID:       e.ID,
			Item:     e.Item,
			Price:    e.Price.String(),
			Category: e.Category.String(),
			Date:     e.Date,
		})
	}

	_, _ = fmt.Fprintln(ctx.Stdout)
	p := repr.New(ctx.Stdout, repr.Indent("  "))
	p.Println(struct {
		Budget   string
		Balance  string
		Expenses []dumpedExpense
	}{
		Budget:   s.ledger.Budget().String(),
		Balance:  s.ledger.Balance().String(),
		Expenses: expenses,
	})

	return nil
}
