package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/capita/ledger"
)

type SummaryCmd struct{}

func (cmd *SummaryCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	s.writeSummary(ctx.Stdout)
	return nil
}

// writeSummary prints the purse, the totals and the per-date spending.
func (s *session) writeSummary(w io.Writer) {
	l := s.ledger
	balance := l.Balance()

	_, _ = fmt.Fprintln(w, renderTitle("Remaining Purse "+s.styles.Balance(s.money(balance), balance)))
	_, _ = fmt.Fprintf(w, "Budget: %s\n\n", s.styles.Amount(s.money(l.Budget())))

	_, _ = fmt.Fprintf(w, "Total items: %d\n", l.Len())
	_, _ = fmt.Fprintf(w, "Spent: %s\n", s.styles.Amount(s.money(l.TotalSpent())))
	_, _ = fmt.Fprintf(w, "Budget left: %s\n", s.styles.Balance(s.money(balance), balance))

	groups := l.GroupByDate()
	if len(groups) == 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, s.styles.Dim("No expenses yet. Add your first expense."))
		return
	}

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{g.Date, s.money(g.Total())})
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprint(w, table{
		title:   "By Date",
		headers: []string{"Date", "Total"},
		rows:    rows,
		right:   map[int]bool{1: true},
	}.render())
}

type ListCmd struct {
	Category string `help:"Only show expenses in this category." short:"c"`
}

func (cmd *ListCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	var filter ledger.Category
	if cmd.Category != "" {
		if filter, err = ledger.ParseCategory(cmd.Category); err != nil {
			return s.fail(err)
		}
	}

	expenses := s.ledger.Expenses()
	if len(expenses) == 0 {
		printInfof(ctx.Stdout, "No expenses yet. Add your first expense.")
		return nil
	}

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		if filter != "" && e.Category != filter {
			continue
		}
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.Item,
			e.Category.String(),
			e.Date,
			s.money(e.Price),
		})
	}

	_, _ = fmt.Fprint(ctx.Stdout, table{
		headers: []string{"ID", "Item", "Category", "Date", "Price"},
		rows:    rows,
		right:   map[int]bool{4: true},
	}.render())
	return nil
}
