package ledger

import "github.com/shopspring/decimal"

// DateGroup holds the expenses recorded on one date, in their original order.
type DateGroup struct {
	Date     string
	Expenses []Expense
}

// Total sums the prices in the group.
func (g DateGroup) Total() decimal.Decimal {
	return sumPrices(g.Expenses)
}

// Groups is a partition of expenses keyed by date. Groups appear in the order
// their date was first encountered, which is not necessarily chronological.
type Groups []DateGroup

// GroupByDate partitions expenses by exact match on their Date string.
func GroupByDate(expenses []Expense) Groups {
	index := make(map[string]int)
	groups := make(Groups, 0)

	for _, e := range expenses {
		i, ok := index[e.Date]
		if !ok {
			i = len(groups)
			index[e.Date] = i
			groups = append(groups, DateGroup{Date: e.Date})
		}
		groups[i].Expenses = append(groups[i].Expenses, e)
	}

	return groups
}

// Lookup returns the group for date.
func (g Groups) Lookup(date string) (DateGroup, bool) {
	for _, group := range g {
		if group.Date == date {
			return group, true
		}
	}
	return DateGroup{}, false
}

// Dates returns the group keys in order.
func (g Groups) Dates() []string {
	dates := make([]string, len(g))
	for i, group := range g {
		dates[i] = group.Date
	}
	return dates
}

// Flatten concatenates all group members, group by group.
func (g Groups) Flatten() []Expense {
	var all []Expense
	for _, group := range g {
		all = append(all, group.Expenses...)
	}
	return all
}

// Total sums every group.
func (g Groups) Total() decimal.Decimal {
	total := decimal.Zero
	for _, group := range g {
		total = total.Add(group.Total())
	}
	return total
}
