package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/capita/ledger"
)

type AddCmd struct {
	Item     string `arg:"" help:"What the money was spent on."`
	Price    string `arg:"" help:"Amount spent; must be greater than 0."`
	Category string `help:"Groceries, Vegetables, Home, Transport or Other." short:"c" default:"Groceries"`
}

func (cmd *AddCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	price, err := ledger.ParseAmount(cmd.Price)
	if err != nil {
		return s.fail(err)
	}
	category, err := ledger.ParseCategory(cmd.Category)
	if err != nil {
		return s.fail(err)
	}

	e, err := s.ledger.AddExpense(cmd.Item, price, category)
	if err != nil {
		return s.fail(err)
	}
	if err := s.save(); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Added %s of %s to %s", e.Item, s.styles.Amount(s.money(e.Price)), s.styles.Category(e.Category.String())))
	s.printBalance()
	return nil
}

type EditCmd struct {
	ID       int64   `arg:"" help:"ID of the expense, as shown by list."`
	Item     *string `help:"New item name."`
	Price    *string `help:"New price."`
	Category *string `help:"New category." short:"c"`
}

func (cmd *EditCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	current, ok := s.ledger.Expense(cmd.ID)
	if !ok {
		printError(ctx.Stderr, fmt.Sprintf("No expense with ID %d", cmd.ID))
		return NewCommandError(1)
	}

	item := current.Item
	if cmd.Item != nil {
		item = *cmd.Item
	}

	price := ledger.Price(current.Price)
	if cmd.Price != nil {
		if price, err = ledger.ParseAmount(*cmd.Price); err != nil {
			return s.fail(err)
		}
	}

	category := current.Category
	if cmd.Category != nil {
		if category, err = ledger.ParseCategory(*cmd.Category); err != nil {
			return s.fail(err)
		}
	}

	if err := s.ledger.EditExpense(cmd.ID, item, price, category); err != nil {
		return s.fail(err)
	}
	if err := s.save(); err != nil {
		return err
	}

	updated, _ := s.ledger.Expense(cmd.ID)
	printSuccess(ctx.Stdout, fmt.Sprintf("Updated %s of %s in %s", updated.Item, s.styles.Amount(s.money(updated.Price)), s.styles.Category(updated.Category.String())))
	s.printBalance()
	return nil
}

type RmCmd struct {
	ID  int64 `arg:"" help:"ID of the expense, as shown by list."`
	Yes bool  `help:"Delete without asking for confirmation." short:"y"`
}

func (cmd *RmCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	e, ok := s.ledger.Expense(cmd.ID)
	if !ok {
		printError(ctx.Stderr, fmt.Sprintf("No expense with ID %d", cmd.ID))
		return NewCommandError(1)
	}

	if !cmd.Yes {
		confirmed, err := promptYesNo(fmt.Sprintf("Delete '%s' of %s?", e.Item, s.money(e.Price)))
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "Nothing deleted")
			return nil
		}
	}

	s.ledger.RemoveExpense(cmd.ID)
	if err := s.save(); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Deleted %s of %s", e.Item, s.money(e.Price)))
	s.printBalance()
	return nil
}

func (s *session) printBalance() {
	balance := s.ledger.Balance()
	printInfof(s.kctx.Stdout, "Remaining purse: %s", s.styles.Balance(s.money(balance), balance))
}
