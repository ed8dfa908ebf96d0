package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/capita/ledger"
)

type BudgetCmd struct {
	Amount *string `arg:"" optional:"" help:"New monthly purse amount. Prompts when omitted."`
}

func (cmd *BudgetCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	var input string
	if cmd.Amount != nil {
		input = *cmd.Amount
	} else {
		title := fmt.Sprintf("Set monthly purse amount (%s)", s.cfg.Display.CurrencySymbol)
		if input, err = promptAmount(title, s.ledger.Budget().String()); err != nil {
			return err
		}
	}

	amount, err := ledger.ParseBudget(input)
	if err != nil {
		return s.fail(err)
	}

	s.ledger.SetBudget(amount)
	if err := s.save(); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Budget set to %s", s.styles.Amount(s.money(amount))))
	s.printBalance()
	return nil
}

type ResetCmd struct {
	Yes bool `help:"Reset without asking for confirmation." short:"y"`
}

func (cmd *ResetCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if !cmd.Yes {
		confirmed, err := promptYesNo("Reset budget and clear all expenses for the month?")
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "Nothing reset")
			return nil
		}
	}

	s.ledger.ResetMonth()
	if err := s.save(); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, "Budget reset and expenses cleared")
	return nil
}
