package cli

import (
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"

	"github.com/robinvdvleuten/capita/pdf"
	"github.com/robinvdvleuten/capita/report"
)

type ExportCmd struct {
	Output    string `help:"Directory to write the report to (defaults to report.output_dir)." short:"o" type:"path" placeholder:"DIR"`
	PageSize  string `help:"Paper size (${enum})." enum:"a4,letter,legal" default:"a4"`
	NoStripes bool   `help:"Do not shade alternating table rows."`
}

func (cmd *ExportCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	builder := report.New(report.WithCurrencySymbol(s.cfg.Report.CurrencySymbol))
	r, err := builder.BuildContext(s.ctx, s.ledger.Expenses())
	if err != nil {
		return s.fail(err)
	}

	dir := cmd.Output
	if dir == "" {
		dir = s.cfg.Report.OutputDir
	}

	renderer := pdf.New(
		pdf.WithPageSize(pagesize.Type(cmd.PageSize)),
		pdf.WithStripes(!cmd.NoStripes),
	)
	path, err := renderer.Save(s.ctx, r, dir)
	if err != nil {
		return err
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Saved %s", pathStyle.Render(path)))
	printInfof(ctx.Stdout, "%d dates, grand total %s", len(r.Days()), s.styles.Amount(builder.Format(r.GrandTotal)))
	return nil
}
