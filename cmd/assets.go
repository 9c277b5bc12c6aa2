package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oversight-finance/oversight"
	"github.com/oversight-finance/oversight/renderer"
)

// assetsCmd holds the flags for the 'assets' subcommand.
type assetsCmd struct {
	date string
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "report the value and equity of declared assets" }
func (*assetsCmd) Usage() string {
	return `ovs assets [-d <date>]

  Report every declared asset with its projected value, appreciation
  since purchase, outstanding loan balance and equity. Assets with a
  missing purchase date or price are listed apart with the reason they
  are excluded.

`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report date. Defaults to today.")
}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := oversight.NewAssetsReport(ledger, day)
	printMarkdown(renderer.AssetsMarkdown(report))
	return subcommands.ExitSuccess
}
