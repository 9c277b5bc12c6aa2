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

// amortizeCmd holds the flags for the 'amortize' subcommand.
type amortizeCmd struct {
	asset string
	plan  bool
	date  string
}

func (*amortizeCmd) Name() string     { return "amortize" }
func (*amortizeCmd) Synopsis() string { return "report the loan position of a financed asset" }
func (*amortizeCmd) Usage() string {
	return `ovs amortize -a <asset> [-plan] [-d <date>]

  Report the loan position of a financed asset: months paid, principal
  and interest paid so far, and the remaining balance. With -plan, print
  the full month by month payment schedule instead.

Usage Examples:
# Where does the car loan stand today?
$ ovs amortize -a car

# The full payment plan.
$ ovs amortize -a car -plan

`
}

func (c *amortizeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "Asset identifier")
	f.BoolVar(&c.plan, "plan", false, "Print the full payment schedule")
	f.StringVar(&c.date, "d", "", "Position date. Defaults to today.")
}

func (c *amortizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.plan {
		asset, rows, err := oversight.LoanSchedule(ledger, c.asset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.LoanScheduleMarkdown(asset, rows))
		return subcommands.ExitSuccess
	}

	asset, ok := ledger.Asset(c.asset)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: asset %q not found\n", c.asset)
		return subcommands.ExitFailure
	}
	pos := asset.Financing.PositionAt(day)
	printMarkdown(renderer.LoanPositionMarkdown(asset, day, pos))
	return subcommands.ExitSuccess
}
