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

// cashflowCmd holds the flags for the 'cashflow' subcommand.
type cashflowCmd struct {
	start string
	end   string
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "report income and spending over a period" }
func (*cashflowCmd) Usage() string {
	return `ovs cashflow [-start <date>] [-end <date>]

  Report income, expenses and the net flow over a period, with expenses
  broken down by category. The period defaults to the current calendar
  month.

Usage Examples:
# This month's cashflow.
$ ovs cashflow

# Last November.
$ ovs cashflow -start 2025-11-01 -end 2025-11-30

`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "", "Period start. Defaults to the first day of the current month.")
	f.StringVar(&c.end, "end", "", "Period end. Defaults to the last day of the current month.")
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today := oversight.Today()
	start, end := today.StartOfMonth(), today.EndOfMonth()
	var err error
	if c.start != "" {
		start, err = oversight.ParseDate(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.end != "" {
		end, err = oversight.ParseDate(c.end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid end date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if end.Before(start) {
		fmt.Fprintln(os.Stderr, "Error: the period end is before its start")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := oversight.NewCashflowReport(ledger, oversight.NewRange(start, end))
	printMarkdown(renderer.CashflowMarkdown(report))
	return subcommands.ExitSuccess
}
