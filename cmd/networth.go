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

// networthCmd holds the flags for the 'networth' subcommand.
type networthCmd struct {
	rang string
	date string
}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "report the current net worth and its history" }
func (*networthCmd) Usage() string {
	return `ovs networth [-r <range>] [-d <date>]

  Report the net worth (account balances plus asset equity) and its
  monthly history over the selected range. The range is one of
  1M, 3M, 6M, 1Y, 2Y or ALL.

Usage Examples:
# Net worth over the last year.
$ ovs networth

# Full history.
$ ovs networth -r ALL

`
}

func (c *networthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rang, "r", "1Y", "History range (1M, 3M, 6M, 1Y, 2Y, ALL)")
	f.StringVar(&c.date, "d", "", "Report date. Defaults to today.")
}

func (c *networthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	tr, err := oversight.ParseTimeRange(c.rang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := oversight.NewNetWorthReport(ledger, tr, day)
	printMarkdown(renderer.NetWorthMarkdown(report))
	return subcommands.ExitSuccess
}
