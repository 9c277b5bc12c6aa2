package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// applyCmd holds the flags for the 'apply' subcommand.
type applyCmd struct {
	date string
}

func (*applyCmd) Name() string     { return "apply" }
func (*applyCmd) Synopsis() string { return "materialize due recurring transactions" }
func (*applyCmd) Usage() string {
	return `ovs apply [-d <date>]

  Scan all active schedules and post a transaction for every occurrence
  due up to the given date (today by default). Running apply twice is
  harmless, already posted occurrences are skipped.

Usage Examples:
# Post everything due so far.
$ ovs apply

`
}

func (c *applyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Materialize occurrences due up to this date. Defaults to today.")
}

func (c *applyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	created, err := ledger.MaterializeDue(day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(created) == 0 {
		fmt.Println("Nothing due, the ledger is up to date.")
		return subcommands.ExitSuccess
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, tx := range created {
		fmt.Printf("Posted %-8s %s %-12s %12s  (schedule %s)\n", tx.ID, tx.When(), tx.Account, tx.Amount.SignedString(), tx.Schedule)
	}
	fmt.Printf("Posted %d transaction(s).\n", len(created))
	return subcommands.ExitSuccess
}
