package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oversight-finance/oversight"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	account  string
	amount   float64
	category string
	merchant string
	date     string
	memo     string
	del      string
	list     bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record a transaction on an account" }
func (*txCmd) Usage() string {
	return `ovs tx -a <account> -q <amount> [-cat <category>] [-mer <merchant>] [-d <date>]

  Record a transaction. Positive amounts are inflows (income, deposits),
  negative amounts are outflows (expenses, payments). Account balances
  are always recomputed from the transaction history.

Usage Examples:
# Record a salary payment.
$ ovs tx -a checking -q 3200 -cat salary -mer "ACME Corp"

# Record the rent.
$ ovs tx -a checking -q -1200 -cat housing -mer "Landlord & Co" -d 2025-11-01

# List recorded transactions.
$ ovs tx -list

# Delete a transaction by its identifier.
$ ovs tx -delete tx-12

`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account the transaction applies to")
	f.Float64Var(&c.amount, "q", 0, "Signed amount, positive for inflows, negative for outflows")
	f.StringVar(&c.category, "cat", "", "Optional spending or income category")
	f.StringVar(&c.merchant, "mer", "", "Optional merchant or counterparty")
	f.StringVar(&c.date, "d", "", "Transaction date. See the user manual for supported date formats.")
	f.StringVar(&c.memo, "m", "", "Optional memo")
	f.StringVar(&c.del, "delete", "", "Delete the transaction with this identifier")
	f.BoolVar(&c.list, "list", false, "List all recorded transactions")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.list {
		for tx := range ledger.Transactions() {
			fmt.Printf("%-8s %s %-12s %12s  %s %s\n", tx.ID, tx.When(), tx.Account, tx.Amount.SignedString(), tx.Category, tx.Merchant)
		}
		return subcommands.ExitSuccess
	}

	if c.del != "" {
		if err := ledger.DeleteTransaction(c.del); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := SaveLedger(ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted transaction %s\n", c.del)
		return subcommands.ExitSuccess
	}

	day, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	// The transaction currency is resolved from the account during validation.
	rec := oversight.NewTx(day, c.memo, c.account, oversight.M(c.amount, ""), c.category, c.merchant)
	validated, err := ledger.Validate(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return AppendRecord(validated)
}
