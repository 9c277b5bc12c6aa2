package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oversight-finance/oversight"
)

// accountCmd holds the flags for the 'account' subcommand.
type accountCmd struct {
	id       string
	name     string
	typ      string
	currency string
	date     string
	memo     string
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "declare a new account" }
func (*accountCmd) Usage() string {
	return `ovs account -id <id> [-n <name>] [-t <type>] [-c <currency>]

  Declare an account. The type is one of bank, crypto, investment, credit
  or loan. The account balance is always derived from its transactions.

Usage Examples:
# Declare a checking account.
$ ovs account -id checking -n "Main Checking" -t bank

`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account identifier, referenced by transactions")
	f.StringVar(&c.name, "n", "", "Human friendly account name. Defaults to the identifier.")
	f.StringVar(&c.typ, "t", "bank", "Account type (bank, crypto, investment, credit, loan)")
	f.StringVar(&c.currency, "c", "", "Account currency. Defaults to the app currency.")
	f.StringVar(&c.date, "d", "", "Declaration date. See the user manual for supported date formats.")
	f.StringVar(&c.memo, "m", "", "Optional memo for the declaration")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	typ, err := oversight.ParseAccountType(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.currency == "" {
		c.currency = *defaultCurrency
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := oversight.NewDeclareAccount(day, c.memo, c.id, c.name, typ, c.currency)
	validated, err := ledger.Validate(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return AppendRecord(validated)
}
