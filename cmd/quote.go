package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oversight-finance/oversight"
)

// quoteCmd holds the flags for the 'quote' subcommand.
type quoteCmd struct {
	symbol   string
	currency string
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "fetch the spot price of a crypto asset" }
func (*quoteCmd) Usage() string {
	return `ovs quote -s <symbol> [-c <currency>]

  Fetch the current spot price of a crypto asset from Coinbase. Prices
  are cached for a day.

Usage Examples:
$ ovs quote -s BTC
$ ovs quote -s ETH -c EUR

`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "BTC", "Crypto asset symbol")
	f.StringVar(&c.currency, "c", "", "Quote currency. Defaults to the app currency.")
}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.currency == "" {
		c.currency = *defaultCurrency
	}
	price, err := oversight.CryptoSpot(oversight.DailyClient(), c.symbol, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s: %s\n", c.symbol, price)
	return subcommands.ExitSuccess
}
