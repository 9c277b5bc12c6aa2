// Command ovs is the net worth ledger CLI.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/oversight-finance/oversight/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion. Complete() is a no-op outside a completion request.
	completion().Complete("ovs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	ranges := predict.Set{"1M", "3M", "6M", "1Y", "2Y", "ALL"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"currency":    predict.Set{"USD", "EUR", "GBP", "CHF"},
		},
		Sub: map[string]*complete.Command{
			"account": {Flags: map[string]complete.Predictor{
				"t": predict.Set{"bank", "crypto", "investment", "credit", "loan"},
			}},
			"tx":       {},
			"asset":    {Flags: map[string]complete.Predictor{"k": predict.Set{"generic", "vehicle", "real-estate"}}},
			"schedule": {Flags: map[string]complete.Predictor{"f": predict.Set{"daily", "weekly", "biweekly", "monthly", "quarterly", "annually"}}},
			"apply":    {},
			"fmt":      {},
			"networth": {Flags: map[string]complete.Predictor{"r": ranges}},
			"cashflow": {},
			"assets":   {},
			"amortize": {},
			"project":  {},
			"quote":    {},
			"topic":    {},
			"assist":   {},
		},
	}
}
