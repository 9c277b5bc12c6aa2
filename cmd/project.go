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

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	initial float64
	rate    float64
	months  int
	start   string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project a value with monthly compounding" }
func (*projectCmd) Usage() string {
	return `ovs project -q <value> -r <rate> -months <n> [-start <date>]

  Project a value forward, compounding the annual rate monthly. A
  negative rate projects a decay. The output lists one point per month,
  starting at the initial value.

Usage Examples:
# 10000 at 5% a year over 2 years.
$ ovs project -q 10000 -r 5 -months 24

# A car losing 15% a year.
$ ovs project -q 25000 -r -15 -months 36

`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.initial, "q", 0, "Initial value")
	f.Float64Var(&c.rate, "r", 0, "Annual rate in percent, negative for decay")
	f.IntVar(&c.months, "months", 12, "Number of months to project")
	f.StringVar(&c.start, "start", "", "First month of the projection. Defaults to today.")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := parseDateFlag(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	initial := oversight.M(c.initial, *defaultCurrency)
	points := oversight.Growth(initial, c.rate, c.months, start)
	title := fmt.Sprintf("Projection of %s at %s over %d months", initial, oversight.Percent(c.rate).SignedString(), c.months)
	printMarkdown(renderer.GrowthMarkdown(title, points))
	return subcommands.ExitSuccess
}
