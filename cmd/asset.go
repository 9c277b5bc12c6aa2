package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oversight-finance/oversight"
)

// assetCmd holds the flags for the 'asset' subcommand.
type assetCmd struct {
	id       string
	name     string
	kind     string
	purchase string
	price    float64
	rate     float64
	date     string
	memo     string

	loan        float64
	loanRate    float64
	loanTerm    int
	loanStart   string
	loanPayment float64
}

func (*assetCmd) Name() string     { return "asset" }
func (*assetCmd) Synopsis() string { return "declare an owned asset, optionally financed" }
func (*assetCmd) Usage() string {
	return `ovs asset -id <id> -p <purchase-date> -price <amount> [-r <rate>] [loan flags]

  Declare an asset such as a vehicle or real estate. The asset value is
  projected from its purchase price at the given annual rate, compounded
  monthly. A negative rate models depreciation. When the asset is
  financed, the outstanding loan balance is deducted from its value.

Usage Examples:
# A car bought for 25000, depreciating 15% a year, financed over 5 years.
$ ovs asset -id car -n "Family Car" -k vehicle -p 2024-06-15 -price 25000 -r -15 \
    -loan 20000 -loan-rate 6.5 -loan-term 60

# A flat appreciating 3% a year, fully paid.
$ ovs asset -id flat -n "City Flat" -k real-estate -p 2020-01-10 -price 280000 -r 3

`
}

func (c *assetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Asset identifier")
	f.StringVar(&c.name, "n", "", "Human friendly asset name. Defaults to the identifier.")
	f.StringVar(&c.kind, "k", "generic", "Asset kind (generic, vehicle, real-estate)")
	f.StringVar(&c.purchase, "p", "", "Purchase date")
	f.Float64Var(&c.price, "price", 0, "Purchase price")
	f.Float64Var(&c.rate, "r", 0, "Annual appreciation rate in percent, negative to depreciate")
	f.StringVar(&c.date, "d", "", "Declaration date. Defaults to today.")
	f.StringVar(&c.memo, "m", "", "Optional memo")

	f.Float64Var(&c.loan, "loan", 0, "Financed principal. Zero means the asset is not financed.")
	f.Float64Var(&c.loanRate, "loan-rate", 0, "Loan annual interest rate in percent")
	f.IntVar(&c.loanTerm, "loan-term", 0, "Loan term in months")
	f.StringVar(&c.loanStart, "loan-start", "", "Loan start date. Defaults to the purchase date.")
	f.Float64Var(&c.loanPayment, "loan-payment", 0, "Fixed monthly payment, overrides the computed annuity")
}

func (c *assetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	kind, err := oversight.ParseAssetKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var purchase oversight.Date
	if c.purchase != "" {
		purchase, err = oversight.ParseDate(c.purchase)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid purchase date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	cur := *defaultCurrency
	var financing *oversight.Financing
	if c.loan > 0 {
		financing = &oversight.Financing{
			Principal:         oversight.M(c.loan, cur),
			AnnualRatePercent: c.loanRate,
			TermMonths:        c.loanTerm,
		}
		if c.loanStart != "" {
			financing.Start, err = oversight.ParseDate(c.loanStart)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid loan start date: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		if c.loanPayment > 0 {
			financing.MonthlyPayment = oversight.M(c.loanPayment, cur)
		}
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := oversight.NewDeclareAsset(day, c.memo, c.id, c.name, kind, purchase, oversight.M(c.price, cur), c.rate, financing)
	validated, err := ledger.Validate(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return AppendRecord(validated)
}
