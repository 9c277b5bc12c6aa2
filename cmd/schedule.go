package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oversight-finance/oversight"
)

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	id       string
	account  string
	freq     string
	start    string
	end      string
	amount   float64
	category string
	merchant string
	date     string
	memo     string

	stop string
	del  bool
	list bool
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "declare a recurring transaction schedule" }
func (*scheduleCmd) Usage() string {
	return `ovs schedule -id <id> -a <account> -q <amount> -f <frequency> -start <date> [-end <date>]

  Declare a recurring schedule. The frequency is one of daily, weekly,
  biweekly, monthly, quarterly or annually. Schedules do not post
  transactions by themselves, run 'ovs apply' to materialize the due
  occurrences.

Usage Examples:
# Monthly rent.
$ ovs schedule -id rent -a checking -q -1200 -f monthly -start 2025-01-01 -cat housing

# Stop a schedule after a given date.
$ ovs schedule -id rent -stop 2026-06-30

# Delete a schedule. Already materialized transactions are kept.
$ ovs schedule -id rent -delete

`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Schedule identifier")
	f.StringVar(&c.account, "a", "", "Account the occurrences apply to")
	f.StringVar(&c.freq, "f", "monthly", "Frequency (daily, weekly, biweekly, monthly, quarterly, annually)")
	f.StringVar(&c.start, "start", "", "First occurrence date")
	f.StringVar(&c.end, "end", "", "Optional last date the schedule is active")
	f.Float64Var(&c.amount, "q", 0, "Signed amount of each occurrence")
	f.StringVar(&c.category, "cat", "", "Optional category stamped on each occurrence")
	f.StringVar(&c.merchant, "mer", "", "Optional merchant stamped on each occurrence")
	f.StringVar(&c.date, "d", "", "Declaration date. Defaults to today.")
	f.StringVar(&c.memo, "m", "", "Optional memo")

	f.StringVar(&c.stop, "stop", "", "End the schedule with the given identifier after this date")
	f.BoolVar(&c.del, "delete", false, "Delete the schedule with the given identifier")
	f.BoolVar(&c.list, "list", false, "List declared schedules")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.list {
		for s := range ledger.Schedules() {
			end := "-"
			if !s.End.IsZero() {
				end = s.End.String()
			}
			fmt.Printf("%-12s %-12s %-10s %12s  from %s until %s\n", s.ID, s.Account, s.Freq, s.Amount.SignedString(), s.Start, end)
		}
		return subcommands.ExitSuccess
	}

	if c.stop != "" {
		end, err := oversight.ParseDate(c.stop)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := ledger.EndSchedule(c.id, end); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := SaveLedger(ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Schedule %s ends on %s\n", c.id, end)
		return subcommands.ExitSuccess
	}

	if c.del {
		if err := ledger.DeleteSchedule(c.id); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := SaveLedger(ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted schedule %s\n", c.id)
		return subcommands.ExitSuccess
	}

	day, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	freq, err := oversight.ParseFrequency(c.freq)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var start, end oversight.Date
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

	rec := oversight.NewDeclareSchedule(day, c.memo, c.id, c.account, freq, start, end, oversight.M(c.amount, ""), c.category, c.merchant)
	validated, err := ledger.Validate(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return AppendRecord(validated)
}
