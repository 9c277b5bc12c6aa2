// Package cmd implements the CLI application to manage a net worth ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/oversight-finance/oversight"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&accountCmd{}, "ledger")
	c.Register(&txCmd{}, "ledger")
	c.Register(&assetCmd{}, "ledger")
	c.Register(&scheduleCmd{}, "ledger")
	c.Register(&applyCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&networthCmd{}, "reports")
	c.Register(&cashflowCmd{}, "reports")
	c.Register(&assetsCmd{}, "reports")
	c.Register(&amortizeCmd{}, "reports")
	c.Register(&projectCmd{}, "reports")
	c.Register(&quoteCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", defaultLedgerFile(), "Path to the ledger file (JSONL format)")
var defaultCurrency = flag.String("currency", "USD", "Currency used for new declarations")

// defaultLedgerFile resolves the ledger path, overridable by environment.
func defaultLedgerFile() string {
	if f := os.Getenv("OVS_LEDGER_FILE"); f != "" {
		return f
	}
	return "ledger.jsonl"
}

// DecodeLedgerFile decodes the ledger from the app ledger file.
// A missing file is not an error, it is an empty ledger.
func DecodeLedgerFile() (*oversight.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting from an empty ledger")
		return oversight.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	ledger, err := oversight.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", *ledgerFile, err)
	}
	return ledger, nil
}

// SaveLedger rewrites the whole ledger file in canonical JSONL form.
func SaveLedger(l *oversight.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("could not create ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return oversight.EncodeLedger(f, l)
}

// AppendRecord appends a single validated record into the app ledger file.
func AppendRecord(rec oversight.Record) subcommands.ExitStatus {
	filename := *ledgerFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := oversight.EncodeRecord(f, rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %s record to %s\n", rec.What(), filename)
	return subcommands.ExitSuccess
}

// parseDateFlag parses a date flag defaulting to today for "".
func parseDateFlag(value string) (oversight.Date, error) {
	if value == "" {
		return oversight.Today(), nil
	}
	return oversight.ParseDate(value)
}
