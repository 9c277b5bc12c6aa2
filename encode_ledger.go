package oversight

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// amountRec is a specialized struct to read a money amount spread over two
// top-level fields of a ledger line.
type amountRec struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountRec) Money() Money {
	return M(a.Amount, a.Currency)
}

// DecodeLedger reads records from a stream of JSONL data, decodes each line
// into the appropriate record struct, and returns a sorted, validated Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		var decoded Record

		switch identifier.Record {
		case RecAccount:
			var temp struct {
				baseRec
				ID       string      `json:"id"`
				Name     string      `json:"name"`
				Type     AccountType `json:"type"`
				Currency string      `json:"currency"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decoded = DeclareAccount{
				baseRec:  temp.baseRec,
				ID:       temp.ID,
				Name:     temp.Name,
				Type:     temp.Type,
				Currency: temp.Currency,
			}
		case RecAsset:
			var temp struct {
				baseRec
				ID                string     `json:"id"`
				Name              string     `json:"name"`
				Kind              AssetKind  `json:"kind"`
				PurchaseDate      Date       `json:"purchaseDate"`
				PurchasePrice     Money      `json:"purchasePrice"`
				AnnualRatePercent float64    `json:"annualRatePercent"`
				Financing         *Financing `json:"financing"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decoded = DeclareAsset{
				baseRec:           temp.baseRec,
				ID:                temp.ID,
				Name:              temp.Name,
				Kind:              temp.Kind,
				PurchaseDate:      temp.PurchaseDate,
				PurchasePrice:     temp.PurchasePrice,
				AnnualRatePercent: temp.AnnualRatePercent,
				Financing:         temp.Financing,
			}
		case RecSchedule:
			var temp struct {
				baseRec
				amountRec
				ID        string `json:"id"`
				Account   string `json:"account"`
				Frequency string `json:"frequency"`
				Start     Date   `json:"start"`
				End       Date   `json:"end"`
				Category  string `json:"category"`
				Merchant  string `json:"merchant"`
				LastRun   Date   `json:"lastRun"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			freq, err := ParseFrequency(temp.Frequency)
			if err != nil {
				return nil, fmt.Errorf("in schedule %q: %w", temp.ID, err)
			}
			decoded = DeclareSchedule{
				baseRec:  temp.baseRec,
				ID:       temp.ID,
				Account:  temp.Account,
				Freq:     freq,
				Start:    temp.Start,
				End:      temp.End,
				Merchant: temp.Merchant,
				Category: temp.Category,
				Amount:   temp.Money(),
				LastRun:  temp.LastRun,
			}
		case RecTx:
			var temp struct {
				baseRec
				amountRec
				ID       string `json:"id"`
				Account  string `json:"account"`
				Category string `json:"category"`
				Merchant string `json:"merchant"`
				Schedule string `json:"schedule"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decoded = Tx{
				baseRec:  temp.baseRec,
				ID:       temp.ID,
				Account:  temp.Account,
				Amount:   temp.Money(),
				Category: temp.Category,
				Merchant: temp.Merchant,
				Schedule: temp.Schedule,
			}
		default:
			return nil, fmt.Errorf("unknown record type: %q", identifier.Record)
		}

		if err := ledger.Append(decoded); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	// Perform a stable sort on the ledger based on the record date.
	ledger.stableSort()

	return ledger, nil
}

// EncodeRecord marshals a single record to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeRecord(w io.Writer, rec Record) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	// Write the JSON data followed by a newline to create the JSONL format.
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeLedger reorders records by date and persists them to an io.Writer in
// JSONL format. The sort is stable, meaning records on the same day maintain
// their original relative order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true

	// Perform a stable sort on the ledger based on the record date to ensure order.
	ledger.stableSort()

	for _, rec := range ledger.records {
		if err := EncodeRecord(w, rec); err != nil {
			return err
		}
	}

	return nil
}
