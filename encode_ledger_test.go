package oversight

import (
	"bytes"
	"strings"
	"testing"
)

func TestLedgerRoundTrip(t *testing.T) {
	l := newTestLedger(t)
	if _, err := l.MaterializeDue(MustParse("2025-03-01")); err != nil {
		t.Fatalf("MaterializeDue() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() failed: %v", err)
	}

	decoded, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}

	original := make([]Record, 0)
	for rec := range l.Records() {
		original = append(original, rec)
	}
	got := make([]Record, 0)
	for rec := range decoded.Records() {
		got = append(got, rec)
	}
	if len(got) != len(original) {
		t.Fatalf("decoded %d records, want %d", len(got), len(original))
	}
	for i := range original {
		if !original[i].Equal(got[i]) {
			t.Errorf("record %d does not survive the round trip:\n got %+v\nwant %+v", i, got[i], original[i])
		}
	}

	if decoded.Currency() != "USD" {
		t.Errorf("decoded currency = %q, want USD", decoded.Currency())
	}
}

func TestDecodeLedgerAssignsIDs(t *testing.T) {
	input := `{"record":"declare-account","date":"2025-01-01","id":"checking","type":"bank","currency":"USD"}
{"record":"tx","date":"2025-01-05","account":"checking","amount":3000,"currency":"USD","category":"salary"}
{"record":"tx","date":"2025-01-10","account":"checking","amount":-1200,"currency":"USD"}
`
	l, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}

	var ids []string
	for tx := range l.Transactions() {
		ids = append(ids, tx.ID)
	}
	if len(ids) != 2 || ids[0] != "tx-1" || ids[1] != "tx-2" {
		t.Errorf("assigned ids = %v, want [tx-1 tx-2]", ids)
	}
}

func TestDecodeLedgerKeepsExplicitIDs(t *testing.T) {
	input := `{"record":"declare-account","date":"2025-01-01","id":"checking","type":"bank","currency":"USD"}
{"record":"tx","date":"2025-01-05","id":"tx-7","account":"checking","amount":100,"currency":"USD"}
{"record":"tx","date":"2025-01-06","account":"checking","amount":200,"currency":"USD"}
`
	l, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}

	var ids []string
	for tx := range l.Transactions() {
		ids = append(ids, tx.ID)
	}
	// The sequence moves past any explicit id already in the file.
	if len(ids) != 2 || ids[0] != "tx-7" || ids[1] != "tx-8" {
		t.Errorf("ids = %v, want [tx-7 tx-8]", ids)
	}
}

func TestDecodeLedgerRejectsUnknownRecord(t *testing.T) {
	input := `{"record":"declare-wormhole","date":"2025-01-01"}`
	if _, err := DecodeLedger(strings.NewReader(input)); err == nil {
		t.Fatal("DecodeLedger() accepted an unknown record type")
	}
}

func TestDecodeLedgerSkipsEmptyLines(t *testing.T) {
	input := `{"record":"declare-account","date":"2025-01-01","id":"checking","type":"bank","currency":"USD"}

{"record":"tx","date":"2025-01-05","account":"checking","amount":50,"currency":"USD"}
`
	l, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}
	count := 0
	for range l.Records() {
		count++
	}
	if count != 2 {
		t.Errorf("decoded %d records, want 2", count)
	}
}

func TestEncodeRecordOmitsEmptyFields(t *testing.T) {
	rec := NewTx(MustParse("2025-01-05"), "", "checking", M(100, "USD"), "", "")

	var buf bytes.Buffer
	if err := EncodeRecord(&buf, rec); err != nil {
		t.Fatalf("EncodeRecord() failed: %v", err)
	}
	line := buf.String()
	for _, absent := range []string{"memo", "category", "merchant", "schedule", `"id"`} {
		if strings.Contains(line, absent) {
			t.Errorf("encoded line contains %q, want it omitted: %s", absent, line)
		}
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("encoded line does not end with a newline: %q", line)
	}
}
