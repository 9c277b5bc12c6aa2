package oversight

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestValueAt(t *testing.T) {
	a := Asset{
		ID:                "car",
		PurchaseDate:      NewDate(2024, time.June, 15),
		PurchasePrice:     M(25000, "USD"),
		AnnualRatePercent: -15,
	}

	// Before the purchase the asset contributes nothing.
	if got := a.ValueAt(NewDate(2024, time.June, 14)); !got.IsZero() {
		t.Errorf("ValueAt before purchase = %s, want zero", got)
	}
	// On the purchase date it is worth its price.
	if got := a.ValueAt(NewDate(2024, time.June, 15)); !got.Equal(M(25000, "USD")) {
		t.Errorf("ValueAt on purchase = %s, want 25000 USD", got)
	}
	// A year later it has depreciated.
	later := a.ValueAt(NewDate(2025, time.June, 15))
	if !later.LessThan(M(25000, "USD")) || !later.IsPositive() {
		t.Errorf("ValueAt a year later = %s, want between 0 and 25000", later)
	}
}

func TestEquityAt(t *testing.T) {
	a := Asset{
		ID:            "flat",
		PurchaseDate:  NewDate(2025, time.January, 1),
		PurchasePrice: M(200000, "USD"),
		Financing: &Financing{
			Principal:  M(120000, "USD"),
			TermMonths: 120,
			Start:      NewDate(2025, time.January, 1),
		},
	}

	// On purchase: value 200000, loan 120000.
	if got, want := a.EquityAt(NewDate(2025, time.January, 1)), M(80000, "USD"); !got.Equal(want) {
		t.Errorf("EquityAt on purchase = %s, want %s", got, want)
	}
	// A zero-rate loan repays 1000 a month, so equity grows with every payment.
	if got, want := a.EquityAt(NewDate(2025, time.July, 1)), M(86000, "USD"); !got.Equal(want) {
		t.Errorf("EquityAt after 6 months = %s, want %s", got, want)
	}
	// Unfinanced equity is simply the value.
	b := Asset{ID: "gold", PurchaseDate: NewDate(2025, time.January, 1), PurchasePrice: M(5000, "USD")}
	if got, want := b.EquityAt(NewDate(2025, time.July, 1)), M(5000, "USD"); !got.Equal(want) {
		t.Errorf("unfinanced EquityAt = %s, want %s", got, want)
	}
}

func TestCheckAssets(t *testing.T) {
	assets := []Asset{
		{ID: "ok", PurchaseDate: NewDate(2025, time.January, 1), PurchasePrice: M(100, "USD")},
		{ID: "no-date", PurchasePrice: M(100, "USD")},
		{ID: "no-price", PurchaseDate: NewDate(2025, time.January, 1)},
		{ID: "negative", PurchaseDate: NewDate(2025, time.January, 1), PurchasePrice: M(-5, "USD")},
	}

	valid, excluded := CheckAssets(assets)

	if len(valid) != 1 || valid[0].ID != "ok" {
		t.Fatalf("valid = %v, want only %q", valid, "ok")
	}
	want := []AssetExclusion{
		{AssetID: "no-date", Reason: "missing purchase date"},
		{AssetID: "no-price", Reason: "missing or non-positive purchase price"},
		{AssetID: "negative", Reason: "missing or non-positive purchase price"},
	}
	if diff := cmp.Diff(want, excluded); diff != "" {
		t.Errorf("excluded assets mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAssetKind(t *testing.T) {
	tests := []struct {
		input string
		want  AssetKind
		err   bool
	}{
		{"generic", Generic, false},
		{"vehicle", Vehicle, false},
		{"real-estate", RealEstate, false},
		{"boat", Generic, true},
	}
	for _, tt := range tests {
		got, err := ParseAssetKind(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParseAssetKind(%q) error = %v, want error %v", tt.input, err, tt.err)
			continue
		}
		if !tt.err && got != tt.want {
			t.Errorf("ParseAssetKind(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
