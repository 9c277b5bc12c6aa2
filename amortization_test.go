package oversight

import (
	"math"
	"testing"
	"time"
)

func TestPaymentZeroRate(t *testing.T) {
	f := &Financing{
		Principal:  M(12000, "USD"),
		TermMonths: 12,
		Start:      NewDate(2025, time.January, 1),
	}
	if got, want := f.Payment(), M(1000, "USD"); !got.Equal(want) {
		t.Errorf("Payment() = %s, want %s", got, want)
	}
}

func TestPaymentAnnuity(t *testing.T) {
	// 10000 at 12% over 12 months: 10000*0.01*1.01^12/(1.01^12-1) = 888.4878...
	f := &Financing{
		Principal:         M(10000, "USD"),
		AnnualRatePercent: 12,
		TermMonths:        12,
		Start:             NewDate(2025, time.January, 1),
	}
	got := f.Payment().AsFloat()
	if math.Abs(got-888.49) > 0.01 {
		t.Errorf("Payment() = %v, want about 888.49", got)
	}
}

func TestPaymentFixedOverride(t *testing.T) {
	f := &Financing{
		Principal:         M(10000, "USD"),
		AnnualRatePercent: 12,
		TermMonths:        12,
		MonthlyPayment:    M(900, "USD"),
	}
	if got, want := f.Payment(), M(900, "USD"); !got.Equal(want) {
		t.Errorf("Payment() = %s, want the fixed %s", got, want)
	}
}

func TestScheduleZeroRate(t *testing.T) {
	f := &Financing{
		Principal:  M(12000, "USD"),
		TermMonths: 12,
		Start:      NewDate(2025, time.January, 1),
	}
	rows := f.Schedule()
	if got, want := len(rows), 12; got != want {
		t.Fatalf("Schedule() has %d rows, want %d", got, want)
	}
	totalPrincipal := M(0, "USD")
	for i, row := range rows {
		if !row.Interest.IsZero() {
			t.Errorf("row %d interest = %s, want zero", i, row.Interest)
		}
		totalPrincipal = totalPrincipal.Add(row.Principal)
	}
	if !totalPrincipal.Equal(M(12000, "USD")) {
		t.Errorf("total principal = %s, want 12000 USD", totalPrincipal)
	}
	if !rows[11].Remaining.IsZero() {
		t.Errorf("final remaining = %s, want zero", rows[11].Remaining)
	}
}

func TestScheduleAmortizes(t *testing.T) {
	f := &Financing{
		Principal:         M(20000, "USD"),
		AnnualRatePercent: 6.5,
		TermMonths:        60,
		Start:             NewDate(2024, time.June, 15),
	}
	rows := f.Schedule()
	if got, want := len(rows), 60; got != want {
		t.Fatalf("Schedule() has %d rows, want %d", got, want)
	}

	totalPrincipal := M(0, "USD")
	previous := f.Principal
	for i, row := range rows {
		if row.Interest.IsNegative() || row.Principal.IsNegative() {
			t.Fatalf("row %d has a negative component: %+v", i, row)
		}
		if !row.Remaining.LessThan(previous) {
			t.Errorf("row %d remaining %s did not decrease from %s", i, row.Remaining, previous)
		}
		previous = row.Remaining
		totalPrincipal = totalPrincipal.Add(row.Principal)
	}
	// The last row absorbs the rounding drift: principal sums back exactly.
	if !totalPrincipal.Equal(M(20000, "USD")) {
		t.Errorf("total principal = %s, want 20000 USD", totalPrincipal)
	}
	if !rows[59].Remaining.IsZero() {
		t.Errorf("final remaining = %s, want zero", rows[59].Remaining)
	}
	// Interest dominates early, principal dominates late.
	if !rows[0].Interest.GreaterThan(rows[59].Interest) {
		t.Errorf("interest did not decline: first %s, last %s", rows[0].Interest, rows[59].Interest)
	}
}

func TestPositionAt(t *testing.T) {
	f := &Financing{
		Principal:  M(12000, "USD"),
		TermMonths: 12,
		Start:      NewDate(2025, time.January, 1),
	}
	tests := []struct {
		asOf          string
		wantMonths    int
		wantRemaining Money
	}{
		{"2024-12-01", 0, M(12000, "USD")}, // before the loan starts
		{"2025-01-15", 0, M(12000, "USD")}, // partial first month
		{"2025-07-01", 6, M(6000, "USD")},
		{"2026-01-01", 12, M(0, "USD")},
		{"2030-01-01", 12, M(0, "USD")}, // long after the term
	}
	for _, tt := range tests {
		pos := f.PositionAt(MustParse(tt.asOf))
		if pos.MonthsPaid != tt.wantMonths {
			t.Errorf("PositionAt(%s).MonthsPaid = %d, want %d", tt.asOf, pos.MonthsPaid, tt.wantMonths)
		}
		if !pos.RemainingBalance.Equal(tt.wantRemaining) {
			t.Errorf("PositionAt(%s).RemainingBalance = %s, want %s", tt.asOf, pos.RemainingBalance, tt.wantRemaining)
		}
	}
}

func TestPositionAtMissingFinancing(t *testing.T) {
	var f *Financing
	pos := f.PositionAt(MustParse("2025-06-01"))
	if pos.MonthsPaid != 0 || !pos.TotalPaid.IsZero() || !pos.RemainingBalance.IsZero() {
		t.Errorf("nil financing position = %+v, want all zero", pos)
	}

	// Incomplete terms: the full principal remains, nothing is paid.
	incomplete := &Financing{Principal: M(5000, "USD")}
	pos = incomplete.PositionAt(MustParse("2025-06-01"))
	if pos.MonthsPaid != 0 || !pos.TotalPaid.IsZero() {
		t.Errorf("incomplete financing position = %+v, want zero payments", pos)
	}
	if !pos.RemainingBalance.Equal(M(5000, "USD")) {
		t.Errorf("incomplete financing remaining = %s, want the full 5000 USD", pos.RemainingBalance)
	}
}
