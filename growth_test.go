package oversight

import (
	"testing"
	"time"
)

func TestGrowthCompounding(t *testing.T) {
	// 1000 at 12% a year compounds at 1% a month.
	points := Growth(M(1000, "USD"), 12, 12, NewDate(2025, time.January, 15))

	if got, want := len(points), 13; got != want {
		t.Fatalf("Growth() returned %d points, want %d", got, want)
	}
	if got, want := points[0].Month, "2025-01"; got != want {
		t.Errorf("first month = %q, want %q", got, want)
	}
	if got, want := points[12].Month, "2026-01"; got != want {
		t.Errorf("last month = %q, want %q", got, want)
	}
	if got, want := points[0].Value, M(1000, "USD"); !got.Equal(want) {
		t.Errorf("first value = %s, want %s", got, want)
	}
	// 1000 * 1.01^12 = 1126.825... rounds to 1126.83
	if got, want := points[12].Value, M(1126.83, "USD"); !got.Equal(want) {
		t.Errorf("last value = %s, want %s", got, want)
	}

	// A positive rate must grow every month.
	for i := 1; i < len(points); i++ {
		if !points[i].Value.GreaterThan(points[i-1].Value) {
			t.Errorf("point %d (%s) did not grow over point %d (%s)",
				i, points[i].Value, i-1, points[i-1].Value)
		}
	}
}

func TestGrowthDecay(t *testing.T) {
	points := Growth(M(25000, "USD"), -15, 24, NewDate(2024, time.June, 1))
	if got, want := len(points), 25; got != want {
		t.Fatalf("Growth() returned %d points, want %d", got, want)
	}
	for i := 1; i < len(points); i++ {
		if !points[i].Value.LessThan(points[i-1].Value) {
			t.Errorf("point %d (%s) did not decay under point %d (%s)",
				i, points[i].Value, i-1, points[i-1].Value)
		}
	}
	if points[24].Value.IsNegative() {
		t.Errorf("decay went negative: %s", points[24].Value)
	}
}

func TestGrowthZeroRate(t *testing.T) {
	points := Growth(M(500, "EUR"), 0, 6, NewDate(2025, time.January, 1))
	for i, p := range points {
		if !p.Value.Equal(M(500, "EUR")) {
			t.Errorf("point %d = %s, want 500 EUR", i, p.Value)
		}
	}
}

func TestGrowthNegativeMonths(t *testing.T) {
	points := Growth(M(100, "USD"), 5, -3, NewDate(2025, time.January, 1))
	if got, want := len(points), 1; got != want {
		t.Fatalf("Growth() with negative months returned %d points, want %d", got, want)
	}
}

func TestGrowthAt(t *testing.T) {
	initial := M(1000, "USD")
	if got := GrowthAt(initial, 12, 0); !got.Equal(M(1000, "USD")) {
		t.Errorf("GrowthAt(0 months) = %s, want 1000 USD", got)
	}
	if got := GrowthAt(initial, 12, 12); !got.Equal(M(1126.83, "USD")) {
		t.Errorf("GrowthAt(12 months) = %s, want 1126.83 USD", got)
	}
	// GrowthAt must agree with the matching Growth curve point.
	points := Growth(initial, 7.5, 18, NewDate(2025, time.January, 1))
	if got, want := GrowthAt(initial, 7.5, 18), points[18].Value; !got.Equal(want) {
		t.Errorf("GrowthAt(18 months) = %s, but curve says %s", got, want)
	}
}
