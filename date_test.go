package oversight

import (
	"fmt"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	today := Today()
	currentYear := today.Year()
	currentMonth := today.Month()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		// Standard ISO Format (Fallback)
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},

		// Relative Duration Format
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"1d", Date{}, true},
		{"-0d", today, false},
		{"-2w", today.Add(-14), false},
		{"+1m", today.AddMonth(1), false},
		{"+1y", NewDate(currentYear+1, currentMonth, today.Day()), false},

		// [MM-]DD Format
		{"27", NewDate(currentYear, currentMonth, 27), false},
		{fmt.Sprintf("%d-27", currentMonth), NewDate(currentYear, currentMonth, 27), false},
		{"0", NewDate(currentYear, currentMonth, 0), false}, // Last day of previous month
		{"1-15", NewDate(currentYear, time.January, 15), false},
		{"0-15", NewDate(currentYear-1, time.December, 15), false},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if tt.err {
			if err == nil {
				t.Errorf("ParseDate(%q) expected an error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2024-01-15", "2024-01-15", 0},
		{"2024-01-15", "2024-02-14", 0}, // a partial month does not count
		{"2024-01-15", "2024-02-15", 1},
		{"2024-01-31", "2024-02-29", 0},
		{"2024-01-15", "2025-01-15", 12},
		{"2024-01-15", "2026-03-20", 26},
		{"2024-02-15", "2024-01-15", -1},
	}
	for _, tt := range tests {
		got := MonthsBetween(MustParse(tt.from), MustParse(tt.to))
		if got != tt.want {
			t.Errorf("MonthsBetween(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestMonthKey(t *testing.T) {
	d := NewDate(2025, time.March, 7)
	if got, want := d.MonthKey(), "2025-03"; got != want {
		t.Errorf("MonthKey() = %q, want %q", got, want)
	}
}

func TestMonthBoundaries(t *testing.T) {
	d := NewDate(2024, time.February, 10)
	if got, want := d.StartOfMonth(), NewDate(2024, time.February, 1); got != want {
		t.Errorf("StartOfMonth() = %v, want %v", got, want)
	}
	if got, want := d.EndOfMonth(), NewDate(2024, time.February, 29); got != want {
		t.Errorf("EndOfMonth() = %v, want %v", got, want)
	}
	if !d.SameMonth(NewDate(2024, time.February, 29)) {
		t.Errorf("SameMonth() = false, want true")
	}
	if d.SameMonth(NewDate(2025, time.February, 10)) {
		t.Errorf("SameMonth() across years = true, want false")
	}
}

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		input string
		want  TimeRange
		err   bool
	}{
		{"1M", LastMonth, false},
		{"3m", LastQuarter, false},
		{"6M", LastHalf, false},
		{"1Y", LastYear, false},
		{"2y", LastTwoYears, false},
		{"all", AllTime, false},
		{"5Y", AllTime, true},
	}
	for _, tt := range tests {
		got, err := ParseTimeRange(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParseTimeRange(%q) error = %v, want error %v", tt.input, err, tt.err)
			continue
		}
		if !tt.err && got != tt.want {
			t.Errorf("ParseTimeRange(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFrequencyNext(t *testing.T) {
	on := NewDate(2025, time.January, 31)
	tests := []struct {
		freq Frequency
		want Date
	}{
		{Daily, NewDate(2025, time.February, 1)},
		{Weekly, NewDate(2025, time.February, 7)},
		{Biweekly, NewDate(2025, time.February, 14)},
		{Monthly, NewDate(2025, time.March, 3)}, // Jan 31 + 1 month normalizes past February
		{Quarterly, NewDate(2025, time.May, 1)},
		{Annually, NewDate(2026, time.January, 31)},
	}
	for _, tt := range tests {
		if got := tt.freq.Next(on); got != tt.want {
			t.Errorf("%s.Next(%s) = %v, want %v", tt.freq, on, got, tt.want)
		}
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(MustParse("2025-01-01"), MustParse("2025-01-31"))
	for _, d := range []string{"2025-01-01", "2025-01-15", "2025-01-31"} {
		if !r.Contains(MustParse(d)) {
			t.Errorf("Contains(%s) = false, want true", d)
		}
	}
	for _, d := range []string{"2024-12-31", "2025-02-01"} {
		if r.Contains(MustParse(d)) {
			t.Errorf("Contains(%s) = true, want false", d)
		}
	}
	// swapped bounds are normalized
	swapped := NewRange(MustParse("2025-01-31"), MustParse("2025-01-01"))
	if swapped != r {
		t.Errorf("NewRange with swapped bounds = %v, want %v", swapped, r)
	}
}
