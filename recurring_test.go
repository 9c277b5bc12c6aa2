package oversight

import (
	"testing"
	"time"
)

func TestDueDates(t *testing.T) {
	s := RecurringSchedule{
		ID:      "rent",
		Account: "checking",
		Freq:    Monthly,
		Start:   NewDate(2025, time.January, 1),
		Amount:  M(-1200, "USD"),
	}

	tests := []struct {
		name    string
		sched   RecurringSchedule
		until   string
		want    []string
		wantNil bool
	}{
		{
			name:  "three months due",
			sched: s,
			until: "2025-03-15",
			want:  []string{"2025-01-01", "2025-02-01", "2025-03-01"},
		},
		{
			name:    "before the start nothing is due",
			sched:   s,
			until:   "2024-12-31",
			wantNil: true,
		},
		{
			name: "last run skips already materialized dates",
			sched: func() RecurringSchedule {
				c := s
				c.LastRun = NewDate(2025, time.February, 1)
				return c
			}(),
			until: "2025-04-15",
			want:  []string{"2025-03-01", "2025-04-01"},
		},
		{
			name: "end date caps the dues",
			sched: func() RecurringSchedule {
				c := s
				c.End = NewDate(2025, time.February, 15)
				return c
			}(),
			until: "2025-12-31",
			want:  []string{"2025-01-01", "2025-02-01"},
		},
		{
			name:    "no start means nothing due",
			sched:   RecurringSchedule{ID: "empty", Freq: Monthly},
			until:   "2025-12-31",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sched.DueDates(MustParse(tt.until))
			if tt.wantNil {
				if len(got) != 0 {
					t.Fatalf("DueDates() = %v, want none", got)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("DueDates() = %v, want %v", got, tt.want)
			}
			for i, d := range got {
				if d.String() != tt.want[i] {
					t.Errorf("due %d = %s, want %s", i, d, tt.want[i])
				}
			}
		})
	}
}

func TestDueDatesBiweekly(t *testing.T) {
	s := RecurringSchedule{
		ID:     "paycheck",
		Freq:   Biweekly,
		Start:  NewDate(2025, time.January, 3),
		Amount: M(1500, "USD"),
	}
	got := s.DueDates(NewDate(2025, time.February, 1))
	want := []string{"2025-01-03", "2025-01-17", "2025-01-31"}
	if len(got) != len(want) {
		t.Fatalf("DueDates() = %v, want %v", got, want)
	}
	for i, d := range got {
		if d.String() != want[i] {
			t.Errorf("due %d = %s, want %s", i, d, want[i])
		}
	}
}

func TestActive(t *testing.T) {
	open := RecurringSchedule{Start: NewDate(2025, time.January, 1)}
	if !open.Active(NewDate(2030, time.January, 1)) {
		t.Error("open-ended schedule should always be active")
	}
	closed := open
	closed.End = NewDate(2025, time.June, 30)
	if !closed.Active(NewDate(2025, time.June, 30)) {
		t.Error("schedule should be active on its end date")
	}
	if closed.Active(NewDate(2025, time.July, 1)) {
		t.Error("schedule should not be active past its end date")
	}
}
