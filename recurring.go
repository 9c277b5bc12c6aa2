package oversight

// RecurringSchedule is a template that materializes into concrete
// transactions on its due dates.
type RecurringSchedule struct {
	ID       string
	Account  string
	Freq     Frequency
	Start    Date
	End      Date // zero means open-ended
	Merchant string
	Category string
	Amount   Money
	LastRun  Date // last materialized due date
}

// DueDates returns the due dates that have not been materialized yet, up to
// and including 'until'. Due dates stop at the schedule end date when one is
// set.
func (s RecurringSchedule) DueDates(until Date) []Date {
	if s.Start.IsZero() {
		return nil
	}
	var due []Date
	for on := s.Start; !on.After(until); on = s.Freq.Next(on) {
		if !s.End.IsZero() && on.After(s.End) {
			break
		}
		if s.LastRun.IsZero() || on.After(s.LastRun) {
			due = append(due, on)
		}
	}
	return due
}

// Active reports whether the schedule can still produce due dates after 'on'.
func (s RecurringSchedule) Active(on Date) bool {
	return s.End.IsZero() || !s.End.Before(on)
}
