package oversight

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// MonthFormat labels a calendar month, used for monthly series points.
const MonthFormat = "2006-01"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String format the date in date RFC3339
func (d Date) String() string { return d.time().Format(DateFormat) }

// MonthKey returns the "YYYY-MM" label of the date's calendar month.
func (d Date) MonthKey() string { return d.time().Format(MonthFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// AddMonth returns a new Date with the given number of months added.
func (d Date) AddMonth(i int) Date { return NewDate(d.y, d.m+time.Month(i), d.d) }

// StartOfMonth returns the first day of the date's calendar month.
func (d Date) StartOfMonth() Date { return NewDate(d.y, d.m, 1) }

// EndOfMonth returns the last day of the date's calendar month.
func (d Date) EndOfMonth() Date { return NewDate(d.y, d.m+1, 0) }

// SameMonth reports whether both dates fall in the same calendar month.
func (d Date) SameMonth(x Date) bool { return d.y == x.y && d.m == x.m }

// MonthsBetween returns the number of whole calendar months elapsed from d to x.
// A partial month does not count: 2024-01-15 to 2024-02-14 is 0 months.
// It returns a negative count when x is before d.
func MonthsBetween(d, x Date) int {
	months := (x.y-d.y)*12 + int(x.m-d.m)
	if x.d < d.d {
		months--
	}
	return months
}

var (
	relativeDateRE = regexp.MustCompile(`^([+-])(\d+)([dwmy])$`)
	monthDayDateRE = regexp.MustCompile(`^(?:(\d+)-)?(\d+)$`)
)

// ParseDate parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)

	// Handle "0d" as a special case for today
	if str == "0d" {
		return Today(), nil
	}

	// Relative Duration Format (e.g., -1d, +2w) - sign is mandatory for non-zero
	if match := relativeDateRE.FindStringSubmatch(str); match != nil {
		sign := match[1]
		numStr := match[2]
		unit := match[3]

		num, err := strconv.Atoi(numStr)
		if err != nil {
			// This should not happen given the regex
			return Date{}, fmt.Errorf("invalid number in relative date %q: %w", str, err)
		}

		if sign == "-" {
			num = -num
		}

		today := Today()
		switch unit {
		case "d":
			return today.Add(num), nil
		case "w":
			return today.Add(num * 7), nil
		case "m":
			return today.AddMonth(num), nil
		case "y":
			return NewDate(today.Year()+num, today.Month(), today.Day()), nil
		}
	}

	// [MM-]DD Format (e.g., 27, 8-27, 0, 8-0, 0-15)
	if match := monthDayDateRE.FindStringSubmatch(str); match != nil {
		monthStr := match[1]
		dayStr := match[2]

		day, err := strconv.Atoi(dayStr)
		if err != nil {
			// This should not happen given the regex
			return Date{}, fmt.Errorf("invalid day in date %q: %w", str, err)
		}

		today := Today()
		year := today.Year()
		month := today.Month()

		if monthStr != "" {
			m, err := strconv.Atoi(monthStr)
			if err != nil {
				// This should not happen given the regex
				return Date{}, fmt.Errorf("invalid month in date %q: %w", str, err)
			}
			if m == 0 {
				year--
				month = time.December
			} else {
				month = time.Month(m)
			}
		}

		if day == 0 {
			// last day of previous month
			return NewDate(year, month, 0), nil
		}
		return NewDate(year, month, day), nil
	}

	// Standard ISO Format (Fallback)
	on, err := time.Parse(readDateFormat, str)
	// We use a slightly more permisive format for read, to support 2025-7-1 instead of 2025-07-01
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParse is like ParseDate but panics on error.
func MustParse(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	// Keep this parsing strict, as it's for data files.
	// But not too strict, also supports 2025-7-1
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q in data file, want format %q: %w", str, DateFormat, err)
	}
	*j = NewDate(on.Date())
	return nil
}
func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// TimeRange selects how far back a net worth series reaches.
type TimeRange int

const (
	// LastMonth covers the month before the reference date.
	LastMonth TimeRange = iota
	// LastQuarter covers the three months before the reference date.
	LastQuarter
	// LastHalf covers the six months before the reference date.
	LastHalf
	// LastYear covers the twelve months before the reference date.
	LastYear
	// LastTwoYears covers the twenty-four months before the reference date.
	LastTwoYears
	// AllTime reaches back to the earliest recorded activity.
	AllTime
)

func (t TimeRange) String() string {
	switch t {
	case LastMonth:
		return "1M"
	case LastQuarter:
		return "3M"
	case LastHalf:
		return "6M"
	case LastYear:
		return "1Y"
	case LastTwoYears:
		return "2Y"
	case AllTime:
		return "ALL"
	default:
		panic(fmt.Sprintf("unknown time range %d", t))
	}
}

// Months returns how many months back the range reaches, and false for AllTime.
func (t TimeRange) Months() (months int, bounded bool) {
	switch t {
	case LastMonth:
		return 1, true
	case LastQuarter:
		return 3, true
	case LastHalf:
		return 6, true
	case LastYear:
		return 12, true
	case LastTwoYears:
		return 24, true
	default:
		return 0, false
	}
}

// ParseTimeRange parses a string into a TimeRange.
func ParseTimeRange(s string) (TimeRange, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "1M":
		return LastMonth, nil
	case "3M":
		return LastQuarter, nil
	case "6M":
		return LastHalf, nil
	case "1Y":
		return LastYear, nil
	case "2Y":
		return LastTwoYears, nil
	case "ALL":
		return AllTime, nil
	default:
		return AllTime, fmt.Errorf("unknown time range %q (want 1M, 3M, 6M, 1Y, 2Y or ALL)", s)
	}
}

// Frequency is the cadence of a recurring schedule.
type Frequency int

const (
	Daily Frequency = iota
	Weekly
	Biweekly
	Monthly
	Quarterly
	Annually
)

func (f Frequency) String() string {
	switch f {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Biweekly:
		return "biweekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Annually:
		return "annually"
	default:
		panic(fmt.Sprintf("unknown frequency %d", f))
	}
}

// Next returns the due date following 'on' for this frequency.
func (f Frequency) Next(on Date) Date {
	switch f {
	case Daily:
		return on.Add(1)
	case Weekly:
		return on.Add(7)
	case Biweekly:
		return on.Add(14)
	case Monthly:
		return on.AddMonth(1)
	case Quarterly:
		return on.AddMonth(3)
	case Annually:
		return on.AddMonth(12)
	default:
		panic(fmt.Sprintf("unknown frequency %d", f))
	}
}

// ParseFrequency parses a string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "biweekly":
		return Biweekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "annually", "yearly", "year":
		return Annually, nil
	default:
		return Daily, fmt.Errorf("unknown frequency %q", s)
	}
}
