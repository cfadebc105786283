package core

import "time"

// TimestampLayout is the exact reference-timestamp format accepted by
// report entry points: space between date and time, hyphens, colons.
const TimestampLayout = "2006-01-02 15:04:05"

// Greeting labels, one per time-of-day bucket.
const (
	GreetingMorning   = "good morning"
	GreetingAfternoon = "good afternoon"
	GreetingEvening   = "good evening"
	GreetingNight     = "good night"
)

// Timestamp is a reference instant broken into calendar and clock
// components, as parsed from user input.
type Timestamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// ParseTimestamp parses text in TimestampLayout into components.
// Any deviation from the layout is ErrBadTimestamp.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return Timestamp{}, ErrBadTimestamp
	}
	return Timestamp{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}, nil
}

// Date returns the calendar-date part of the timestamp.
func (ts Timestamp) Date() Date {
	return NewDate(ts.Year, ts.Month, ts.Day)
}

// Time returns the timestamp as a time.Time in UTC.
func (ts Timestamp) Time() time.Time {
	return time.Date(ts.Year, time.Month(ts.Month), ts.Day, ts.Hour, ts.Minute, ts.Second, 0, time.UTC)
}

// StartOfMonth returns the first calendar day of the given month.
// Month must be in 1-12.
func StartOfMonth(year, month int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, ErrInvalidMonth
	}
	return NewDate(year, month, 1), nil
}

// GreetingForHour maps an hour of day to a greeting label. Buckets are
// half-open: [5,12) morning, [12,18) afternoon, [18,23) evening,
// everything else night. Hour 23 is night.
func GreetingForHour(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return GreetingMorning
	case hour >= 12 && hour < 18:
		return GreetingAfternoon
	case hour >= 18 && hour < 23:
		return GreetingEvening
	default:
		return GreetingNight
	}
}
