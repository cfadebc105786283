package core

import (
	"errors"
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2024-08-20 15:04:05")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	want := Timestamp{Year: 2024, Month: 8, Day: 20, Hour: 15, Minute: 4, Second: 5}
	if ts != want {
		t.Fatalf("got %+v, want %+v", ts, want)
	}

	bads := []string{
		"",
		"2024-08-20",
		"2024/08/20 15:04:05",
		"2024-08-20T15:04:05",
		"20.08.2024 15:04:05",
		"2024-08-20 15:04",
	}
	for _, bad := range bads {
		if _, err := ParseTimestamp(bad); !errors.Is(err, ErrBadTimestamp) {
			t.Fatalf("%q expected ErrBadTimestamp, got %v", bad, err)
		}
	}
}

func TestStartOfMonth(t *testing.T) {
	d, err := StartOfMonth(2024, 8)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d != NewDate(2024, 8, 1) {
		t.Fatalf("got %v, want 2024-08-01", d)
	}
	for _, month := range []int{0, 13, -1} {
		if _, err := StartOfMonth(2024, month); !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("month %d expected ErrInvalidMonth, got %v", month, err)
		}
	}
}

func TestGreetingForHour(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{5, GreetingMorning},
		{11, GreetingMorning},
		{12, GreetingAfternoon},
		{17, GreetingAfternoon},
		{18, GreetingEvening},
		{22, GreetingEvening},
		{23, GreetingNight}, // 23 is night, not evening
		{0, GreetingNight},
		{4, GreetingNight},
	}
	for _, tc := range cases {
		if got := GreetingForHour(tc.hour); got != tc.want {
			t.Fatalf("GreetingForHour(%d) = %q, want %q", tc.hour, got, tc.want)
		}
	}

	// Total over the whole day: exactly one of the four labels.
	labels := map[string]bool{
		GreetingMorning: true, GreetingAfternoon: true,
		GreetingEvening: true, GreetingNight: true,
	}
	for h := 0; h < 24; h++ {
		if !labels[GreetingForHour(h)] {
			t.Fatalf("hour %d produced unknown label %q", h, GreetingForHour(h))
		}
	}
}
