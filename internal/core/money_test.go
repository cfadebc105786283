package core

import "testing"

func TestParseAmountToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"0", 0, true},
		{"-12.34", -1234, true},
		{"+5", 500, true},
		{"1.005", 101, true}, // half-up rounding
		{"-1.005", -101, true},
		{" 2.50 ", 250, true},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"-", 0, false},
		{".", 0, false},
		{",", 0, false},
		{"-.", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmountToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyOnePercent(t *testing.T) {
	cases := []struct {
		cents int64
		want  int64
	}{
		{250000, 2500}, // 2500.00 -> 25.00
		{60000, 600},   // 600.00 -> 6.00
		{99, 1},        // 0.99 -> 0.01 (half-up)
		{49, 0},
		{-250000, -2500},
		{0, 0},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).OnePercent().Cents; got != tc.want {
			t.Fatalf("OnePercent(%d) = %d, want %d", tc.cents, got, tc.want)
		}
	}
}

func TestMoneyUnits(t *testing.T) {
	if got := (Money{Cents: 1234}).Units(); got != 12.34 {
		t.Fatalf("Units = %v, want 12.34", got)
	}
	if got := (Money{Cents: -50}).Units(); got != -0.5 {
		t.Fatalf("Units = %v, want -0.5", got)
	}
}
