// Package core holds the transaction domain model and the pure
// date/time and money helpers shared by every report variant.
//
// This file contains parsing between decimal amount strings and
// integer cents. All aggregation is done in cents; float64 values
// appear only at the JSON boundary.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmountToCents converts a signed decimal string to cents with
// half-up rounding on the third decimal place. It accepts both dot
// (12.34) and comma (12,34) decimal separators and an optional
// leading sign; ledger exports use negative amounts for debits.
//
// Examples:
//
//	ParseAmountToCents("12.34")  -> 1234, nil
//	ParseAmountToCents("-12,34") -> -1234, nil
//	ParseAmountToCents("12.346") -> 1235, nil (rounds up)
func ParseAmountToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")

	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" && fracPart == "" {
		return 0, ErrInvalidAmount
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}

	// Take the first two fractional digits; half-up rounding on the third.
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	cents := iv*100 + fracCents
	if negative {
		cents = -cents
	}
	return cents, nil
}

// NewMoney builds a Money from a decimal string.
func NewMoney(s string) (Money, error) {
	cents, err := ParseAmountToCents(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Cents: cents}, nil
}

// Units returns the amount in currency units, exact to two decimals.
// Used only when shaping the final report payload.
func (m Money) Units() float64 {
	return float64(m.Cents) / 100.0
}

// Abs returns the magnitude of the amount.
func (m Money) Abs() Money {
	if m.Cents < 0 {
		return Money{Cents: -m.Cents}
	}
	return m
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// OnePercent returns 1% of the amount, half-up rounded on the
// magnitude. This is the derived cashback rate: one unit per 100 spent.
func (m Money) OnePercent() Money {
	cents := m.Cents
	negative := cents < 0
	if negative {
		cents = -cents
	}
	cents = (cents + 50) / 100
	if negative {
		cents = -cents
	}
	return Money{Cents: cents}
}
