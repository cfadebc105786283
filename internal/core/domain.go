package core

import (
	"errors"
	"time"
)

type (
	Date struct {
		time.Time
	}

	// Money is a monetary value in integer cents. Negative cents are
	// debits in sources that report spend as negative amounts.
	Money struct {
		Cents int64
	}

	// Transaction is one parsed ledger row. Rows are read once per
	// report request, filtered into derived subsets and discarded;
	// they are never mutated in place.
	Transaction struct {
		OperationDate  Date
		PaymentDate    Date
		Amount         Money
		Category       string
		Description    string
		CardLastDigits string
		Cashback       Money
		HasCashback    bool
	}
)

var (
	ErrInvalidMonth  = errors.New("invalid month")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrMissingDate   = errors.New("missing operation date")
	ErrBadTimestamp  = errors.New("timestamp must match YYYY-MM-DD HH:MM:SS")
	ErrBadDate       = errors.New("date must match YYYY-MM-DD")
)

// DateLayout is the calendar-date format used by ledger sources.
const DateLayout = "2006-01-02"

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a calendar date in DateLayout.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrBadDate
	}
	return Date{Time: t}, nil
}

// In reports whether d falls inside the inclusive window [start, end].
func (d Date) In(start, end Date) bool {
	return !d.Before(start.Time) && !d.After(end.Time)
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (t Transaction) Validate() error {
	return t.OperationDate.Validate()
}
