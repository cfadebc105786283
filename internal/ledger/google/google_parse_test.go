package google

import (
	"testing"

	"svodka/internal/core"
)

func TestParseRowFull(t *testing.T) {
	row := []interface{}{"2024-08-01", "2024-08-03", "-1000.50", "Groceries", "supermarket", "5814", "10.01"}
	tx, err := parseRow(row)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if tx.OperationDate != core.NewDate(2024, 8, 1) || tx.PaymentDate != core.NewDate(2024, 8, 3) {
		t.Fatalf("dates parsed wrong: %+v", tx)
	}
	if tx.Amount.Cents != -100050 {
		t.Fatalf("amount = %d, want -100050", tx.Amount.Cents)
	}
	if tx.Category != "Groceries" || tx.Description != "supermarket" || tx.CardLastDigits != "5814" {
		t.Fatalf("text fields parsed wrong: %+v", tx)
	}
	if !tx.HasCashback || tx.Cashback.Cents != 1001 {
		t.Fatalf("cashback parsed wrong: %+v", tx)
	}
}

func TestParseRowShort(t *testing.T) {
	// Only date and amount; sheets API truncates trailing empty cells.
	tx, err := parseRow([]interface{}{"2024-08-01", "", "250"})
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if tx.PaymentDate != tx.OperationDate {
		t.Fatalf("payment date should default to operation date")
	}
	if tx.HasCashback {
		t.Fatalf("no cashback cell must mean no explicit cashback")
	}
}

func TestParseRowNumericCell(t *testing.T) {
	// Unformatted numeric cells come back as float64.
	tx, err := parseRow([]interface{}{"2024-08-01", "", float64(250)})
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if tx.Amount.Cents != 25000 {
		t.Fatalf("amount = %d, want 25000", tx.Amount.Cents)
	}
}

func TestParseRowErrors(t *testing.T) {
	bads := [][]interface{}{
		{},
		{"", "", "100"},
		{"31.12.2021", "", "100"},
		{"2024-08-01", "", "not-a-number"},
		{"2024-08-01", "bad-date", "100"},
		{"2024-08-01", "", "100", "Cat", "desc", "5814", "bad"},
		// parses as the zero date, which is not a usable operation date
		{"0001-01-01", "", "100"},
	}
	for i, row := range bads {
		if _, err := parseRow(row); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
