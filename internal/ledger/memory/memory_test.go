package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"svodka/internal/core"
)

func TestListTransactionsReturnsCopy(t *testing.T) {
	store := New([]core.Transaction{
		{OperationDate: core.NewDate(2024, 8, 1), Amount: core.Money{Cents: 100}},
	})
	first, err := store.ListTransactions(context.Background())
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	first[0].Amount = core.Money{Cents: 999}

	second, _ := store.ListTransactions(context.Background())
	if second[0].Amount.Cents != 100 {
		t.Fatalf("store was mutated through the returned slice")
	}
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "operations.json")
	payload := `[
		{"operation_date":"2024-08-01","amount":"1000","category":"Groceries","description":"market","card_last_digits":"5814","cashback":"10"},
		{"operation_date":"2024-08-10","payment_date":"2024-08-12","amount":"-200.50","category":"Restaurants","description":"dinner"}
	]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := NewFromFile(path)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	txs, _ := store.ListTransactions(context.Background())
	if len(txs) != 2 {
		t.Fatalf("len = %d, want 2", len(txs))
	}
	if txs[0].Amount.Cents != 100000 || !txs[0].HasCashback || txs[0].Cashback.Cents != 1000 {
		t.Fatalf("first row parsed wrong: %+v", txs[0])
	}
	// payment_date defaults to operation_date when absent
	if txs[0].PaymentDate != txs[0].OperationDate {
		t.Fatalf("payment date default broken: %+v", txs[0])
	}
	if txs[1].Amount.Cents != -20050 || txs[1].PaymentDate != core.NewDate(2024, 8, 12) {
		t.Fatalf("second row parsed wrong: %+v", txs[1])
	}
}

func TestNewFromFileErrors(t *testing.T) {
	if _, err := NewFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("missing file must be an error, not an empty ledger")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(bad, []byte(`{"not":"an array"}`), 0o644)
	if _, err := NewFromFile(bad); err == nil {
		t.Fatalf("malformed file must be an error")
	}

	badRow := filepath.Join(t.TempDir(), "badrow.json")
	os.WriteFile(badRow, []byte(`[{"operation_date":"31.12.2021","amount":"1"}]`), 0o644)
	if _, err := NewFromFile(badRow); err == nil {
		t.Fatalf("unparseable row must be an error")
	}

	zeroDate := filepath.Join(t.TempDir(), "zerodate.json")
	os.WriteFile(zeroDate, []byte(`[{"operation_date":"0001-01-01","amount":"1"}]`), 0o644)
	if _, err := NewFromFile(zeroDate); err == nil {
		t.Fatalf("zero operation date must be an error")
	}
}
