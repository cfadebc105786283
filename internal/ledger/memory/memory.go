package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"svodka/internal/core"
)

// Store is an in-memory transaction source. It backs tests and the
// default local backend.
type Store struct {
	mu    sync.Mutex
	items []core.Transaction
}

func New(txs []core.Transaction) *Store {
	items := make([]core.Transaction, len(txs))
	copy(items, txs)
	return &Store{items: items}
}

// fileRecord is one row of a JSON ledger file.
type fileRecord struct {
	OperationDate  string `json:"operation_date"`
	PaymentDate    string `json:"payment_date"`
	Amount         string `json:"amount"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	CardLastDigits string `json:"card_last_digits"`
	Cashback       string `json:"cashback"`
}

// NewFromFile loads a JSON array of ledger rows. A missing or
// malformed file is a hard error: the ledger is the one collaborator
// that must not degrade to an empty set.
func NewFromFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ledger file: %w", err)
	}
	var records []fileRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse ledger file %s: %w", path, err)
	}

	txs := make([]core.Transaction, 0, len(records))
	for i, rec := range records {
		tx, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("ledger file %s row %d: %w", path, i+1, err)
		}
		txs = append(txs, tx)
	}
	return New(txs), nil
}

func parseRecord(rec fileRecord) (core.Transaction, error) {
	opDate, err := core.ParseDate(rec.OperationDate)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("operation_date %q: %w", rec.OperationDate, err)
	}
	payDate := opDate
	if rec.PaymentDate != "" {
		payDate, err = core.ParseDate(rec.PaymentDate)
		if err != nil {
			return core.Transaction{}, fmt.Errorf("payment_date %q: %w", rec.PaymentDate, err)
		}
	}
	amount, err := core.NewMoney(rec.Amount)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("amount %q: %w", rec.Amount, err)
	}

	tx := core.Transaction{
		OperationDate:  opDate,
		PaymentDate:    payDate,
		Amount:         amount,
		Category:       rec.Category,
		Description:    rec.Description,
		CardLastDigits: rec.CardLastDigits,
	}
	if rec.Cashback != "" {
		cashback, err := core.NewMoney(rec.Cashback)
		if err != nil {
			return core.Transaction{}, fmt.Errorf("cashback %q: %w", rec.Cashback, err)
		}
		tx.Cashback = cashback
		tx.HasCashback = true
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	return tx, nil
}

// Add appends a transaction, mostly for test setup.
func (s *Store) Add(tx core.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, tx)
}

// ListTransactions returns a copy of the stored records in insertion
// order.
func (s *Store) ListTransactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.items))
	copy(out, s.items)
	return out, nil
}
