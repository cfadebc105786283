package google

import (
	"fmt"
	"strconv"
	"strings"

	"svodka/internal/core"
)

// Sheet column positions within A2:G.
const (
	colOperationDate = iota
	colPaymentDate
	colAmount
	colCategory
	colDescription
	colCardLastDigits
	colCashback
)

// parseRow converts one values-matrix row into a Transaction. The
// operation date and amount are mandatory; everything else is
// optional and defaults sensibly (payment date falls back to the
// operation date).
func parseRow(row []interface{}) (core.Transaction, error) {
	cells := toStrings(row)

	opRaw := safeGet(cells, colOperationDate)
	if opRaw == "" {
		return core.Transaction{}, fmt.Errorf("empty operation date")
	}
	opDate, err := core.ParseDate(opRaw)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("operation date %q: %w", opRaw, err)
	}

	payDate := opDate
	if payRaw := safeGet(cells, colPaymentDate); payRaw != "" {
		payDate, err = core.ParseDate(payRaw)
		if err != nil {
			return core.Transaction{}, fmt.Errorf("payment date %q: %w", payRaw, err)
		}
	}

	amountRaw := safeGet(cells, colAmount)
	amount, err := core.NewMoney(amountRaw)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("amount %q: %w", amountRaw, err)
	}

	tx := core.Transaction{
		OperationDate:  opDate,
		PaymentDate:    payDate,
		Amount:         amount,
		Category:       safeGet(cells, colCategory),
		Description:    safeGet(cells, colDescription),
		CardLastDigits: safeGet(cells, colCardLastDigits),
	}

	if cashRaw := safeGet(cells, colCashback); cashRaw != "" {
		cashback, err := core.NewMoney(cashRaw)
		if err != nil {
			return core.Transaction{}, fmt.Errorf("cashback %q: %w", cashRaw, err)
		}
		tx.Cashback = cashback
		tx.HasCashback = true
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	return tx, nil
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		switch t := v.(type) {
		case string:
			out[i] = strings.TrimSpace(t)
		case float64:
			out[i] = strconv.FormatFloat(t, 'f', -1, 64)
		default:
			out[i] = strings.TrimSpace(fmt.Sprint(v))
		}
	}
	return out
}

func safeGet(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}
