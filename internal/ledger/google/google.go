package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"svodka/internal/core"
	ports "svodka/internal/ledger"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Client reads card operations from a Google spreadsheet. Each data
// row holds: operation date, payment date, amount, category,
// description, card last digits, cashback (columns A..G); row 1 is a
// header.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

var _ ports.TransactionSource = (*Client)(nil)

// New creates a Sheets-backed transaction source. Credentials come
// from GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
func New(ctx context.Context, spreadsheetID, sheetName string) (*Client, error) {
	spreadsheetID = strings.TrimSpace(spreadsheetID)
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	sheetName = strings.TrimSpace(sheetName)
	if sheetName == "" {
		sheetName = "Operations"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// ListTransactions reads and parses the operations sheet. API
// failures propagate; individual unparseable rows are skipped with a
// warning so one damaged row does not hide an otherwise good ledger.
func (c *Client) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}

	rng := fmt.Sprintf("%s!A2:G", c.sheetName)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read operations sheet %s: %w", c.sheetName, err)
	}

	txs := make([]core.Transaction, 0, len(resp.Values))
	for i, row := range resp.Values {
		tx, err := parseRow(row)
		if err != nil {
			slog.WarnContext(ctx, "Skipping unparseable operations row",
				"sheet", c.sheetName, "row", i+2, "error", err)
			continue
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
