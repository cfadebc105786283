package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"svodka/internal/aggregate"
	"svodka/internal/core"
	"svodka/internal/ledger"
	"svodka/internal/market"
	"svodka/internal/settings"
)

var (
	ErrMissingTimestamp = errors.New("reference timestamp not provided")
	ErrMissingCategory  = errors.New("category not provided")
)

// Top-transaction counts per report variant.
const (
	topHomeCount     = 5
	topCategoryCount = 3
)

// categoryWindowDays is the trailing window of the category report.
const categoryWindowDays = 90

type (
	// SettingsSource supplies the per-user symbol lists. It never
	// fails; missing settings are empty settings.
	SettingsSource interface {
		Load(ctx context.Context) settings.Settings
	}

	// Archiver persists a finished report payload.
	Archiver interface {
		SaveReport(ctx context.Context, kind, ref string, payload []byte) (int64, error)
	}

	// Notifier announces a finished report downstream.
	Notifier interface {
		PublishReportGenerated(ctx context.Context, kind, ref string) error
	}
)

// Service builds reports from one ledger snapshot per request. The
// archive and notifier are optional; a nil value skips that step.
type Service struct {
	ledger   ledger.TransactionSource
	settings SettingsSource
	quotes   market.Source
	archive  Archiver
	notifier Notifier
	now      func() time.Time
}

func NewService(src ledger.TransactionSource, settings SettingsSource, quotes market.Source, archive Archiver, notifier Notifier) *Service {
	return &Service{
		ledger:   src,
		settings: settings,
		quotes:   quotes,
		archive:  archive,
		notifier: notifier,
		now:      time.Now,
	}
}

// HomePage builds the month-to-date report for the given reference
// timestamp ("YYYY-MM-DD HH:MM:SS"). The window runs from the first
// of the reference month through the reference date, inclusive, over
// operation dates.
func (s *Service) HomePage(ctx context.Context, timestamp string) (*Report, error) {
	if timestamp == "" {
		return nil, ErrMissingTimestamp
	}
	ref, err := core.ParseTimestamp(timestamp)
	if err != nil {
		return nil, fmt.Errorf("parse reference timestamp: %w", err)
	}

	start, err := core.StartOfMonth(ref.Year, ref.Month)
	if err != nil {
		return nil, fmt.Errorf("resolve window: %w", err)
	}
	end := ref.Date()

	txs, err := s.ledger.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	var windowed []core.Transaction
	for _, tx := range txs {
		if tx.OperationDate.In(start, end) {
			windowed = append(windowed, tx)
		}
	}

	out, err := s.assemble(ctx, windowed, core.GreetingForHour(ref.Hour), topHomeCount)
	if err != nil {
		return nil, err
	}

	s.persist(ctx, KindHome, timestamp, out)
	return out, nil
}

// SpendingByCategory builds the trailing-90-day report for one
// category. The window ends at the reference timestamp (or date), or
// now when ref is empty, and filters payment dates plus an exact,
// case-sensitive category match.
func (s *Service) SpendingByCategory(ctx context.Context, category, ref string) (*Report, error) {
	if category == "" {
		return nil, ErrMissingCategory
	}
	refTS, err := s.resolveRef(ref)
	if err != nil {
		return nil, fmt.Errorf("parse reference date: %w", err)
	}

	end := refTS.Date()
	start := core.Date{Time: end.AddDate(0, 0, -categoryWindowDays)}

	txs, err := s.ledger.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	var windowed []core.Transaction
	for _, tx := range txs {
		if tx.Category == category && tx.PaymentDate.In(start, end) {
			windowed = append(windowed, tx)
		}
	}

	out, err := s.assemble(ctx, windowed, core.GreetingForHour(refTS.Hour), topCategoryCount)
	if err != nil {
		return nil, err
	}

	s.persist(ctx, KindCategory, category, out)
	return out, nil
}

// CashbackByCategory sums explicit cashback per category for the
// given month. Rows outside the month, without a category or without
// an explicit cashback value contribute nothing.
func (s *Service) CashbackByCategory(ctx context.Context, year, month int) (map[string]float64, error) {
	if _, err := core.StartOfMonth(year, month); err != nil {
		return nil, fmt.Errorf("resolve month: %w", err)
	}

	txs, err := s.ledger.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	var monthly []core.Transaction
	for _, tx := range txs {
		if tx.OperationDate.Year() == year && int(tx.OperationDate.Month()) == month {
			monthly = append(monthly, tx)
		}
	}

	out := make(map[string]float64)
	for _, cc := range aggregate.CashbackByCategory(monthly) {
		out[cc.Category] = cc.Cashback.Units()
	}
	return out, nil
}

// assemble runs the aggregations and the two market lookups. The
// lookups are independent of each other and of the aggregation, so
// all three run concurrently.
func (s *Service) assemble(ctx context.Context, txs []core.Transaction, greeting string, topCount int) (*Report, error) {
	userSettings := s.settings.Load(ctx)

	out := &Report{
		Greeting:        greeting,
		Cards:           []CardSummary{},
		TopTransactions: []TopTransaction{},
		CurrencyRates:   []market.Rate{},
		StockPrices:     []market.Price{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		top, err := aggregate.TopN(txs, topCount)
		if err != nil {
			return fmt.Errorf("rank transactions: %w", err)
		}
		for _, tx := range top {
			out.TopTransactions = append(out.TopTransactions, TopTransaction{
				Date:        tx.OperationDate.String(),
				Amount:      tx.Amount.Units(),
				Category:    tx.Category,
				Description: tx.Description,
			})
		}
		for _, group := range aggregate.GroupByCard(txs) {
			total, cashback := aggregate.TotalSpendingAndCashback(group.Transactions)
			out.Cards = append(out.Cards, CardSummary{
				LastDigits: group.LastDigits,
				TotalSpent: total.Units(),
				Cashback:   cashback.Units(),
			})
		}
		return nil
	})
	g.Go(func() error {
		out.CurrencyRates = s.quotes.FetchRates(gctx, userSettings.UserCurrencies)
		return nil
	})
	g.Go(func() error {
		out.StockPrices = s.quotes.FetchPrices(gctx, userSettings.UserStocks)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// persist archives the finished report and announces it. Both steps
// are after-success bookkeeping: failures are logged, never surfaced,
// because the report itself is already complete.
func (s *Service) persist(ctx context.Context, kind, ref string, out *Report) {
	if s.archive == nil {
		return
	}
	payload, err := json.Marshal(out)
	if err != nil {
		slog.ErrorContext(ctx, "Could not marshal report for archive",
			"kind", kind, "ref", ref, "error", err)
		return
	}
	id, err := s.archive.SaveReport(ctx, kind, ref, payload)
	if err != nil {
		slog.ErrorContext(ctx, "Could not archive report",
			"kind", kind, "ref", ref, "error", err)
		return
	}
	slog.InfoContext(ctx, "Report archived", "kind", kind, "ref", ref, "id", id)

	if s.notifier == nil {
		return
	}
	if err := s.notifier.PublishReportGenerated(ctx, kind, ref); err != nil {
		slog.ErrorContext(ctx, "Could not publish report notification",
			"kind", kind, "ref", ref, "error", err)
	}
}

// resolveRef parses the optional reference argument of the category
// report: empty means now, otherwise a full timestamp or a bare date.
func (s *Service) resolveRef(ref string) (core.Timestamp, error) {
	if ref == "" {
		now := s.now()
		return core.Timestamp{
			Year:   now.Year(),
			Month:  int(now.Month()),
			Day:    now.Day(),
			Hour:   now.Hour(),
			Minute: now.Minute(),
			Second: now.Second(),
		}, nil
	}
	if ts, err := core.ParseTimestamp(ref); err == nil {
		return ts, nil
	}
	d, err := core.ParseDate(ref)
	if err != nil {
		return core.Timestamp{}, core.ErrBadTimestamp
	}
	return core.Timestamp{Year: d.Year(), Month: int(d.Month()), Day: d.Day()}, nil
}
