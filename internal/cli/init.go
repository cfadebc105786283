// Package cli provides common initialization for the command-line
// entry points: env loading, logging, config and wiring of the ledger
// and archive collaborators.
package cli

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"svodka/internal/archive"
	"svodka/internal/config"
	"svodka/internal/ledger"
	gledger "svodka/internal/ledger/google"
	"svodka/internal/ledger/memory"
	applog "svodka/internal/log"
	"svodka/internal/market"
	"svodka/internal/settings"
)

// SetupLogger initializes structured logging with default settings
// and sets it as the default logger.
func SetupLogger() *applog.Logger {
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are
// ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitLedger builds the transaction source selected by the config.
// Exits the process when the backend cannot be initialized; a report
// without a ledger is not worth starting.
func InitLedger(ctx context.Context, logger *applog.Logger, cfg *config.Config) ledger.TransactionSource {
	switch cfg.LedgerBackend {
	case "sheets":
		src, err := gledger.New(ctx, cfg.GoogleSpreadsheetID, cfg.GoogleSheetName)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets ledger", applog.FieldError, err, applog.FieldBackend, cfg.LedgerBackend)
			os.Exit(1)
		}
		logger.Info("Initialized Google Sheets ledger", applog.FieldBackend, cfg.LedgerBackend, "sheet", cfg.GoogleSheetName)
		return src
	default:
		src, err := memory.NewFromFile(cfg.LedgerFile)
		if err != nil {
			logger.Error("Failed to load ledger file", applog.FieldError, err, "path", cfg.LedgerFile)
			os.Exit(1)
		}
		logger.Info("Initialized file-backed ledger", applog.FieldBackend, cfg.LedgerBackend, "path", cfg.LedgerFile)
		return src
	}
}

// InitMarket builds the quote source, wrapping it in a TTL cache when
// one is configured.
func InitMarket(cfg *config.Config) market.Source {
	var src market.Source = market.NewClient(market.Config{
		APIKey:  cfg.MarketAPIKey,
		BaseURL: cfg.MarketBaseURL,
		Timeout: cfg.MarketTimeout,
	})
	if cfg.MarketCacheTTL > 0 {
		src = market.NewCachedSource(src, cfg.MarketCacheSize, cfg.MarketCacheTTL)
	}
	return src
}

// NewSettingsSource wires the user-settings collaborator.
func NewSettingsSource(path string) *settings.FileSource {
	return settings.NewFileSource(path)
}

// InitArchive initializes the report archive. Returns the repository
// or exits the process on failure.
func InitArchive(logger *applog.Logger, dbPath string) *archive.Repository {
	repo, err := archive.NewRepository(dbPath)
	if err != nil {
		logger.Error("Failed to initialize report archive", applog.FieldError, err, "path", dbPath)
		os.Exit(1)
	}
	return repo
}
