package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Ledger backend selection
	LedgerBackend string
	LedgerFile    string

	// Google Sheets ledger
	GoogleSpreadsheetID string
	GoogleSheetName     string

	// User settings
	SettingsFile string

	// Market quote service
	MarketAPIKey    string
	MarketBaseURL   string
	MarketTimeout   time.Duration
	MarketCacheTTL  time.Duration
	MarketCacheSize int

	// Report archive
	SQLiteDBPath string

	// AMQP notifications (optional; empty URL disables publishing)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

func Load() *Config {
	return &Config{
		LedgerBackend: getEnv("LEDGER_BACKEND", "memory"),
		LedgerFile:    getEnv("LEDGER_FILE", "./data/operations.json"),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:     getEnv("GOOGLE_SHEET_NAME", "Operations"),

		SettingsFile: getEnv("SETTINGS_FILE", "./data/user_settings.json"),

		MarketAPIKey:    getEnv("MARKET_API_KEY", ""),
		MarketBaseURL:   getEnv("MARKET_BASE_URL", "https://api.apilayer.com/exchangerates_data"),
		MarketTimeout:   getEnvDuration("MARKET_TIMEOUT", 10*time.Second),
		MarketCacheTTL:  getEnvDuration("MARKET_CACHE_TTL", 0),
		MarketCacheSize: getEnvInt("MARKET_CACHE_SIZE", 32),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/svodka.db"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "svodka"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "report_events"),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"memory", "sheets"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.LedgerBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid ledger backend '%s': must be one of %v", c.LedgerBackend, validBackends))
	}

	if c.LedgerBackend == "memory" && c.LedgerFile == "" {
		errors = append(errors, "ledger file cannot be empty when using memory backend")
	}

	if c.LedgerBackend == "sheets" {
		if c.GoogleSpreadsheetID == "" {
			errors = append(errors, "Google Spreadsheet ID is required when using sheets backend")
		}
		if c.GoogleSheetName == "" {
			errors = append(errors, "Google Sheet name is required when using sheets backend")
		}
	}

	if parsedURL, err := url.Parse(c.MarketBaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid market base URL '%s': %v", c.MarketBaseURL, err))
	} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid market base URL scheme '%s': must be 'http' or 'https'", parsedURL.Scheme))
	}

	if c.MarketTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid market timeout %v: must be at least 1 second", c.MarketTimeout))
	} else if c.MarketTimeout > 2*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid market timeout %v: must be at most 2 minutes", c.MarketTimeout))
	}

	if c.MarketCacheTTL > 0 && c.MarketCacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid market cache size %d: must be at least 1 when caching is enabled", c.MarketCacheSize))
	}

	if c.SQLiteDBPath != "" {
		dir := filepath.Dir(c.SQLiteDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
