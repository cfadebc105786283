// Package settings loads the per-user symbol lists that drive the
// market lookups. Settings are best-effort input: a missing or
// malformed file yields empty lists, never an error.
package settings

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
)

// Settings holds the user-configured currency codes and stock tickers.
type Settings struct {
	UserCurrencies []string `json:"user_currencies"`
	UserStocks     []string `json:"user_stocks"`
}

// FileSource reads settings from a JSON file once per request.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load returns the settings snapshot. Missing and malformed files are
// logged and treated as empty settings.
func (s *FileSource) Load(ctx context.Context) Settings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.WarnContext(ctx, "Could not read user settings, using empty lists",
				"path", s.path, "error", err)
		}
		return Settings{}
	}
	var out Settings
	if err := json.Unmarshal(data, &out); err != nil {
		slog.WarnContext(ctx, "User settings malformed, using empty lists",
			"path", s.path, "error", err)
		return Settings{}
	}
	return out
}
