package stocktracker

import (
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"SPT_DIR", "SPT_LEDGER", "SPT_CURRENCY",
		"ALPHAVANTAGE_API_KEY", "FINNHUB_TOKEN",
		"SPT_LOG_LEVEL", "SPT_PRETTY_LOGS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if want := filepath.Join(home, ".stocktracker"); cfg.Dir != want {
		t.Errorf("Dir = %q, want %q", cfg.Dir, want)
	}
	if cfg.Ledger != DefaultLedgerName {
		t.Errorf("Ledger = %q, want %q", cfg.Ledger, DefaultLedgerName)
	}
	if cfg.Currency != DefaultCurrency {
		t.Errorf("Currency = %q, want %q", cfg.Currency, DefaultCurrency)
	}
	// both providers work with their public demo credentials out of the box
	if cfg.AlphaVantageKey != "demo" || cfg.FinnhubToken != "demo" {
		t.Errorf("credentials = %q/%q, want demo/demo", cfg.AlphaVantageKey, cfg.FinnhubToken)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if !cfg.PrettyLogs {
		t.Error("PrettyLogs should default to true")
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SPT_DIR", dir)
	t.Setenv("SPT_LEDGER", "retirement")
	t.Setenv("SPT_CURRENCY", "EUR")
	t.Setenv("ALPHAVANTAGE_API_KEY", "real-key")
	t.Setenv("FINNHUB_TOKEN", "real-token")
	t.Setenv("SPT_LOG_LEVEL", "debug")
	t.Setenv("SPT_PRETTY_LOGS", "false")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Dir != dir {
		t.Errorf("Dir = %q, want %q", cfg.Dir, dir)
	}
	if cfg.Ledger != "retirement" {
		t.Errorf("Ledger = %q, want retirement", cfg.Ledger)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", cfg.Currency)
	}
	if cfg.AlphaVantageKey != "real-key" || cfg.FinnhubToken != "real-token" {
		t.Errorf("credentials = %q/%q, want overrides", cfg.AlphaVantageKey, cfg.FinnhubToken)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.PrettyLogs {
		t.Error("PrettyLogs should be off")
	}
}

func TestLoadConfig_ResolvesRelativeDir(t *testing.T) {
	t.Setenv("SPT_DIR", ".")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !filepath.IsAbs(cfg.Dir) {
		t.Errorf("Dir = %q, want an absolute path", cfg.Dir)
	}
}
