package stocktracker

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration, read from the environment and
// an optional .env file in the working directory.
type Config struct {
	Dir             string // Data directory holding the ledger and quote database.
	Ledger          string // Ledger name, without the .jsonl extension.
	Currency        string // Currency assumed for transactions recorded without one.
	AlphaVantageKey string // API key for alphavantage.co.
	FinnhubToken    string // API token for finnhub.io.
	LogLevel        string // Log level: trace, debug, info, warn, error.
	PrettyLogs      bool   // Human-friendly console logs instead of JSON.
}

// LoadConfig reads configuration from environment variables. The data
// directory defaults to ~/.stocktracker; it is resolved to an absolute path
// but only created on first write.
func LoadConfig() (Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dir := getEnv("SPT_DIR", "")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("failed to determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".stocktracker")
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	return Config{
		Dir:             absDir,
		Ledger:          getEnv("SPT_LEDGER", DefaultLedgerName),
		Currency:        getEnv("SPT_CURRENCY", DefaultCurrency),
		AlphaVantageKey: getEnv("ALPHAVANTAGE_API_KEY", "demo"),
		FinnhubToken:    getEnv("FINNHUB_TOKEN", "demo"),
		LogLevel:        getEnv("SPT_LOG_LEVEL", "info"),
		PrettyLogs:      getEnvAsBool("SPT_PRETTY_LOGS", true),
	}, nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
