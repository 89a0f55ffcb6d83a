// Package cmd implements the CLI application to track a stock portfolio.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocktracker"
	"github.com/etnz/stocktracker/logger"
	"github.com/etnz/stocktracker/quotedb"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Commands lists every subcommand of the application. A main package
// registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&buyCmd{},
	&sellCmd{},
	&portfolioCmd{},
	&updateCmd{},
	&logCmd{},
	&summaryCmd{},
	&quoteCmd{},
	&watchCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// As a CLI application the process is short lived, so globals are fine.
var (
	dirFlag      = flag.String("dir", "", "data directory holding the ledger and quote database (default: SPT_DIR or ~/.stocktracker)")
	ledgerFlag   = flag.String("ledger", "", "ledger name within the data directory (default: SPT_LEDGER)")
	currencyFlag = flag.String("currency", "", "currency for transactions recorded without one (default: SPT_CURRENCY)")
	verboseFlag  = flag.Bool("v", false, "enable debug logging")
)

// cfg is the application configuration, resolved once by Setup.
var cfg stocktracker.Config

// Setup loads the configuration, applies the global flags on top, and
// installs the global logger. It must be called after flag.Parse.
func Setup() error {
	var err error
	cfg, err = stocktracker.LoadConfig()
	if err != nil {
		return err
	}
	if *dirFlag != "" {
		cfg.Dir = *dirFlag
	}
	if *ledgerFlag != "" {
		cfg.Ledger = *ledgerFlag
	}
	if *currencyFlag != "" {
		cfg.Currency = *currencyFlag
	}
	if *verboseFlag {
		cfg.LogLevel = "debug"
	}
	logger.SetGlobalLogger(logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.PrettyLogs}))
	return nil
}

// loadLedger loads the configured ledger from the data directory. A brand new
// ledger adopts the configured currency; an existing one keeps its own.
func loadLedger() (*stocktracker.Ledger, error) {
	ledger, err := stocktracker.LoadLedger(cfg.Dir, cfg.Ledger)
	if err != nil {
		return nil, err
	}
	if ledger.Len() == 0 {
		ledger.SetCurrency(cfg.Currency)
	}
	return ledger, nil
}

// openQuotes opens the quote database in the data directory, creating the
// directory on first use.
func openQuotes() (*quotedb.DB, error) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", cfg.Dir, err)
	}
	return quotedb.Open(stocktracker.QuotesPath(cfg.Dir), log.Logger)
}

// providers returns the quote provider chain built from the configuration.
func providers() []stocktracker.QuoteProvider {
	return stocktracker.DefaultProviders(cfg)
}

// recordTransaction validates a transaction against the current ledger state
// and appends it to the ledger file. It returns the validated transaction,
// with quick fixes like "sell all" or a missing currency resolved.
func recordTransaction(tx stocktracker.Transaction) (stocktracker.Transaction, error) {
	ledger, err := loadLedger()
	if err != nil {
		return nil, err
	}
	tx, err = ledger.Record(tx)
	if err != nil {
		return nil, err
	}
	if err := stocktracker.AppendTransaction(cfg.Dir, ledger.Name(), tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// currentPrice returns the newest stored quote for a ticker, fetching and
// saving one when the store has none yet.
func currentPrice(ctx context.Context, ticker string) (stocktracker.Quote, error) {
	db, err := openQuotes()
	if err != nil {
		return stocktracker.Quote{}, err
	}
	defer db.Close()

	q, err := db.Latest(ctx, ticker)
	if err == nil {
		return q, nil
	}
	if !errors.Is(err, quotedb.ErrNoQuote) {
		return stocktracker.Quote{}, err
	}

	q, err = stocktracker.FetchQuote(providers(), ticker)
	if err != nil {
		return stocktracker.Quote{}, err
	}
	if err := db.Save(ctx, q); err != nil {
		return stocktracker.Quote{}, err
	}
	return q, nil
}
