package stocktracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// This file contains functions to refresh the quote database with latest prices.

// QuoteWriter persists fetched quotes. *quotedb.DB satisfies it.
type QuoteWriter interface {
	Save(ctx context.Context, q Quote) error
}

// fetchPause spaces out provider calls to stay friendly with free-tier rate
// limits. Tests may zero it.
var fetchPause = 100 * time.Millisecond

// DefaultProviders returns the provider chain used by the CLI: Alpha Vantage
// first, then Finnhub, with the offline demo provider as the final fallback
// so an update never comes back empty-handed.
func DefaultProviders(cfg Config) []QuoteProvider {
	return []QuoteProvider{
		NewAlphaVantage(cfg.AlphaVantageKey),
		NewFinnhub(cfg.FinnhubToken),
		NewDemo(),
	}
}

// UpdateQuotes fetches the latest price for every ticker currently held in
// the ledger and saves it to the store. A failure on one ticker does not stop
// the others; all failures are joined in the returned error. The returned
// quotes are the ones successfully fetched and saved.
func UpdateQuotes(ctx context.Context, ledger *Ledger, providers []QuoteProvider, store QuoteWriter) ([]Quote, error) {
	var quotes []Quote
	var errs error

	first := true
	for ticker := range ledger.HeldTickers(Today()) {
		if !first {
			time.Sleep(fetchPause)
		}
		first = false

		q, err := FetchQuote(providers, ticker)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if err := store.Save(ctx, q); err != nil {
			errs = errors.Join(errs, fmt.Errorf("saving quote for %s: %w", ticker, err))
			continue
		}
		log.Debug().
			Str("ticker", ticker).
			Str("price", q.Price.String()).
			Str("source", q.Source).
			Msg("quote updated")
		quotes = append(quotes, q)
	}
	return quotes, errs
}
