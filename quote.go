package stocktracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrUnknownSymbol reports that a provider has no price for a ticker.
var ErrUnknownSymbol = errors.New("unknown symbol")

// Quote is a single observed price for a ticker.
type Quote struct {
	Ticker    string
	Price     Money
	Source    string // name of the provider that produced the price
	FetchedAt time.Time
}

// QuoteProvider fetches the latest known price for a ticker.
type QuoteProvider interface {
	Name() string
	Fetch(ticker string) (Quote, error)
}

// FetchQuote queries providers in order and returns the first quote obtained.
// A provider failure is logged and the next provider is tried. When all of
// them fail the joined errors are returned.
func FetchQuote(providers []QuoteProvider, ticker string) (Quote, error) {
	var errs []error
	for _, p := range providers {
		q, err := p.Fetch(ticker)
		if err == nil {
			return q, nil
		}
		log.Debug().
			Str("provider", p.Name()).
			Str("ticker", ticker).
			Err(err).
			Msg("provider failed, trying next")
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
	}
	return Quote{}, fmt.Errorf("no provider could quote %s: %w", ticker, errors.Join(errs...))
}
