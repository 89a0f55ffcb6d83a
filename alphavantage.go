package stocktracker

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file contains functions to access the Alpha Vantage API.

const alphaVantageURL = "https://www.alphavantage.co/query"

// alphaVantage reads latest prices from the Alpha Vantage GLOBAL_QUOTE
// endpoint. The free tier allows 25 requests per day, so responses go through
// the daily disk cache.
type alphaVantage struct {
	apiKey string
	base   string
	client *http.Client
}

// NewAlphaVantage returns a provider reading from alphavantage.co.
// Get a free key at https://www.alphavantage.co/support/#api-key
func NewAlphaVantage(apiKey string) QuoteProvider {
	return &alphaVantage{apiKey: apiKey, base: alphaVantageURL, client: daily()}
}

func (p *alphaVantage) Name() string { return "alphavantage" }

// Fetch asks for the symbol's global quote.
//
//	{
//	  "Global Quote": {
//	    "01. symbol": "AAPL",
//	    "05. price": "175.5000",
//	    "07. latest trading day": "2025-01-17",
//	    ...
//	  }
//	}
//
// An unknown symbol comes back as an empty "Global Quote" object.
func (p *alphaVantage) Fetch(ticker string) (Quote, error) {
	addr := fmt.Sprintf("%s?function=GLOBAL_QUOTE&symbol=%s&apikey=%s", p.base, url.QueryEscape(ticker), url.QueryEscape(p.apiKey))

	var jobj any
	if err := jwget(p.client, addr, &jobj); err != nil {
		return Quote{}, fmt.Errorf("error retrieving %q: %w", ticker, err)
	}

	path := `$["Global Quote"]["05. price"]`
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		// an empty "Global Quote" object: the symbol is not known there.
		return Quote{}, fmt.Errorf("%q: %w", ticker, ErrUnknownSymbol)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	s, ok := jval.(string)
	if !ok || s == "" {
		return Quote{}, fmt.Errorf("%q: %w", ticker, ErrUnknownSymbol)
	}
	price, err := decimal.NewFromString(s)
	if err != nil {
		return Quote{}, fmt.Errorf("error parsing price %q for %q: %w", s, ticker, err)
	}

	return Quote{
		Ticker:    ticker,
		Price:     M(price, DefaultCurrency),
		Source:    p.Name(),
		FetchedAt: time.Now(),
	}, nil
}
