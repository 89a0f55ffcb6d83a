package stocktracker

import (
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

// demoPrices are the base prices served by the demo provider for a handful of
// popular tickers. Any other ticker resolves to demoBasePrice.
var demoPrices = map[string]float64{
	"AAPL":  175.50,
	"GOOGL": 2850.00,
	"MSFT":  350.25,
	"TSLA":  225.80,
	"AMZN":  145.30,
	"NVDA":  875.40,
	"META":  485.60,
	"NFLX":  425.90,
}

const demoBasePrice = 100.00

// demo serves offline prices: the ticker's base price moved by a random
// amount within ±5%, rounded to the cent. It never fails, which keeps the
// application usable without any API key or network access.
type demo struct{}

// NewDemo returns the offline demo provider.
func NewDemo() QuoteProvider { return demo{} }

func (p demo) Name() string { return "demo" }

func (p demo) Fetch(ticker string) (Quote, error) {
	base, ok := demoPrices[ticker]
	if !ok {
		base = demoBasePrice
	}
	price := base * (1 + (rand.Float64()-0.5)/10)

	return Quote{
		Ticker:    ticker,
		Price:     M(decimal.NewFromFloat(price).Round(2), DefaultCurrency),
		Source:    p.Name(),
		FetchedAt: time.Now(),
	}, nil
}
