package stocktracker

import (
	"iter"
)

// Snapshot represents a view of the portfolio at a single point in time.
// It is a stateless calculator that computes all values on-the-fly from the
// ledger transactions up to its 'on' date and the latest known quotes.
type Snapshot struct {
	ledger *Ledger
	on     Date
	prices map[string]Money
}

// NewSnapshot builds a snapshot of the ledger on the given date, valued with
// the given quotes. Quotes for tickers the ledger never traded are ignored.
func NewSnapshot(ledger *Ledger, on Date, quotes []Quote) *Snapshot {
	prices := make(map[string]Money, len(quotes))
	for _, q := range quotes {
		prices[q.Ticker] = q.Price
	}
	return &Snapshot{ledger: ledger, on: on, prices: prices}
}

// On returns the date of the snapshot.
func (s *Snapshot) On() Date { return s.on }

// Ledger returns the name of the underlying ledger.
func (s *Snapshot) Ledger() string { return s.ledger.Name() }

// Currency returns the reporting currency.
func (s *Snapshot) Currency() string { return s.ledger.Currency() }

// Securities returns an iterator over the tickers held on the snapshot's
// date, in alphabetical order. Fully sold positions are not included.
func (s *Snapshot) Securities() iter.Seq[string] {
	return s.ledger.HeldTickers(s.on)
}

// sum applies a metric function to every ticker from the iterator and
// returns the total.
func (s *Snapshot) sum(iterator iter.Seq[string], metricFunc func(string) Money) Money {
	total := M(0, s.Currency())
	for ticker := range iterator {
		total = total.Add(metricFunc(ticker))
	}
	return total
}

// Position calculates the quantity held of a single security on the snapshot's date.
func (s *Snapshot) Position(ticker string) Quantity {
	return s.ledger.Position(ticker, s.on)
}

// CostBasis calculates the total acquisition cost of the shares still held,
// with sales consuming purchase lots FIFO.
func (s *Snapshot) CostBasis(ticker string) Money {
	return openLots(s.ledger, ticker, s.on).cost()
}

// AvgCost returns the average acquisition cost per share still held.
func (s *Snapshot) AvgCost(ticker string) Money {
	pos := s.Position(ticker)
	if pos.IsZero() {
		return M(0, s.Currency())
	}
	return s.CostBasis(ticker).Div(pos)
}

// FirstPurchase returns the purchase date of the oldest lot still held.
// The zero Date is returned when the position is empty.
func (s *Snapshot) FirstPurchase(ticker string) Date {
	return openLots(s.ledger, ticker, s.on).firstDate()
}

// Price returns the latest known price for a security, and whether one is
// known at all.
func (s *Snapshot) Price(ticker string) (Money, bool) {
	price, ok := s.prices[ticker]
	return price, ok
}

// MarketValue calculates the market value of a single security on the
// snapshot's date. Without a known price the position is marked at cost.
func (s *Snapshot) MarketValue(ticker string) Money {
	price, ok := s.Price(ticker)
	if !ok {
		return s.CostBasis(ticker)
	}
	return price.Mul(s.Position(ticker))
}

// GainLoss calculates the paper profit or loss on a security: the difference
// between its market value and its cost basis.
func (s *Snapshot) GainLoss(ticker string) Money {
	return s.MarketValue(ticker).Sub(s.CostBasis(ticker))
}

// GainLossPercent expresses the paper profit or loss relative to the cost basis.
func (s *Snapshot) GainLossPercent(ticker string) Percent {
	return s.GainLoss(ticker).Percentage(s.CostBasis(ticker))
}

// RealizedGains calculates the sum of all profits and losses locked in
// through sales of a security up to the snapshot's date, using FIFO costs.
func (s *Snapshot) RealizedGains(ticker string) Money {
	var realized Money
	var securityLots lots
	for _, tx := range s.ledger.Transactions(BySecurity(ticker)) {
		if s.on.Before(tx.When()) {
			break
		}
		switch t := tx.(type) {
		case Buy:
			securityLots = append(securityLots, lot{Date: t.Date, Quantity: t.Quantity, Cost: t.Cost()})
		case Sell:
			costOfSale := securityLots.fifoCostOfSelling(t.Quantity)
			realized = realized.Add(t.Proceeds().Sub(costOfSale))
			securityLots = securityLots.sell(t.Quantity)
		}
	}
	return realized
}

// TotalCostBasis returns the total acquisition cost of all held securities.
func (s *Snapshot) TotalCostBasis() Money {
	return s.sum(s.Securities(), s.CostBasis)
}

// TotalMarketValue returns the total market value of all held securities.
func (s *Snapshot) TotalMarketValue() Money {
	return s.sum(s.Securities(), s.MarketValue)
}

// TotalGainLoss returns the total paper profit or loss of the portfolio.
func (s *Snapshot) TotalGainLoss() Money {
	return s.TotalMarketValue().Sub(s.TotalCostBasis())
}

// TotalGainLossPercent expresses the total paper profit or loss relative to
// the total cost basis.
func (s *Snapshot) TotalGainLossPercent() Percent {
	return s.TotalGainLoss().Percentage(s.TotalCostBasis())
}

// TotalRealizedGains returns the realized profits and losses across all
// securities ever traded, including fully sold ones.
func (s *Snapshot) TotalRealizedGains() Money {
	return s.sum(s.ledger.Tickers(), s.RealizedGains)
}
