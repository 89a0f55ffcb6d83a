package stocktracker

// Holding is the consolidated state of one security position: the shares
// held, what they cost, and what they are worth at the latest known price.
type Holding struct {
	Ticker          string
	Quantity        Quantity
	AvgCost         Money
	CostBasis       Money
	FirstPurchase   Date
	Price           Money // latest known price, or the average cost when none is known
	Priced          bool  // whether any quote is known for the ticker
	MarketValue     Money
	GainLoss        Money
	GainLossPercent Percent
}

// Holdings consolidates every security held on the snapshot's date into a
// row. Rows come out sorted by ticker; fully sold positions are omitted.
func (s *Snapshot) Holdings() []Holding {
	var holdings []Holding
	for ticker := range s.Securities() {
		price, priced := s.Price(ticker)
		if !priced {
			price = s.AvgCost(ticker)
		}
		holdings = append(holdings, Holding{
			Ticker:          ticker,
			Quantity:        s.Position(ticker),
			AvgCost:         s.AvgCost(ticker),
			CostBasis:       s.CostBasis(ticker),
			FirstPurchase:   s.FirstPurchase(ticker),
			Price:           price,
			Priced:          priced,
			MarketValue:     s.MarketValue(ticker),
			GainLoss:        s.GainLoss(ticker),
			GainLossPercent: s.GainLossPercent(ticker),
		})
	}
	return holdings
}
