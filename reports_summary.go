package stocktracker

import "math"

// SummaryReport is the machine-readable overview of the portfolio. The JSON
// field names and rounding follow the document shape consumed by existing
// tooling, so they are part of the contract.
type SummaryReport struct {
	TotalValue       float64          `json:"total_value"`
	TotalCost        float64          `json:"total_cost"`
	TotalGainLoss    float64          `json:"total_gain_loss"`
	TotalPercentage  float64          `json:"total_percentage"`
	NumberOfHoldings int              `json:"number_of_holdings"`
	Holdings         []SummaryHolding `json:"holdings"`
}

// SummaryHolding is one position inside the summary document.
type SummaryHolding struct {
	Symbol             string  `json:"symbol"`
	Shares             float64 `json:"shares"`
	CurrentPrice       float64 `json:"current_price"`
	TotalValue         float64 `json:"total_value"`
	GainLoss           float64 `json:"gain_loss"`
	GainLossPercentage float64 `json:"gain_loss_percentage"`
}

// NewSummaryReport flattens a snapshot into the summary document.
// All amounts are rounded to two decimals.
func NewSummaryReport(s *Snapshot) *SummaryReport {
	report := &SummaryReport{Holdings: []SummaryHolding{}}

	for _, h := range s.Holdings() {
		report.Holdings = append(report.Holdings, SummaryHolding{
			Symbol:             h.Ticker,
			Shares:             round2(h.Quantity.AsFloat()),
			CurrentPrice:       round2(h.Price.AsFloat()),
			TotalValue:         round2(h.MarketValue.AsFloat()),
			GainLoss:           round2(h.GainLoss.AsFloat()),
			GainLossPercentage: round2(float64(h.GainLossPercent)),
		})
	}

	report.TotalValue = round2(s.TotalMarketValue().AsFloat())
	report.TotalCost = round2(s.TotalCostBasis().AsFloat())
	report.TotalGainLoss = round2(s.TotalGainLoss().AsFloat())
	report.TotalPercentage = round2(float64(s.TotalGainLossPercent()))
	report.NumberOfHoldings = len(report.Holdings)
	return report
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
