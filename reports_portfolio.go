package stocktracker

import "time"

// PortfolioReport represents a detailed view of the portfolio holdings at a
// specific date.
type PortfolioReport struct {
	Ledger            string
	Date              Date
	Time              time.Time // Generation time
	ReportingCurrency string
	Holdings          []Holding

	TotalCostBasis       Money
	TotalMarketValue     Money
	TotalGainLoss        Money
	TotalGainLossPercent Percent
	TotalRealizedGains   Money
}

// NewPortfolioReport consolidates a snapshot into the holdings table shown by
// the portfolio command.
func NewPortfolioReport(s *Snapshot) *PortfolioReport {
	return &PortfolioReport{
		Ledger:            s.Ledger(),
		Date:              s.On(),
		Time:              time.Now(),
		ReportingCurrency: s.Currency(),
		Holdings:          s.Holdings(),

		TotalCostBasis:       s.TotalCostBasis(),
		TotalMarketValue:     s.TotalMarketValue(),
		TotalGainLoss:        s.TotalGainLoss(),
		TotalGainLossPercent: s.TotalGainLossPercent(),
		TotalRealizedGains:   s.TotalRealizedGains(),
	}
}
