package stocktracker

import (
	"testing"
)

func TestNewPortfolioReport(t *testing.T) {
	quotes := []Quote{{Ticker: "AAPL", Price: USD(200)}, {Ticker: "MSFT", Price: USD(280)}}
	s := NewSnapshot(newTrackerLedger(t), MustParse("2025-03-01"), quotes)

	report := NewPortfolioReport(s)

	if report.Date != MustParse("2025-03-01") {
		t.Errorf("Date = %v, want 2025-03-01", report.Date)
	}
	if report.ReportingCurrency != "USD" {
		t.Errorf("ReportingCurrency = %q, want USD", report.ReportingCurrency)
	}
	if report.Time.IsZero() {
		t.Error("Time should record when the report was generated")
	}
	if len(report.Holdings) != 2 {
		t.Fatalf("Holdings = %d rows, want 2", len(report.Holdings))
	}
	if !report.TotalMarketValue.Equal(USD(2000)) {
		t.Errorf("TotalMarketValue = %v, want %v", report.TotalMarketValue, USD(2000))
	}
	if !report.TotalCostBasis.Equal(USD(2042.50)) {
		t.Errorf("TotalCostBasis = %v, want %v", report.TotalCostBasis, USD(2042.50))
	}
	if !report.TotalGainLoss.Equal(USD(-42.50)) {
		t.Errorf("TotalGainLoss = %v, want %v", report.TotalGainLoss, USD(-42.50))
	}
	if !report.TotalRealizedGains.Equal(USD(420)) {
		t.Errorf("TotalRealizedGains = %v, want %v", report.TotalRealizedGains, USD(420))
	}
}
