package stocktracker

import (
	"testing"
)

func TestNewTransactionReport(t *testing.T) {
	report := NewTransactionReport(newTrackerLedger(t), "")

	if report.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", report.Currency)
	}
	if len(report.Entries) != 4 {
		t.Fatalf("Entries = %d, want 4", len(report.Entries))
	}

	// newest first
	sale := report.Entries[0]
	if sale.Command != CmdSell || sale.Date != MustParse("2025-02-15") {
		t.Fatalf("Entries[0] = %+v, want the February 15 sale", sale)
	}
	if !sale.Amount.Equal(USD(2280)) {
		t.Errorf("sale Amount = %v, want %v", sale.Amount, USD(2280))
	}
	if !sale.Realized.Equal(USD(420)) {
		t.Errorf("sale Realized = %v, want %v", sale.Realized, USD(420))
	}

	first := report.Entries[3]
	if first.Command != CmdBuy || first.Date != MustParse("2025-01-15") {
		t.Fatalf("Entries[3] = %+v, want the January 15 buy", first)
	}
	if !first.Amount.Equal(USD(1500)) {
		t.Errorf("buy Amount = %v, want %v", first.Amount, USD(1500))
	}
	if !first.Realized.IsZero() {
		t.Errorf("buy Realized = %v, want zero", first.Realized)
	}
}

func TestNewTransactionReport_Filtered(t *testing.T) {
	report := NewTransactionReport(newTrackerLedger(t), "MSFT")

	if report.Security != "MSFT" {
		t.Errorf("Security = %q, want MSFT", report.Security)
	}
	if len(report.Entries) != 1 {
		t.Fatalf("Entries = %d, want 1", len(report.Entries))
	}
	if got := report.Entries[0]; got.Security != "MSFT" || !got.Amount.Equal(USD(1502.50)) {
		t.Errorf("Entries[0] = %+v, want the MSFT buy for $1,502.50", got)
	}
}

func TestNewTransactionReport_Empty(t *testing.T) {
	report := NewTransactionReport(NewLedger(), "")
	if len(report.Entries) != 0 {
		t.Errorf("Entries = %d, want 0", len(report.Entries))
	}
}
