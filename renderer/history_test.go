package renderer

import (
	"testing"

	"github.com/etnz/stocktracker"
)

func TestHistoryMarkdown(t *testing.T) {
	report := &stocktracker.TransactionReport{
		Currency: "USD",
		Entries: []stocktracker.TransactionEntry{
			{
				Date:     stocktracker.MustParse("2025-02-15"),
				Command:  stocktracker.CmdSell,
				Security: "AAPL",
				Quantity: stocktracker.Q(12),
				Price:    usd(190),
				Amount:   usd(2280),
				Realized: usd(420),
			},
			{
				Date:     stocktracker.MustParse("2025-01-15"),
				Command:  stocktracker.CmdBuy,
				Security: "AAPL",
				Quantity: stocktracker.Q(10),
				Price:    usd(150),
				Amount:   usd(1500),
			},
		},
	}

	want := `# Transaction History

| Date | Symbol | Type | Shares | Price | Amount | Realized |
|:---|:---|:---|---:|---:|---:|---:|
| 2025-02-15 | AAPL | sell | 12 | $190.00 | $2,280.00 | +$420.00 |
| 2025-01-15 | AAPL | buy | 10 | $150.00 | $1,500.00 | - |
`
	if got := HistoryMarkdown(report); got != want {
		t.Errorf("HistoryMarkdown() =\n%s\nwant\n%s", got, want)
	}
}

func TestHistoryMarkdown_Filtered(t *testing.T) {
	report := &stocktracker.TransactionReport{
		Security: "MSFT",
		Currency: "USD",
		Entries: []stocktracker.TransactionEntry{
			{
				Date:     stocktracker.MustParse("2025-01-16"),
				Command:  stocktracker.CmdBuy,
				Security: "MSFT",
				Quantity: stocktracker.Q(5),
				Price:    usd(300.50),
				Amount:   usd(1502.50),
			},
		},
	}

	want := `# Transaction History for MSFT

| Date | Symbol | Type | Shares | Price | Amount | Realized |
|:---|:---|:---|---:|---:|---:|---:|
| 2025-01-16 | MSFT | buy | 5 | $300.50 | $1,502.50 | - |
`
	if got := HistoryMarkdown(report); got != want {
		t.Errorf("HistoryMarkdown() =\n%s\nwant\n%s", got, want)
	}
}

func TestHistoryMarkdown_Empty(t *testing.T) {
	report := &stocktracker.TransactionReport{Currency: "USD", Entries: []stocktracker.TransactionEntry{}}

	want := `# Transaction History

No transactions found.
`
	if got := HistoryMarkdown(report); got != want {
		t.Errorf("HistoryMarkdown() = %q, want %q", got, want)
	}
}
