package stocktracker

import (
	"testing"
	"time"
)

// newTestLots builds two lots: 10 shares for $1,000 and 5 shares for $1,000.
func newTestLots() lots {
	return lots{
		{Date: NewDate(2025, time.January, 10), Quantity: Q(10), Cost: USD(1000)},
		{Date: NewDate(2025, time.February, 10), Quantity: Q(5), Cost: USD(1000)},
	}
}

func TestLots_FifoCostOfSelling(t *testing.T) {
	tests := []struct {
		name string
		sell Quantity
		want Money
	}{
		{"part of the first lot", Q(3), USD(300)},
		{"exactly the first lot", Q(10), USD(1000)},
		{"across both lots", Q(12), USD(1400)}, // 1000 + 2/5 of 1000
		{"everything", Q(15), USD(2000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := newTestLots().fifoCostOfSelling(tt.sell); !got.Equal(tt.want) {
				t.Errorf("fifoCostOfSelling(%v) = %v, want %v", tt.sell, got, tt.want)
			}
		})
	}
}

func TestLots_Sell(t *testing.T) {
	t.Run("partial sale keeps the lot date", func(t *testing.T) {
		remaining := newTestLots().sell(Q(12))
		if len(remaining) != 1 {
			t.Fatalf("sell(12) left %d lots, want 1", len(remaining))
		}
		if got, want := remaining[0].Date, NewDate(2025, time.February, 10); got != want {
			t.Errorf("remaining lot date = %v, want %v", got, want)
		}
		if !remaining[0].Quantity.Equal(Q(3)) {
			t.Errorf("remaining quantity = %v, want 3", remaining[0].Quantity)
		}
		if !remaining[0].Cost.Equal(USD(600)) {
			t.Errorf("remaining cost = %v, want %v", remaining[0].Cost, USD(600))
		}
	})

	t.Run("full sale empties the lots", func(t *testing.T) {
		if remaining := newTestLots().sell(Q(15)); len(remaining) != 0 {
			t.Errorf("sell(15) left %d lots, want 0", len(remaining))
		}
	})
}

func TestLots_Views(t *testing.T) {
	held := newTestLots()
	if got := held.quantity(); !got.Equal(Q(15)) {
		t.Errorf("quantity() = %v, want 15", got)
	}
	if got := held.cost(); !got.Equal(USD(2000)) {
		t.Errorf("cost() = %v, want %v", got, USD(2000))
	}
	if got, want := held.firstDate(), NewDate(2025, time.January, 10); got != want {
		t.Errorf("firstDate() = %v, want %v", got, want)
	}
	if got := (lots{}).firstDate(); !got.IsZero() {
		t.Errorf("empty lots firstDate() = %v, want the zero date", got)
	}
}

func TestOpenLots(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		NewBuy(MustParse("2025-01-15"), "", "AAPL", Q(10), USD(150)),
		NewBuy(MustParse("2025-02-01"), "", "AAPL", Q(5), USD(180)),
		NewSell(MustParse("2025-02-15"), "", "AAPL", Q(12), USD(190)),
		NewBuy(MustParse("2025-02-20"), "", "MSFT", Q(5), USD(300)), // other ticker, ignored
	)

	t.Run("before the sale", func(t *testing.T) {
		open := openLots(ledger, "AAPL", MustParse("2025-02-10"))
		if len(open) != 2 {
			t.Fatalf("openLots() = %d lots, want 2", len(open))
		}
		if got := open.quantity(); !got.Equal(Q(15)) {
			t.Errorf("quantity() = %v, want 15", got)
		}
		if got := open.cost(); !got.Equal(USD(2400)) {
			t.Errorf("cost() = %v, want %v", got, USD(2400))
		}
	})

	t.Run("after the sale", func(t *testing.T) {
		// the sale consumed the whole first lot and 2 shares of the second
		open := openLots(ledger, "AAPL", MustParse("2025-03-01"))
		if len(open) != 1 {
			t.Fatalf("openLots() = %d lots, want 1", len(open))
		}
		if got := open.quantity(); !got.Equal(Q(3)) {
			t.Errorf("quantity() = %v, want 3", got)
		}
		if got := open.cost(); !got.Equal(USD(540)) {
			t.Errorf("cost() = %v, want %v", got, USD(540))
		}
		if got, want := open.firstDate(), MustParse("2025-02-01"); got != want {
			t.Errorf("firstDate() = %v, want %v", got, want)
		}
	})
}
