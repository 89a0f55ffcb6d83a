package stocktracker

import "slices"

// TransactionReport lists recorded transactions, newest first.
type TransactionReport struct {
	Ledger   string
	Security string // optional ticker filter, empty for all
	Currency string
	Entries  []TransactionEntry
}

// TransactionEntry is one ledger line, enriched with the amounts shown by
// the log command.
type TransactionEntry struct {
	Date     Date
	Command  CommandType
	Security string
	Quantity Quantity
	Price    Money
	Amount   Money // quantity times price
	Realized Money // for sells, proceeds minus the FIFO cost of the sold shares
	Memo     string
}

// NewTransactionReport collects the ledger's transactions newest first,
// optionally narrowed to a single ticker.
func NewTransactionReport(ledger *Ledger, security string) *TransactionReport {
	report := &TransactionReport{
		Ledger:   ledger.Name(),
		Security: security,
		Currency: ledger.Currency(),
		Entries:  []TransactionEntry{},
	}

	var filters []func(Transaction) bool
	if security != "" {
		filters = append(filters, BySecurity(security))
	}

	// Track open lots per ticker to attribute a realized gain to each sale.
	open := make(map[string]lots)

	for _, tx := range ledger.Transactions(filters...) {
		switch t := tx.(type) {
		case Buy:
			open[t.Security] = append(open[t.Security], lot{Date: t.Date, Quantity: t.Quantity, Cost: t.Cost()})
			report.Entries = append(report.Entries, TransactionEntry{
				Date:     t.Date,
				Command:  CmdBuy,
				Security: t.Security,
				Quantity: t.Quantity,
				Price:    t.Price,
				Amount:   t.Cost(),
				Memo:     t.Memo,
			})
		case Sell:
			costOfSale := open[t.Security].fifoCostOfSelling(t.Quantity)
			open[t.Security] = open[t.Security].sell(t.Quantity)
			report.Entries = append(report.Entries, TransactionEntry{
				Date:     t.Date,
				Command:  CmdSell,
				Security: t.Security,
				Quantity: t.Quantity,
				Price:    t.Price,
				Amount:   t.Proceeds(),
				Realized: t.Proceeds().Sub(costOfSale),
				Memo:     t.Memo,
			})
		}
	}

	// The ledger iterates oldest first; the log reads newest first.
	slices.Reverse(report.Entries)
	return report
}
