package stocktracker

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"
)

// Ledger represents the list of trades of a portfolio.
//
// In a Ledger transactions are always in chronological order.
type Ledger struct {
	name         string
	transactions []Transaction
	currency     string // explicit reporting currency, empty until set
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
	}
}

// Name returns the ledger's name, set by the loader from its file path.
func (l *Ledger) Name() string { return l.name }

// SetCurrency fixes the ledger's reporting currency. Transactions recorded
// without a currency inherit it during validation.
func (l *Ledger) SetCurrency(currency string) { l.currency = currency }

// Currency returns the ledger's currency: the explicitly set one, otherwise
// the currency of the first priced transaction, otherwise the default.
func (l *Ledger) Currency() string {
	if l.currency != "" {
		return l.currency
	}
	for _, tx := range l.transactions {
		switch v := tx.(type) {
		case Buy:
			if c := v.Currency(); c != "" {
				return c
			}
		case Sell:
			if c := v.Currency(); c != "" {
				return c
			}
		}
	}
	return DefaultCurrency
}

// Validate checks a transaction for correctness and applies quick fixes where
// applicable (e.g., resolving "sell all"). It returns the validated (and
// potentially modified) transaction or an error detailing any validation failures.
func (l *Ledger) Validate(tx Transaction) (Transaction, error) {
	var err error
	switch v := tx.(type) {
	case Buy:
		tx, err = v.Validate(l)
	case Sell:
		tx, err = v.Validate(l)
	default:
		return tx, fmt.Errorf("unsupported transaction type for validation: %T %v", tx, tx)
	}
	if err != nil {
		return tx, fmt.Errorf("invalid %s transaction on %v: %w", tx.What(), tx.When(), err)
	}
	return tx, nil
}

// Append appends transactions to this ledger and maintains the chronological order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort() // Ensure the ledger remains sorted after appending
}

// Record validates a transaction and appends it to the ledger.
func (l *Ledger) Record(tx Transaction) (Transaction, error) {
	tx, err := l.Validate(tx)
	if err != nil {
		return tx, err
	}
	l.Append(tx)
	return tx, nil
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Fmt re-validates every transaction in chronological order and returns a new
// ledger with all quick fixes applied (normalized tickers, resolved "sell all"
// quantities, filled currencies). Saving the result yields the canonical form.
func (l *Ledger) Fmt() (*Ledger, error) {
	out := NewLedger()
	out.name = l.name
	out.currency = l.currency
	for _, tx := range l.Transactions() {
		if _, err := out.Record(tx); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Transactions returns an iterator that yields each transaction in its original order.
// Without filters every transaction is yielded, otherwise a transaction is
// yielded if any filter accepts it.
func (l Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	// The returned iterator preserves the original order of transactions in the ledger.
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// stableSort sorts the ledger by transaction date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].When().Before(l.transactions[j].When())
	})
}

// OldestTransactionDate returns the date of the earliest transaction in the ledger.
// It returns the zero date if the ledger has no transactions.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].When()
}

// NewestTransactionDate returns the date of the latest transaction in the ledger.
// It returns the zero date if the ledger has no transactions.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].When()
}

// Position computes the number of shares of a ticker held on a specific date.
func (l *Ledger) Position(ticker string, on Date) Quantity {
	var pos Quantity
	for _, tx := range l.transactions {
		if tx.When().After(on) {
			// The ledger is sorted by date, so it's safe to break.
			break
		}
		switch v := tx.(type) {
		case Buy:
			if v.Security == ticker {
				pos = pos.Add(v.Quantity)
			}
		case Sell:
			if v.Security == ticker {
				pos = pos.Sub(v.Quantity)
			}
		}
	}
	return pos
}

// Tickers iterates over the unique tickers that appear in the ledger, in
// lexical order.
func (l *Ledger) Tickers() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, tx := range l.transactions {
			switch v := tx.(type) {
			case Buy:
				visited[v.Security] = struct{}{}
			case Sell:
				visited[v.Security] = struct{}{}
			}
		}
		tickers := slices.Collect(maps.Keys(visited))
		slices.Sort(tickers)
		for _, ticker := range tickers {
			if !yield(ticker) {
				return
			}
		}
	}
}

// HeldTickers iterates, in lexical order, over the tickers with a strictly
// positive position on the given date. These are the symbols worth a quote.
func (l *Ledger) HeldTickers(on Date) iter.Seq[string] {
	return func(yield func(string) bool) {
		for ticker := range l.Tickers() {
			if !l.Position(ticker, on).IsPositive() {
				continue
			}
			if !yield(ticker) {
				return
			}
		}
	}
}

// BySecurity returns a predicate that filters transactions by ticker.
func BySecurity(ticker string) func(Transaction) bool {
	return func(tx Transaction) bool {
		switch v := tx.(type) {
		case Buy:
			return v.Security == ticker
		case Sell:
			return v.Security == ticker
		default:
			return false
		}
	}
}

// ByCommand returns a predicate that filters transactions by command type.
func ByCommand(what CommandType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.What() == what }
}
