package stocktracker

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultLedgerName is the ledger used when the user does not name one.
const DefaultLedgerName = "transactions"

// LedgerPath returns the file holding the named ledger inside the data directory.
func LedgerPath(dir, name string) string {
	return filepath.Join(dir, name+".jsonl")
}

// QuotesPath returns the quote database file inside the data directory.
func QuotesPath(dir string) string {
	return filepath.Join(dir, "quotes.db")
}

// LoadLedger loads the named ledger from the data directory.
// A missing file is not an error: it returns a new empty ledger with that
// name, so recording the first transaction needs no prior setup.
func LoadLedger(dir, name string) (*Ledger, error) {
	if name == "" {
		name = DefaultLedgerName
	}

	path := LedgerPath(dir, name)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		l := NewLedger()
		l.name = name
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	ledger.name = name
	return ledger, nil
}

// SaveLedger saves a ledger to its file within the data directory, rewriting
// it in canonical form (sorted by date, fixed key order).
func SaveLedger(dir string, ledger *Ledger) error {
	name := ledger.Name()
	if name == "" {
		return fmt.Errorf("cannot save ledger with an empty name")
	}

	path := LedgerPath(dir, name)

	// Ensure the directory for the ledger file exists.
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", path, err)
	}
	defer file.Close()

	return EncodeLedger(file, ledger)
}

// AppendTransaction appends a single transaction to the named ledger file
// without rewriting it. The file is created when missing. Callers are
// expected to validate the transaction against the loaded ledger first.
func AppendTransaction(dir, name string, tx Transaction) error {
	if name == "" {
		name = DefaultLedgerName
	}
	path := LedgerPath(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for appending: %w", path, err)
	}
	defer f.Close()

	return EncodeTransaction(f, tx)
}
