// Package quotedb persists fetched quotes in a local SQLite database.
//
// Every fetched quote is kept, so the store answers both "latest price" and
// "price history" questions. Prices are stored as decimal strings to avoid
// float drift.
package quotedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/etnz/stocktracker"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNoQuote reports that the store holds no quote for the requested symbol.
var ErrNoQuote = errors.New("no quote stored")

const schema = `
CREATE TABLE IF NOT EXISTS quotes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	symbol TEXT NOT NULL,
	price TEXT NOT NULL,
	currency TEXT NOT NULL,
	source TEXT NOT NULL,
	fetched_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_quotes_symbol_fetched_at ON quotes(symbol, fetched_at);
`

// DB is the quote store.
type DB struct {
	conn *sql.DB
	path string
	log  zerolog.Logger
}

// Open opens the quote database at path, creating file, directory, and
// schema when missing.
func Open(path string, logger zerolog.Logger) (*DB, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path to absolute: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// WAL for concurrent readers, NORMAL sync is plenty for re-fetchable quotes.
	connStr := absPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=foreign_keys(1)"

	conn, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open quote database: %w", err)
	}
	// Single writer keeps WAL happy for this single-user store.
	conn.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping quote database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize quote database schema: %w", err)
	}

	logger.Debug().Str("path", absPath).Msg("quote database opened")
	return &DB{conn: conn, path: absPath, log: logger}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Path returns the database file path.
func (db *DB) Path() string { return db.path }

// Save stores one fetched quote.
func (db *DB) Save(ctx context.Context, q stocktracker.Quote) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO quotes (symbol, price, currency, source, fetched_at) VALUES (?, ?, ?, ?, ?)`,
		q.Ticker,
		q.Price.Amount().String(),
		q.Price.Currency(),
		q.Source,
		q.FetchedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save quote for %s: %w", q.Ticker, err)
	}
	db.log.Debug().Str("symbol", q.Ticker).Str("source", q.Source).Msg("quote saved")
	return nil
}

// Latest returns the most recently fetched quote for a symbol.
// It returns ErrNoQuote when the store has none.
func (db *DB) Latest(ctx context.Context, symbol string) (stocktracker.Quote, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT symbol, price, currency, source, fetched_at
		 FROM quotes WHERE symbol = ?
		 ORDER BY fetched_at DESC, id DESC LIMIT 1`,
		symbol)

	q, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return stocktracker.Quote{}, fmt.Errorf("%s: %w", symbol, ErrNoQuote)
	}
	return q, err
}

// LatestAll returns the most recent quote of every symbol in the store,
// sorted by symbol.
func (db *DB) LatestAll(ctx context.Context) ([]stocktracker.Quote, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT q.symbol, q.price, q.currency, q.source, q.fetched_at
		 FROM quotes q
		 WHERE q.id = (
			SELECT id FROM quotes q2 WHERE q2.symbol = q.symbol
			ORDER BY q2.fetched_at DESC, q2.id DESC LIMIT 1
		 )
		 ORDER BY q.symbol`)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest quotes: %w", err)
	}
	defer rows.Close()

	var quotes []stocktracker.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// History returns up to limit quotes for a symbol, newest first.
// A limit of 0 or less means no limit.
func (db *DB) History(ctx context.Context, symbol string, limit int) ([]stocktracker.Quote, error) {
	if limit <= 0 {
		limit = -1 // SQLite: negative LIMIT means unlimited
	}
	rows, err := db.conn.QueryContext(ctx,
		`SELECT symbol, price, currency, source, fetched_at
		 FROM quotes WHERE symbol = ?
		 ORDER BY fetched_at DESC, id DESC LIMIT ?`,
		symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query quote history for %s: %w", symbol, err)
	}
	defer rows.Close()

	var quotes []stocktracker.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// HealthCheck pings the database and runs an integrity check.
func (db *DB) HealthCheck(ctx context.Context) error {
	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	var result string
	if err := db.conn.QueryRowContext(ctx, "PRAGMA integrity_check").Scan(&result); err != nil {
		return fmt.Errorf("integrity check query failed: %w", err)
	}
	if result != "ok" {
		return fmt.Errorf("integrity check failed: %s", result)
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanQuote.
type scanner interface {
	Scan(dest ...any) error
}

func scanQuote(s scanner) (stocktracker.Quote, error) {
	var symbol, price, currency, source, fetchedAt string
	if err := s.Scan(&symbol, &price, &currency, &source, &fetchedAt); err != nil {
		return stocktracker.Quote{}, err
	}

	value, err := decimal.NewFromString(price)
	if err != nil {
		return stocktracker.Quote{}, fmt.Errorf("invalid stored price %q for %s: %w", price, symbol, err)
	}
	at, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return stocktracker.Quote{}, fmt.Errorf("invalid stored timestamp %q for %s: %w", fetchedAt, symbol, err)
	}

	return stocktracker.Quote{
		Ticker:    symbol,
		Price:     stocktracker.M(value, currency),
		Source:    source,
		FetchedAt: at,
	}, nil
}
