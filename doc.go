// Package stocktracker provides the functions and types for tracking a stock
// portfolio. It is designed to be local-first and auditable, keeping the user
// in full control of their transaction history.
//
// The core functionalities include:
//   - Ledger Management: Recording buy and sell transactions in an
//     append-friendly, chronological JSONL file.
//   - Quote Fetching: Retrieving current prices from market data providers
//     (Alpha Vantage, Finnhub) with an offline demo fallback, and persisting
//     them in a local SQLite quote store.
//   - Valuation: A stateless snapshot engine that combines the ledger with the
//     latest quotes to compute positions, FIFO cost basis, market value, and
//     profit or loss, per security and for the whole portfolio.
//   - Reports: Holdings, transaction history, and a machine-readable summary
//     document derived from a snapshot.
//
// This package serves as the foundational logic for the `spt` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package stocktracker
