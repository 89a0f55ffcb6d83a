package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocktracker"
	"github.com/etnz/stocktracker/renderer"
	"github.com/google/subcommands"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	date   string
	update bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the holdings table with totals" }
func (*portfolioCmd) Usage() string {
	return `spt portfolio [-d <date>] [-u]

  Displays every held position with its cost basis, market value and
  gain/loss, using the latest stored quotes.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", stocktracker.Today().String(), "date for the report")
	f.BoolVar(&c.update, "u", false, "fetch the latest prices before rendering")
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := stocktracker.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	db, err := openQuotes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening quote database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	if c.update {
		if _, err := stocktracker.UpdateQuotes(ctx, ledger, providers(), db); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not update all prices: %v\n", err)
		}
	}

	quotes, err := db.LatestAll(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading quotes: %v\n", err)
		return subcommands.ExitFailure
	}

	snapshot := stocktracker.NewSnapshot(ledger, on, quotes)
	report := stocktracker.NewPortfolioReport(snapshot)
	printMarkdown(renderer.PortfolioMarkdown(report))

	return subcommands.ExitSuccess
}
