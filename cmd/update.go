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

type updateCmd struct{}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "fetch the current price for every held security"
}
func (*updateCmd) Usage() string              { return "spt update\n" }
func (c *updateCmd) SetFlags(f *flag.FlagSet) {}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
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

	quotes, err := stocktracker.UpdateQuotes(ctx, ledger, providers(), db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating prices: %v\n", err)
		if len(quotes) == 0 {
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.QuotesMarkdown(quotes))
	return subcommands.ExitSuccess
}
