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

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "fetch the current price for the given tickers" }
func (*quoteCmd) Usage() string {
	return `spt quote <ticker> [<ticker>...]

  Fetches the current price for each ticker, whether held or not, and
  saves it to the quote database.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	db, err := openQuotes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening quote database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	var quotes []stocktracker.Quote
	for _, arg := range f.Args() {
		ticker := stocktracker.NormalizeTicker(arg)
		if err := stocktracker.ValidateTicker(ticker); err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %q: %v\n", arg, err)
			continue
		}
		q, err := stocktracker.FetchQuote(providers(), ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching %s: %v\n", ticker, err)
			continue
		}
		if err := db.Save(ctx, q); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving quote for %s: %v\n", ticker, err)
			continue
		}
		quotes = append(quotes, q)
	}

	if len(quotes) == 0 {
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.QuotesMarkdown(quotes))
	return subcommands.ExitSuccess
}
