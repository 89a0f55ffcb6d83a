package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocktracker"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date   string
	output string
	update bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "write the portfolio summary as JSON" }
func (*summaryCmd) Usage() string {
	return `spt summary [-d <date>] [-o <file>] [-u]

  Writes the portfolio summary document (totals and per-holding values)
  as JSON, to stdout or to a file.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", stocktracker.Today().String(), "date for the summary")
	f.StringVar(&c.output, "o", "", "write the summary to this file instead of stdout")
	f.BoolVar(&c.update, "u", false, "fetch the latest prices before computing the summary")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	report := stocktracker.NewSummaryReport(snapshot)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding summary: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output == "" {
		fmt.Println(string(data))
		return subcommands.ExitSuccess
	}

	if err := os.WriteFile(c.output, append(data, '\n'), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing summary to %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Summary written to %s\n", c.output)
	return subcommands.ExitSuccess
}
