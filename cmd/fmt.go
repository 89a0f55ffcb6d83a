package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocktracker"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `spt fmt

  Validates and formats the ledger file. This command reads all
  transactions, validates them, applies available quick fixes (like
  resolving "sell all"), sorts them by date, and writes them back in a
  canonical JSONL form.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	formatted, err := ledger.Fmt()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting ledger %q: %v\n", ledger.Name(), err)
		return subcommands.ExitFailure
	}

	if err := stocktracker.SaveLedger(cfg.Dir, formatted); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger %q: %v\n", formatted.Name(), err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Finished formatting ledger %q.\n", formatted.Name())
	return subcommands.ExitSuccess
}
