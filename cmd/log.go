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

type logCmd struct {
	security string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display the transaction history, newest first" }
func (*logCmd) Usage() string {
	return `spt log [-s <ticker>]

  Lists the recorded transactions, newest first, with the realized
  gain attributed to each sale.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.security, "s", "", "only list transactions for this ticker")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	security := c.security
	if security != "" {
		security = stocktracker.NormalizeTicker(security)
	}

	report := stocktracker.NewTransactionReport(ledger, security)
	printMarkdown(renderer.HistoryMarkdown(report))

	return subcommands.ExitSuccess
}
