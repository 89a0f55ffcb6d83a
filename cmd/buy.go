package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocktracker"
	"github.com/google/subcommands"
)

type buyCmd struct {
	date     string
	security string
	quantity float64
	price    float64
	memo     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a stock purchase in the ledger" }
func (*buyCmd) Usage() string {
	return `spt buy -s <ticker> -q <quantity> -p <price> [-d <date>] [-m <memo>]

  Records the purchase of shares at a given price per share.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", stocktracker.Today().String(), "transaction date (YYYY-MM-DD)")
	f.StringVar(&c.security, "s", "", "security ticker")
	f.Float64Var(&c.quantity, "q", 0, "number of shares")
	f.Float64Var(&c.price, "p", 0, "purchase price per share")
	f.StringVar(&c.memo, "m", "", "an optional rationale or note for the transaction")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.security == "" || c.quantity <= 0 || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := stocktracker.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	// The currency is left empty so validation fills in the ledger's one.
	tx := stocktracker.NewBuy(day, c.memo, c.security, stocktracker.Q(c.quantity), stocktracker.M(c.price, ""))
	recorded, err := recordTransaction(tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	buy := recorded.(stocktracker.Buy)
	fmt.Printf("Added %s shares of %s at %s\n", buy.Quantity, buy.Security, buy.Price)
	return subcommands.ExitSuccess
}
