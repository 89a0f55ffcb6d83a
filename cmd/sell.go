package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocktracker"
	"github.com/google/subcommands"
)

type sellCmd struct {
	date     string
	security string
	quantity float64
	price    float64
	memo     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a stock sale in the ledger" }
func (*sellCmd) Usage() string {
	return `spt sell -s <ticker> [-q <quantity>] [-p <price>] [-d <date>] [-m <memo>]

  Records the sale of shares. If the quantity is missing all shares are
  sold; if the price is missing the current market price is used.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", stocktracker.Today().String(), "transaction date (YYYY-MM-DD)")
	f.StringVar(&c.security, "s", "", "security ticker")
	f.Float64Var(&c.quantity, "q", 0, "number of shares, if missing all shares are sold")
	f.Float64Var(&c.price, "p", 0, "sale price per share, if missing the current price is used")
	f.StringVar(&c.memo, "m", "", "an optional rationale or note for the transaction")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.security == "" || c.quantity < 0 || c.price < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := stocktracker.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	price := stocktracker.M(c.price, "")
	if c.price == 0 {
		quote, err := currentPrice(ctx, stocktracker.NormalizeTicker(c.security))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving sale price: %v\n", err)
			return subcommands.ExitFailure
		}
		price = quote.Price
	}

	tx := stocktracker.NewSell(day, c.memo, c.security, stocktracker.Q(c.quantity), price)
	recorded, err := recordTransaction(tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	sell := recorded.(stocktracker.Sell)
	fmt.Printf("Sold %s shares of %s at %s\n", sell.Quantity, sell.Security, sell.Price)
	return subcommands.ExitSuccess
}
