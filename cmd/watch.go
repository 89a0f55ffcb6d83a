package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/stocktracker"
	"github.com/etnz/stocktracker/quotedb"
	"github.com/etnz/stocktracker/renderer"
	"github.com/etnz/stocktracker/scheduler"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type watchCmd struct {
	every time.Duration
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "refresh quotes periodically until interrupted" }
func (*watchCmd) Usage() string {
	return `spt watch [-every <duration>]

  Refreshes the price of every held security on a fixed interval and
  renders the portfolio after each pass. Stop with Ctrl+C.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.every, "every", 15*time.Minute, "refresh interval")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.every <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -every must be a positive duration")
		return subcommands.ExitUsageError
	}

	db, err := openQuotes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening quote database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	job := &refreshJob{ctx: ctx, db: db}
	sched := scheduler.New(log.Logger)
	if err := sched.Add(fmt.Sprintf("@every %s", c.every), job); err != nil {
		fmt.Fprintf(os.Stderr, "Error scheduling refresh: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Watching quotes every %s. Press Ctrl+C to stop.\n", c.every)
	sched.RunNow(job)
	sched.Start()
	<-ctx.Done()
	sched.Stop()

	return subcommands.ExitSuccess
}

// refreshJob reloads the ledger and refreshes its quotes, so positions opened
// while watching are picked up on the next pass.
type refreshJob struct {
	ctx context.Context
	db  *quotedb.DB
}

func (j *refreshJob) Name() string { return "quote-refresh" }

func (j *refreshJob) Run() error {
	ledger, err := loadLedger()
	if err != nil {
		return err
	}
	if _, err := stocktracker.UpdateQuotes(j.ctx, ledger, providers(), j.db); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not update all prices: %v\n", err)
	}

	quotes, err := j.db.LatestAll(j.ctx)
	if err != nil {
		return err
	}
	snapshot := stocktracker.NewSnapshot(ledger, stocktracker.Today(), quotes)
	printMarkdown(renderer.PortfolioMarkdown(stocktracker.NewPortfolioReport(snapshot)))
	return nil
}
