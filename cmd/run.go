package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/simfone/invest"
	"github.com/simfone/invest/date"
)

// runCmd holds the flags for the 'run' subcommand.
type runCmd struct {
	date string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "execute the recurring investment plans due today" }
func (*runCmd) Usage() string {
	return `vest run [-d <date>]

  Imports the shared plan store and executes every plan that is due and
  has not executed yet on that day. Executed plans buy whole shares at
  the latest quoted price, falling back to the documented fallback price
  when the quote service is unavailable.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Day to run for, in YYYY-MM-DD format.")
}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	log := logger()
	engine := invest.NewEngine(
		invest.NewPlanFile(plansPath(), log),
		invest.NewHistoryFile(historyPath(), log),
		invest.NewLedgerFile(ledgerPath(), log),
		quotes(log),
		log,
	)
	engine.Fallback = fallbackPrice()

	count, err := engine.RunDueInvestments(ctx, on)
	if err != nil {
		// Failures inside a run are non-fatal by design: report them but
		// keep the count meaningful.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	fmt.Printf("Executed %d plan(s) on %s.\n", count, on)
	return subcommands.ExitSuccess
}
