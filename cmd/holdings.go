package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"
	"github.com/simfone/invest"
	"github.com/simfone/invest/date"
	"github.com/simfone/invest/renderer"
)

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display current holdings and position values" }
func (*holdingsCmd) Usage() string {
	return `vest holdings

  Folds the full transaction ledger into current per-symbol holdings and
  position values. Symbols fully or over-sold are not shown.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := invest.NewLedgerFile(ledgerPath(), logger())
	ledger, err := store.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: ledger unavailable: %v\n", err)
		return subcommands.ExitFailure
	}

	quantities, values := ledger.Holdings()

	symbols := make([]string, 0, len(quantities))
	for symbol := range quantities {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)

	report := &renderer.Holdings{Date: date.Today().String()}
	for _, symbol := range symbols {
		report.Rows = append(report.Rows, renderer.HoldingRow{
			Symbol:   symbol,
			Quantity: quantities[symbol],
			Value:    values[symbol].String(),
		})
	}
	printMarkdown(renderer.RenderHoldings(report))
	return subcommands.ExitSuccess
}
