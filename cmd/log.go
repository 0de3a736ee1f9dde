package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/simfone/invest"
	"github.com/simfone/invest/renderer"
)

type logCmd struct{}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display the chronological log of all transactions" }
func (*logCmd) Usage() string {
	return `vest log

  Prints every transaction in the ledger, manual and automatic, in
  chronological order.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := invest.NewLedgerFile(ledgerPath(), logger())
	ledger, err := store.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: ledger unavailable: %v\n", err)
		return subcommands.ExitFailure
	}

	report := &renderer.TransactionLog{}
	for _, tx := range ledger.Transactions() {
		report.Rows = append(report.Rows, renderer.TransactionRow{
			Date:     tx.Date.String(),
			Action:   string(tx.Action),
			Symbol:   tx.Symbol,
			Quantity: tx.Quantity,
			Price:    tx.Price.String(),
		})
	}
	printMarkdown(renderer.RenderTransactionLog(report))
	return subcommands.ExitSuccess
}
