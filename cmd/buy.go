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

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	date     string
	symbol   string
	quantity int64
	price    float64
	currency string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a manual buy in the ledger" }
func (*buyCmd) Usage() string {
	return `vest buy -s <symbol> -q <quantity> -p <price> [-d <date>] [-c <currency>]

  Appends a manual buy transaction to the shared ledger, the same file
  the recurring execution engine writes to.

Usage Example:
$ vest buy -s AAPL -q 5 -p 100
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Day of the trade, in YYYY-MM-DD format.")
	f.StringVar(&c.symbol, "s", "", "Ticker symbol of the security.")
	f.Int64Var(&c.quantity, "q", 0, "Number of whole shares.")
	f.Float64Var(&c.price, "p", 0, "Price per share.")
	f.StringVar(&c.currency, "c", invest.DefaultCurrency, "Currency of the price.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	tx := invest.NewBuy(on, c.symbol, c.quantity, invest.M(c.price, c.currency))
	return appendTransaction(tx)
}

// appendTransaction appends a single manual trade to the ledger file.
func appendTransaction(tx invest.Transaction) subcommands.ExitStatus {
	store := invest.NewLedgerFile(ledgerPath(), logger())
	if err := store.Append(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", store.Path, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended transaction to %s\n", store.Path)
	return subcommands.ExitSuccess
}
