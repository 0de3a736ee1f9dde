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

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	date     string
	symbol   string
	quantity int64
	price    float64
	currency string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a manual sell in the ledger" }
func (*sellCmd) Usage() string {
	return `vest sell -s <symbol> -q <quantity> -p <price> [-d <date>] [-c <currency>]

  Appends a manual sell transaction to the shared ledger. Selling more
  than held is not rejected; the over-sold symbol disappears from the
  holdings report instead.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Day of the trade, in YYYY-MM-DD format.")
	f.StringVar(&c.symbol, "s", "", "Ticker symbol of the security.")
	f.Int64Var(&c.quantity, "q", 0, "Number of whole shares.")
	f.Float64Var(&c.price, "p", 0, "Price per share.")
	f.StringVar(&c.currency, "c", invest.DefaultCurrency, "Currency of the price.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	tx := invest.NewSell(on, c.symbol, c.quantity, invest.M(c.price, c.currency))
	return appendTransaction(tx)
}
