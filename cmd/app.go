// Package cmd implements the CLI application hosting the investing core.
//
// The library itself has no process entry point: these commands play the
// role of the investment screen, triggering runs and recording manual
// trades against the same shared files.
package cmd

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/simfone/invest"
)

// Register registers all subcommands on the given commander.
func Register(c *subcommands.Commander) {
	// Load .env file if it exists.
	_ = godotenv.Load()

	c.Register(&runCmd{}, "engine")

	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&logCmd{}, "transactions")

	c.Register(&holdingsCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var plansFlag = flag.String("plans-file", "", "Path to the shared recurring plan store (JSON).\n If missing it will read the environment variable VEST_PLANS_FILE.")
var historyFlag = flag.String("history-file", "", "Path to the execution history file.\n If missing it will read the environment variable VEST_HISTORY_FILE.")
var ledgerFlag = flag.String("ledger-file", "", "Path to the transaction ledger file (JSONL format).\n If missing it will read the environment variable VEST_LEDGER_FILE.")

func plansPath() string   { return fallbackEnv(*plansFlag, "VEST_PLANS_FILE", "plans.json") }
func historyPath() string { return fallbackEnv(*historyFlag, "VEST_HISTORY_FILE", "history.json") }
func ledgerPath() string  { return fallbackEnv(*ledgerFlag, "VEST_LEDGER_FILE", "transactions.jsonl") }

// fallbackEnv resolves a setting: flag value, then environment, then default.
func fallbackEnv(flagValue, envName, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envName); v != "" {
		return v
	}
	return def
}

// quotes builds the HTTP quote provider from the environment.
func quotes(log zerolog.Logger) *invest.HTTPQuotes {
	url := fallbackEnv("", "VEST_QUOTE_URL", "https://www.tradegate.de/refresh.php?isin=%s")
	path := fallbackEnv("", "VEST_QUOTE_JSONPATH", "$.last")
	currency := fallbackEnv("", "VEST_QUOTE_CURRENCY", invest.DefaultCurrency)

	timeout := invest.DefaultQuoteTimeout
	if v := os.Getenv("VEST_QUOTE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			timeout = d
		}
	}
	return invest.NewHTTPQuotes(url, path, currency, timeout, log)
}

// fallbackPrice reads the configured fallback price, zero meaning the
// engine's documented default.
func fallbackPrice() invest.Money {
	if v := os.Getenv("VEST_FALLBACK_PRICE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return invest.M(f, "")
		}
	}
	return invest.Money{}
}

// logger builds the CLI logger, leveled by VEST_LOG_LEVEL.
func logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if v := os.Getenv("VEST_LOG_LEVEL"); v != "" {
		if l, err := zerolog.ParseLevel(v); err == nil {
			level = l
		}
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
