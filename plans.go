package invest

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/simfone/invest/date"
)

// DefaultCurrency is assumed for plan amounts that carry no currency code.
const DefaultCurrency = "USD"

// planRecord is the on-disk shape of one plan in the shared store.
type planRecord struct {
	Name      string          `json:"name"`
	Symbol    string          `json:"symbol"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency,omitempty"`
	Frequency string          `json:"frequency"`
	Start     date.Date       `json:"start"`
}

// PlanFile reads recurring investment plans from the shared store file.
//
// The store is owned by the plan-authoring module and may not exist yet
// on first run, so every failure mode degrades to an empty plan list:
// an absent, unreadable or incompatible file is logged and yields no
// plans, never an error.
type PlanFile struct {
	Path string

	log zerolog.Logger
}

// NewPlanFile creates a plan importer for the given store file.
func NewPlanFile(path string, log zerolog.Logger) *PlanFile {
	return &PlanFile{Path: path, log: log.With().Str("component", "plans").Logger()}
}

// Import reads the shared plan store and returns the plans in store
// order. Records missing a symbol or a name, or with a non-positive
// amount, are skipped for this run. A record with an unrecognized
// frequency token is kept; the due-date rule treats it as never due.
func (f *PlanFile) Import() []Plan {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		f.log.Warn().Err(err).Str("path", f.Path).Msg("plan store not readable, no plans imported")
		return nil
	}

	var records []planRecord
	if err := json.Unmarshal(data, &records); err != nil {
		f.log.Warn().Err(err).Str("path", f.Path).Msg("plan store format mismatch, no plans imported")
		return nil
	}

	plans := make([]Plan, 0, len(records))
	for _, rec := range records {
		if rec.Symbol == "" || rec.Name == "" {
			f.log.Warn().Str("name", rec.Name).Str("symbol", rec.Symbol).Msg("plan record missing identity, skipped")
			continue
		}
		if !rec.Amount.IsPositive() {
			f.log.Warn().Str("plan", rec.Symbol+"-"+rec.Name).Stringer("amount", rec.Amount).Msg("plan amount not positive, skipped")
			continue
		}
		currency := rec.Currency
		if currency == "" {
			currency = DefaultCurrency
		}
		freq, err := ParseFrequency(rec.Frequency)
		if err != nil {
			// Keep the raw token: the plan survives but is never due.
			freq = Frequency(rec.Frequency)
		}
		plans = append(plans, Plan{
			Name:      rec.Name,
			Symbol:    rec.Symbol,
			Amount:    M(rec.Amount, currency),
			Frequency: freq,
			Start:     rec.Start,
		})
	}
	return plans
}
