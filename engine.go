package invest

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/simfone/invest/date"
)

// DefaultFallbackPrice is the documented default price substituted when
// the quote lookup fails, times out, or returns a non-positive price.
// It is a fixed value in the plan's currency, not a live one.
const DefaultFallbackPrice = 100

// PlanSource yields the recurring investment plans to consider.
type PlanSource interface {
	Import() []Plan
}

// HistoryStore persists the per-plan last-executed dates.
type HistoryStore interface {
	Load() map[string]date.Date
	Save(map[string]date.Date) error
}

// LedgerAppender receives the trades produced by the engine.
type LedgerAppender interface {
	Append(txs ...Transaction) error
}

// Engine executes due recurring investment plans at most once per
// calendar day each.
//
// A run only happens when explicitly triggered (typically on navigating
// to the investment view); there is no background timer. The engine
// holds no hidden state: every run takes today's date as a parameter
// and works off the stores it was built with.
type Engine struct {
	Plans   PlanSource
	History HistoryStore
	Ledger  LedgerAppender
	Quotes  QuoteProvider

	// Fallback overrides DefaultFallbackPrice when positive. Its value
	// is re-denominated in each plan's currency at use.
	Fallback Money

	log zerolog.Logger
}

// NewEngine wires an execution engine from its collaborators.
func NewEngine(plans PlanSource, history HistoryStore, ledger LedgerAppender, quotes QuoteProvider, log zerolog.Logger) *Engine {
	return &Engine{
		Plans:   plans,
		History: history,
		Ledger:  ledger,
		Quotes:  quotes,
		log:     log.With().Str("component", "engine").Logger(),
	}
}

// RunDueInvestments imports the plans, executes every plan that is due
// today and has not executed today yet, and persists the updated
// execution history.
//
// It returns the number of plans for which an execution attempt ran. A
// plan that purchased zero shares still counts and still consumes the
// day's idempotency slot. Failures never abort the run: they are
// collected and returned joined, and the in-memory history is not
// rolled back, so a failed history save can cause the next run to
// re-execute a plan that already ran.
func (e *Engine) RunDueInvestments(ctx context.Context, today date.Date) (int, error) {
	plans := e.Plans.Import()
	history := e.History.Load()

	var errs error
	executed := 0
	for _, plan := range plans {
		if !plan.IsDueOn(today) {
			continue
		}
		key := plan.Key()
		if last, ok := history[key]; ok && last == today {
			e.log.Debug().Str("plan", key).Msg("already executed today, skipped")
			continue
		}

		if err := e.executeOne(ctx, plan, today); err != nil {
			errs = errors.Join(errs, fmt.Errorf("plan %s: %w", key, err))
		}
		// The day's slot is consumed even when no shares were purchased.
		history[key] = today
		executed++
	}

	if err := e.History.Save(history); err != nil {
		e.log.Warn().Err(err).Msg("could not save execution history")
		errs = errors.Join(errs, err)
	}
	return executed, errs
}

// executeOne performs a single plan execution: price lookup with
// fallback, whole-share sizing, and the ledger write.
func (e *Engine) executeOne(ctx context.Context, plan Plan, today date.Date) error {
	price, err := e.Quotes.LatestPrice(ctx, plan.Symbol)
	if err != nil || !price.IsPositive() {
		fallback := e.fallbackPrice(plan)
		e.log.Warn().Err(err).
			Str("symbol", plan.Symbol).
			Stringer("fallback", fallback).
			Msg("quote unavailable, using fallback price")
		price = fallback
	}

	quantity := plan.Amount.DivWhole(price)
	if quantity <= 0 {
		// The price exceeds the plan amount: nothing to write, but the
		// caller still marks the plan as executed today.
		e.log.Info().Str("plan", plan.Key()).Stringer("price", price).Msg("amount buys zero shares, no trade written")
		return nil
	}

	tx := NewBuy(today, plan.Symbol, quantity, price)
	if err := e.Ledger.Append(tx); err != nil {
		return fmt.Errorf("could not append trade: %w", err)
	}
	e.log.Info().
		Str("plan", plan.Key()).
		Int64("quantity", quantity).
		Stringer("price", price).
		Msg("recurring investment executed")
	return nil
}

// fallbackPrice returns the configured fallback denominated in the
// plan's currency.
func (e *Engine) fallbackPrice(plan Plan) Money {
	if e.Fallback.IsPositive() {
		return e.Fallback.In(plan.Amount.Currency())
	}
	return M(DefaultFallbackPrice, plan.Amount.Currency())
}
