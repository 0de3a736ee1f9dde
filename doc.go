// Package invest implements the recurring-investment core of the phone
// simulator's investing app: a recurring investment execution engine and
// an append-only portfolio ledger.
//
// The core functionalities include:
//   - Plan Import: reading user-defined recurring investment plans from
//     a shared store owned by the plan-authoring module, tolerant of the
//     store being absent or incompatible.
//   - Due-Date Evaluation: a pure calendar rule deciding, per plan and
//     per day, whether the plan should execute.
//   - Execution Engine: running due plans at most once per calendar day,
//     pricing them with a live quote lookup that degrades to a fixed
//     fallback price, and appending the resulting buys to the ledger.
//   - Ledger: an immutable, chronological, human-readable record of all
//     trades, manual and automatic, persisted as JSONL.
//   - Portfolio Aggregation: folding the full ledger into current
//     per-symbol holdings and position values on every read, with no
//     cached derived state.
//
// The package has no entry point of its own: it is invoked as a library
// by the investment screen. The `vest` command-line tool plays that host
// role for development and manual use.
package invest
