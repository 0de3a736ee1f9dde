package invest

import (
	"iter"
	"sort"

	"github.com/simfone/invest/date"
)

// Ledger represents the append-only list of trade transactions.
//
// In a Ledger transactions are always in chronological order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append validates and appends transactions to this ledger and maintains
// the chronological order of transactions.
func (l *Ledger) Append(txs ...Transaction) error {
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return err
		}
	}
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
	return nil
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator that yields each transaction in ledger order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// OldestTransactionDate returns the date of the earliest transaction in
// the ledger, or the zero date if the ledger is empty.
func (l *Ledger) OldestTransactionDate() date.Date {
	if len(l.transactions) == 0 {
		return date.Date{}
	}
	return l.transactions[0].Date
}

// stableSort sorts the ledger by transaction date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Holdings folds the full ledger into current per-symbol positions.
//
// It returns the net share quantity and the net invested value
// (quantity times price, signed by action) per symbol. Symbols whose net
// quantity ends at or below zero are absent from both maps: a fully or
// over-sold position must not appear in holdings or values. Negative
// running quantities are allowed mid-fold; nothing is rejected here.
//
// The result is derived state: it is recomputed from scratch on every
// call and never cached.
func (l *Ledger) Holdings() (quantities map[string]int64, values map[string]Money) {
	quantities = make(map[string]int64)
	values = make(map[string]Money)

	for _, tx := range l.transactions {
		qty, notional := tx.Quantity, tx.Notional()
		if tx.Action == Sell {
			qty, notional = -qty, notional.Neg()
		}
		quantities[tx.Symbol] += qty
		values[tx.Symbol] = values[tx.Symbol].Add(notional)
	}

	for symbol, qty := range quantities {
		if qty <= 0 {
			delete(quantities, symbol)
			delete(values, symbol)
		}
	}
	return quantities, values
}
