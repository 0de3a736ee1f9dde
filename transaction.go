package invest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/simfone/invest/date"
)

// Action is a typed string identifying the side of a trade.
type Action string

// The two trade actions recorded in the ledger.
const (
	Buy  Action = "buy"
	Sell Action = "sell"
)

// ParseAction parses a string into an Action.
func ParseAction(s string) (Action, error) {
	switch Action(strings.ToLower(s)) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown action: %q", s)
	}
}

// Transaction is a single trade. Once appended to the ledger it is never
// mutated or deleted; the ordered sequence of transactions for a symbol
// is the sole source of truth for that symbol's position.
type Transaction struct {
	Action   Action    // buy or sell
	Date     date.Date // day the trade took place
	Symbol   string    // ticker symbol of the traded security
	Quantity int64     // whole share count, always positive
	Price    Money     // price per share, always positive
}

// NewBuy creates a new buy transaction.
func NewBuy(day date.Date, symbol string, quantity int64, price Money) Transaction {
	return Transaction{Action: Buy, Date: day, Symbol: symbol, Quantity: quantity, Price: price}
}

// NewSell creates a new sell transaction.
func NewSell(day date.Date, symbol string, quantity int64, price Money) Transaction {
	return Transaction{Action: Sell, Date: day, Symbol: symbol, Quantity: quantity, Price: price}
}

// Notional returns the trade's unsigned value: quantity times price.
func (t Transaction) Notional() Money { return t.Price.MulInt(t.Quantity) }

func (t Transaction) Equal(o Transaction) bool {
	return t.Action == o.Action && t.Date == o.Date && t.Symbol == o.Symbol &&
		t.Quantity == o.Quantity && t.Price.Equal(o.Price)
}

// Validate checks a transaction for correctness before it enters the
// ledger. Only field-level validity is checked: a sell exceeding the
// current position is a legal transaction (the aggregator filters
// over-sold symbols out of the holdings instead).
func (t Transaction) Validate() error {
	if t.Action != Buy && t.Action != Sell {
		return fmt.Errorf("unknown action: %q", t.Action)
	}
	if t.Date.IsZero() {
		return errors.New("transaction date is missing")
	}
	if t.Symbol == "" {
		return errors.New("transaction symbol is missing")
	}
	if t.Quantity <= 0 {
		return fmt.Errorf("transaction quantity must be positive, got %d", t.Quantity)
	}
	if !t.Price.IsPositive() {
		return fmt.Errorf("transaction price must be positive, got %s", t.Price)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Transaction
// with a canonical field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("action", t.Action)
	w.Append("date", t.Date)
	w.Append("symbol", t.Symbol)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price.value)
	w.Optional("currency", t.Price.cur)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// It handles the ledger format where price and currency are separate fields.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		Action   Action          `json:"action"`
		Date     date.Date       `json:"date"`
		Symbol   string          `json:"symbol"`
		Quantity int64           `json:"quantity"`
		Price    decimal.Decimal `json:"price"`
		Currency string          `json:"currency"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.Action = temp.Action
	t.Date = temp.Date
	t.Symbol = temp.Symbol
	t.Quantity = temp.Quantity
	t.Price = M(temp.Price, temp.Currency)
	return nil
}
