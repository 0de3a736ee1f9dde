package invest

import (
	"fmt"
	"strings"

	"github.com/simfone/invest/date"
)

// Frequency is the cadence of a recurring investment plan.
type Frequency string

// Canonical frequency tokens. The plan store uses short tokens; long
// names are accepted on read.
const (
	Daily   Frequency = "d"
	Weekly  Frequency = "w"
	Monthly Frequency = "m"
	Yearly  Frequency = "y"
)

// ParseFrequency parses a frequency token, short or long, case-insensitive.
func ParseFrequency(token string) (Frequency, error) {
	switch strings.ToLower(token) {
	case "d", "daily":
		return Daily, nil
	case "w", "weekly":
		return Weekly, nil
	case "m", "monthly":
		return Monthly, nil
	case "y", "yearly":
		return Yearly, nil
	default:
		return "", fmt.Errorf("unknown frequency token: %q", token)
	}
}

// Plan is a recurring investment definition. Plans are authored by
// another module and are read-only here; identity is (symbol, name).
type Plan struct {
	Name      string    // user-given plan name
	Symbol    string    // ticker symbol to invest in
	Amount    Money     // amount to invest per execution, always positive
	Frequency Frequency // cadence; an unknown token is kept and never due
	Start     date.Date // first day the plan may execute
}

// Key returns the execution-history key for this plan.
//
// Two distinct plans sharing both symbol and name collide on the same
// key and therefore share one idempotency slot per day.
func (p Plan) Key() string { return p.Symbol + "-" + p.Name }

// IsDueOn reports whether the plan's frequency rule indicates it should
// execute on the given day. Pure, no I/O.
//
//   - Before the start date a plan is never due.
//   - Daily plans are due every day once started.
//   - Weekly plans are due every 7th day counted from the start date.
//   - Monthly plans are due when the day of month matches the start's;
//     a plan started on the 31st never matches in shorter months.
//   - Yearly plans are due when the day of year matches the start's;
//     leap years shift the day of year after February 29th.
//   - An unrecognized frequency is never due.
func (p Plan) IsDueOn(today date.Date) bool {
	if today.Before(p.Start) {
		return false
	}
	switch p.Frequency {
	case Daily:
		return true
	case Weekly:
		return date.Days(p.Start, today)%7 == 0
	case Monthly:
		return today.Day() == p.Start.Day()
	case Yearly:
		return today.YearDay() == p.Start.YearDay()
	default:
		return false
	}
}
