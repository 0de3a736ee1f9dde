// Package renderer renders portfolio reports to markdown strings.
// Callers decide how to display the markdown (terminal, file, ...).
package renderer

import (
	"fmt"
	"strings"
	"text/template"
)

// HoldingRow is one line of the holdings report.
type HoldingRow struct {
	Symbol   string
	Quantity int64
	Value    string // formatted position value
}

// Holdings is the data for the holdings report.
type Holdings struct {
	Date string
	Rows []HoldingRow
}

const holdingsTemplate = `# Holdings on {{.Date}}

{{if .Rows -}}
| Symbol | Quantity | Value |
|--------|---------:|------:|
{{range .Rows -}}
| {{.Symbol}} | {{.Quantity}} | {{.Value}} |
{{end}}
{{- else -}}
No open positions.
{{- end}}
`

// RenderHoldings renders the holdings report to a markdown string.
func RenderHoldings(h *Holdings) string {
	return renderTemplate("holdings", holdingsTemplate, h)
}

// TransactionRow is one line of the transaction log report.
type TransactionRow struct {
	Date     string
	Action   string
	Symbol   string
	Quantity int64
	Price    string
}

// TransactionLog is the data for the transaction log report.
type TransactionLog struct {
	Rows []TransactionRow
}

const transactionLogTemplate = `# Transaction log

{{if .Rows -}}
| Date | Action | Symbol | Quantity | Price |
|------|--------|--------|---------:|------:|
{{range .Rows -}}
| {{.Date}} | {{.Action}} | {{.Symbol}} | {{.Quantity}} | {{.Price}} |
{{end}}
{{- else -}}
The ledger is empty.
{{- end}}
`

// RenderTransactionLog renders the transaction log to a markdown string.
func RenderTransactionLog(l *TransactionLog) string {
	return renderTemplate("transactions", transactionLogTemplate, l)
}

// renderTemplate executes a template against data. Templates are
// compile-time constants, so execution errors are programming errors and
// are rendered in place rather than returned.
func renderTemplate(name, text string, data any) string {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return fmt.Sprintf("template error: %v", err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("template error: %v", err)
	}
	return b.String()
}
