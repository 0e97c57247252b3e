package model

import (
	"github.com/shopspring/decimal"
)

// UnknownCategory is the sentinel assigned when the statement carries no
// category for a row.
const UnknownCategory = "Unknown"

// Transaction represents one statement row. The date is carried verbatim as
// the issuer exported it (day-first); only the export stage parses and
// reformats it. Category holds the issuer's original label until a stage
// remaps it.
type Transaction struct {
	Date     string
	Payee    string          // merchant display name, "" if missing
	Amount   decimal.Decimal // positive = expense, negative = refund
	Category string          // UnknownCategory if missing
}

// Entry is one (payee, amount) pair inside a category summary.
type Entry struct {
	Payee  string
	Amount decimal.Decimal
}

// CategorySummary aggregates the transactions mapped to a single category.
// Zero-valued summaries stand in for declared categories with no rows.
type CategorySummary struct {
	Total        decimal.Decimal
	Count        int
	Average      decimal.Decimal
	Percent      decimal.Decimal // share of the grand total, 0-100
	Transactions []Entry         // grouping order
}
