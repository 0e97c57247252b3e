// Package export writes the budget-app import CSV from a cleaned workbook's
// rows, remapping every row through the export rule table.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/KJone1/shekel/internal/model"
	"github.com/KJone1/shekel/internal/rules"
)

// Header is the fixed header row of the import CSV.
var Header = []string{"Date", "Payee", "Amount", "Category"}

// isoDate is the date layout the budget app expects.
const isoDate = "2006-01-02"

// dayFirstLayouts are the statement date formats accepted on input, tried
// in order.
var dayFirstLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	isoDate,
}

// Write emits the import CSV. Dates are reformatted from day-first source
// layouts to ISO 8601; a single unparseable date fails the whole export.
func Write(w io.Writer, txns []model.Transaction, table rules.Table) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txns {
		date, err := ReformatDate(t.Date)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		category := table.Map(t.Amount, t.Payee, t.Category)
		row := []string{date, t.Payee, t.Amount.String(), category}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	return cw.Error()
}

// ReformatDate parses a day-first statement date and renders it as
// YYYY-MM-DD. The calendar date is preserved exactly; no timezone applies.
func ReformatDate(s string) (string, error) {
	for _, layout := range dayFirstLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format(isoDate), nil
		}
	}
	return "", fmt.Errorf("unparseable date %q", s)
}
