// Package statement reads credit-card statement workbooks, cleans the raw
// rows, and writes the processed multi-sheet workbook consumed by the later
// stages.
package statement

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/KJone1/shekel/internal/model"
)

// Column headers as the issuer exports them. The amount and date headers
// really do contain an embedded line break.
const (
	HeaderDate     = "תאריך\nעסקה"
	HeaderPayee    = "שם בית עסק"
	HeaderAmount   = "סכום\nחיוב"
	HeaderCategory = "ענף"
)

// ProcessedSheet is the sheet the report and export stages read from.
const ProcessedSheet = "Processed Data"

// skipRows is the number of banner rows above the header in a raw export.
const skipRows = 3

// RawRow is one statement line exactly as it appears in the workbook, all
// cells verbatim.
type RawRow struct {
	Date     string
	Payee    string
	Amount   string
	Category string
}

type columnIndex struct {
	date, payee, amount, category int
}

func findColumns(header []string) (columnIndex, error) {
	idx := columnIndex{date: -1, payee: -1, amount: -1, category: -1}
	for i, h := range header {
		switch h {
		case HeaderDate:
			idx.date = i
		case HeaderPayee:
			idx.payee = i
		case HeaderAmount:
			idx.amount = i
		case HeaderCategory:
			idx.category = i
		}
	}
	for _, c := range []struct {
		name string
		pos  int
	}{
		{HeaderDate, idx.date},
		{HeaderPayee, idx.payee},
		{HeaderAmount, idx.amount},
		{HeaderCategory, idx.category},
	} {
		if c.pos < 0 {
			return columnIndex{}, fmt.Errorf("column %q not found", c.name)
		}
	}
	return idx, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// ReadRaw loads a raw issuer export. The header sits below three banner
// rows; a missing required column is fatal.
func ReadRaw(path string) ([]RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("statement %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) <= skipRows {
		return nil, fmt.Errorf("statement %s: no header row after %d banner rows", path, skipRows)
	}

	idx, err := findColumns(rows[skipRows])
	if err != nil {
		return nil, fmt.Errorf("statement %s: %w", path, err)
	}

	var out []RawRow
	for _, row := range rows[skipRows+1:] {
		out = append(out, RawRow{
			Date:     cell(row, idx.date),
			Payee:    cell(row, idx.payee),
			Amount:   cell(row, idx.amount),
			Category: cell(row, idx.category),
		})
	}
	return out, nil
}

// ReadProcessed loads the Processed Data sheet of a cleaned workbook
// produced by WriteWorkbook.
func ReadProcessed(path string) ([]model.Transaction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(ProcessedSheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", ProcessedSheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook %s: sheet %q is empty", path, ProcessedSheet)
	}

	idx, err := findColumns(rows[0])
	if err != nil {
		return nil, fmt.Errorf("workbook %s: %w", path, err)
	}

	var txns []model.Transaction
	for i, row := range rows[1:] {
		txn, err := parseProcessedRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("workbook %s row %d: %w", path, i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseProcessedRow(row []string, idx columnIndex) (model.Transaction, error) {
	amount, err := parseAmount(cell(row, idx.amount))
	if err != nil {
		return model.Transaction{}, err
	}
	category := cell(row, idx.category)
	if category == "" {
		category = model.UnknownCategory
	}
	return model.Transaction{
		Date:     cell(row, idx.date),
		Payee:    cell(row, idx.payee),
		Amount:   amount,
		Category: category,
	}, nil
}
