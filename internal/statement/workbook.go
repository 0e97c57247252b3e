package statement

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/KJone1/shekel/internal/model"
)

const (
	categorySumsSheet = "Category Sums"
	topAmountsSheet   = "Top 5 Amounts"
	topAmountsCount   = 5
)

// WriteWorkbook writes the cleaned transactions as a three-sheet workbook:
// the full table, per-category sums, and the five largest transactions.
// Every sheet gets centered cells and auto-fit column widths.
func WriteWorkbook(path string, txns []model.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ProcessedSheet); err != nil {
		return fmt.Errorf("renaming default sheet: %w", err)
	}
	for _, name := range []string{categorySumsSheet, topAmountsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %q: %w", name, err)
		}
	}

	header := []string{HeaderDate, HeaderPayee, HeaderAmount, HeaderCategory}
	if err := writeSheet(f, ProcessedSheet, header, transactionRows(txns)); err != nil {
		return err
	}
	if err := writeSheet(f, categorySumsSheet, []string{HeaderCategory, HeaderAmount}, categorySumRows(txns)); err != nil {
		return err
	}
	if err := writeSheet(f, topAmountsSheet, header, transactionRows(topAmounts(txns))); err != nil {
		return err
	}

	if err := styleWorkbook(f); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func transactionRows(txns []model.Transaction) [][]any {
	rows := make([][]any, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, []any{t.Date, t.Payee, t.Amount.InexactFloat64(), t.Category})
	}
	return rows
}

// categorySumRows groups by category, ascending by name.
func categorySumRows(txns []model.Transaction) [][]any {
	totals := make(map[string]float64)
	var order []string
	for _, t := range txns {
		if _, ok := totals[t.Category]; !ok {
			order = append(order, t.Category)
		}
		totals[t.Category] += t.Amount.InexactFloat64()
	}
	sort.Strings(order)

	rows := make([][]any, 0, len(order))
	for _, cat := range order {
		rows = append(rows, []any{cat, totals[cat]})
	}
	return rows
}

// topAmounts returns the n largest transactions by amount, ties kept in
// input order.
func topAmounts(txns []model.Transaction) []model.Transaction {
	top := make([]model.Transaction, len(txns))
	copy(top, txns)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Amount.GreaterThan(top[j].Amount)
	})
	if len(top) > topAmountsCount {
		top = top[:topAmountsCount]
	}
	return top
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any) error {
	for i, h := range header {
		cellRef, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}
		if err := f.SetCellValue(sheet, cellRef, h); err != nil {
			return fmt.Errorf("sheet %q header: %w", sheet, err)
		}
	}
	for r, row := range rows {
		for c, v := range row {
			cellRef, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("sheet %q: %w", sheet, err)
			}
			if err := f.SetCellValue(sheet, cellRef, v); err != nil {
				return fmt.Errorf("sheet %q row %d: %w", sheet, r+2, err)
			}
		}
	}
	return nil
}

// styleWorkbook centers every cell and widens each column to its longest
// value plus padding.
func styleWorkbook(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating cell style: %w", err)
	}

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return fmt.Errorf("styling sheet %q: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}

		widths := make([]int, 0)
		for _, row := range rows {
			for c, v := range row {
				for c >= len(widths) {
					widths = append(widths, 0)
				}
				if len(v) > widths[c] {
					widths[c] = len(v)
				}
			}
		}
		for c, w := range widths {
			col, err := excelize.ColumnNumberToName(c + 1)
			if err != nil {
				return fmt.Errorf("styling sheet %q: %w", sheet, err)
			}
			if err := f.SetColWidth(sheet, col, col, float64(w+2)); err != nil {
				return fmt.Errorf("styling sheet %q: %w", sheet, err)
			}
		}

		last, err := excelize.CoordinatesToCellName(len(widths), len(rows))
		if err != nil {
			return fmt.Errorf("styling sheet %q: %w", sheet, err)
		}
		if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
			return fmt.Errorf("styling sheet %q: %w", sheet, err)
		}
	}
	return nil
}
