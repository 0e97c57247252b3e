package statement

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/KJone1/shekel/internal/config"
	"github.com/KJone1/shekel/internal/model"
)

// Clean turns raw statement lines into normalized transactions:
//
//  1. rows without a parseable amount are dropped
//  2. blank or "nan" categories become the Unknown sentinel
//  3. overrides rewrite categories in their declared order
//  4. rows are stably sorted by category ascending
//
// The input is never mutated; Clean is safe to re-run on its own output.
func Clean(raw []RawRow, overrides []config.Override) []model.Transaction {
	var txns []model.Transaction
	for _, r := range raw {
		amount, err := parseAmount(r.Amount)
		if err != nil {
			continue
		}
		txns = append(txns, model.Transaction{
			Date:     strings.TrimSpace(r.Date),
			Payee:    strings.TrimSpace(r.Payee),
			Amount:   amount,
			Category: normalizeCategory(r.Category),
		})
	}

	for _, ov := range overrides {
		applyOverride(txns, ov)
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Category < txns[j].Category
	})
	return txns
}

// applyOverride rewrites categories in place for rows matching a single
// override. The payees form only fills rows whose category is still the
// Unknown sentinel; the contains form overwrites unconditionally, so a later
// override may undo an earlier one.
func applyOverride(txns []model.Transaction, ov config.Override) {
	for i := range txns {
		switch {
		case ov.Contains != "":
			if strings.Contains(strings.ToLower(txns[i].Payee), strings.ToLower(ov.Contains)) {
				txns[i].Category = ov.Category
			}
		case len(ov.Payees) > 0:
			if txns[i].Category != model.UnknownCategory {
				continue
			}
			for _, p := range ov.Payees {
				if txns[i].Payee == p {
					txns[i].Category = ov.Category
					break
				}
			}
		}
	}
}

func normalizeCategory(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return model.UnknownCategory
	}
	return s
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}
	return decimal.NewFromString(s)
}
