// Package report aggregates mapped transactions and renders the Markdown
// expense report.
package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/KJone1/shekel/internal/model"
	"github.com/KJone1/shekel/internal/rules"
)

var oneHundred = decimal.NewFromInt(100)

// Options carries the configurable report knobs.
type Options struct {
	Merchant       string          // tracked merchant for the insights section
	NotablePercent decimal.Decimal // share threshold for notable spending
	RentRanges     []rules.AmountRange
}

// MerchantStats summarizes the tracked merchant across the whole row set.
type MerchantStats struct {
	Total decimal.Decimal
	Count int
	Share decimal.Decimal // of the eating-out category total, 0-100
}

// mappedTxn pairs a transaction with its derived category.
type mappedTxn struct {
	txn      model.Transaction
	category string
}

// Report holds everything the renderer needs. Build computes it from
// scratch on every run.
type Report struct {
	Categories        []string // declared order
	Summaries         map[string]model.CategorySummary
	SortedByTotal     []string // declared categories, descending by total
	TotalSpent        decimal.Decimal
	TotalTransactions int
	Merchant          MerchantStats

	opts   Options
	mapped []mappedTxn
}

// Build maps every transaction through the table and aggregates per
// category. Grand totals cover the entire row set; the per-category
// summaries only ever surface the declared list, so a row mapping outside
// it contributes to the totals but to no section.
func Build(txns []model.Transaction, table rules.Table, categories []string, opts Options) *Report {
	r := &Report{
		Categories: categories,
		Summaries:  make(map[string]model.CategorySummary, len(categories)),
		opts:       opts,
	}
	for _, c := range categories {
		r.Summaries[c] = model.CategorySummary{}
	}

	for _, t := range txns {
		cat := table.Map(t.Amount, t.Payee, t.Category)
		r.mapped = append(r.mapped, mappedTxn{txn: t, category: cat})

		s := r.Summaries[cat]
		s.Total = s.Total.Add(t.Amount)
		s.Count++
		s.Transactions = append(s.Transactions, model.Entry{Payee: t.Payee, Amount: t.Amount})
		r.Summaries[cat] = s

		r.TotalSpent = r.TotalSpent.Add(t.Amount)
		r.TotalTransactions++
	}

	for cat, s := range r.Summaries {
		if s.Count > 0 {
			s.Average = s.Total.Div(decimal.NewFromInt(int64(s.Count)))
		}
		if r.TotalSpent.IsPositive() {
			s.Percent = s.Total.Div(r.TotalSpent).Mul(oneHundred)
		}
		r.Summaries[cat] = s
	}

	r.SortedByTotal = r.sortByTotal(categories)
	r.Merchant = r.merchantStats(txns)
	return r
}

// sortByTotal orders categories descending by total, ties broken by the
// declared order (stable sort over the declared list).
func (r *Report) sortByTotal(categories []string) []string {
	sorted := make([]string, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return r.Summaries[sorted[i]].Total.GreaterThan(r.Summaries[sorted[j]].Total)
	})
	return sorted
}

func (r *Report) merchantStats(txns []model.Transaction) MerchantStats {
	var stats MerchantStats
	needle := strings.ToLower(r.opts.Merchant)
	for _, t := range txns {
		if strings.Contains(strings.ToLower(t.Payee), needle) {
			stats.Total = stats.Total.Add(t.Amount)
			stats.Count++
		}
	}
	eatingOut := r.Summaries[rules.ReportEatingOut].Total
	if eatingOut.IsPositive() {
		stats.Share = stats.Total.Div(eatingOut).Mul(oneHundred)
	}
	return stats
}

// topExpenses returns the n largest non-rent transactions, ties kept in
// row order.
func (r *Report) topExpenses(n int) []mappedTxn {
	var pool []mappedTxn
	for _, m := range r.mapped {
		if m.category != rules.ReportRent {
			pool = append(pool, m)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].txn.Amount.GreaterThan(pool[j].txn.Amount)
	})
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}

// topCategories returns the n biggest declared categories excluding rent.
func (r *Report) topCategories(n int) []string {
	var pool []string
	for _, c := range r.Categories {
		if c != rules.ReportRent {
			pool = append(pool, c)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return r.Summaries[pool[i]].Total.GreaterThan(r.Summaries[pool[j]].Total)
	})
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}

// largestSubscription returns the highest-amount subscription entry, or
// false when the category is empty.
func (r *Report) largestSubscription() (model.Entry, bool) {
	subs := r.Summaries[rules.ReportSubscriptions].Transactions
	if len(subs) == 0 {
		return model.Entry{}, false
	}
	largest := subs[0]
	for _, e := range subs[1:] {
		if e.Amount.GreaterThan(largest.Amount) {
			largest = e
		}
	}
	return largest, true
}
