package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/KJone1/shekel/internal/rules"
)

const topCount = 5

// Render writes the Markdown report. It is a pure function of the built
// Report; nothing is recomputed from disk.
func (r *Report) Render(w io.Writer) error {
	var b strings.Builder

	b.WriteString("# Expense Report Summary\n\n")
	r.renderOverallTotals(&b)
	r.renderCategories(&b)
	r.renderTopExpenses(&b)
	r.renderTopCategories(&b)
	r.renderInsights(&b)

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Report) renderOverallTotals(b *strings.Builder) {
	b.WriteString("## Overall Totals\n")
	for _, cat := range r.SortedByTotal {
		s := r.Summaries[cat]
		fmt.Fprintf(b, "- **%s**: %s (%s) | %d transactions (%s) | avg %s\n",
			cat, shekels(s.Total), percent(s.Percent), s.Count,
			percent(r.countShare(s.Count)), shekels(s.Average))
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "**TOTAL SPENT:** %s\n", shekels(r.TotalSpent))
	fmt.Fprintf(b, "**TOTAL TRANSACTIONS:** %d\n\n", r.TotalTransactions)
}

func (r *Report) renderCategories(b *strings.Builder) {
	for _, cat := range r.SortedByTotal {
		s := r.Summaries[cat]
		fmt.Fprintf(b, "## %s\n\n", cat)

		var prices []string
		if s.Count > 0 {
			for _, e := range s.Transactions {
				fmt.Fprintf(b, "- %s: %s\n", r.displayName(cat, e.Payee, e.Amount), shekels(e.Amount))
				price := e.Amount
				if cat == rules.ReportReimbursable {
					price = price.Abs()
				}
				prices = append(prices, price.StringFixed(2))
			}
		} else {
			b.WriteString("_No entries in this category_\n")
		}
		b.WriteString("\n")

		formula := "=SUM(0)"
		if len(prices) > 0 {
			formula = "=SUM(" + strings.Join(prices, ",") + ")"
		}
		fmt.Fprintf(b, "**Category Total:** %s (%s) | %d transactions | avg %s\n",
			shekels(s.Total), percent(s.Percent), s.Count, shekels(s.Average))
		fmt.Fprintf(b, "**Sum Formula:** `%s`\n\n", formula)
	}
}

// displayName rewrites the payee of the primary rent payment so the paybox
// transfer reads as "Rent" in the listing.
func (r *Report) displayName(cat, payee string, amount decimal.Decimal) string {
	if cat != rules.ReportRent || len(r.opts.RentRanges) == 0 {
		return payee
	}
	if r.opts.RentRanges[0].Contains(amount) && strings.Contains(strings.ToLower(payee), "paybox") {
		return "Rent"
	}
	return payee
}

func (r *Report) renderTopExpenses(b *strings.Builder) {
	b.WriteString("## Top Individual Expenses\n\n")
	b.WriteString("> Excludes Rent and Utilities\n\n")

	top := r.topExpenses(topCount)
	if len(top) == 0 {
		b.WriteString("No expenses found (excluding rent/utils)\n")
	}
	for i, m := range top {
		fmt.Fprintf(b, "%d. %s: **%s**\n", i+1, m.txn.Payee, shekels(m.txn.Amount))
	}
	b.WriteString("\n")
}

func (r *Report) renderTopCategories(b *strings.Builder) {
	b.WriteString("## Top Spending Categories\n\n")
	b.WriteString("> Excludes Rent and Utilities\n\n")

	for i, cat := range r.topCategories(topCount) {
		s := r.Summaries[cat]
		fmt.Fprintf(b, "%d. **%s**: %s | %s of total | %d transactions\n",
			i+1, cat, shekels(s.Total), percent(s.Percent), s.Count)
	}
	b.WriteString("\n")
}

func (r *Report) renderInsights(b *strings.Builder) {
	b.WriteString("## Key Insights\n\n")

	fmt.Fprintf(b, "### %s Analytics\n", r.opts.Merchant)
	fmt.Fprintf(b, "- **Total Spent on %s:** %s\n", r.opts.Merchant, shekels(r.Merchant.Total))
	fmt.Fprintf(b, "- **Total Transactions:** %d\n", r.Merchant.Count)
	fmt.Fprintf(b, "- **Share of 'Eating Out':** %s\n\n", percent(r.Merchant.Share))

	b.WriteString("### Notable Spending\n")
	notable := 0
	for _, cat := range r.Categories {
		if cat == rules.ReportRent {
			continue
		}
		s := r.Summaries[cat]
		if s.Percent.GreaterThan(r.opts.NotablePercent) {
			fmt.Fprintf(b, "- **%s** accounts for %s of total expenses (%d transactions).\n",
				cat, percent(s.Percent), s.Count)
			notable++
		}
	}
	if notable == 0 {
		fmt.Fprintf(b, "- No single category (excluding rent) exceeds %s of total spending.\n",
			percent(r.opts.NotablePercent))
	}

	if largest, ok := r.largestSubscription(); ok {
		fmt.Fprintf(b, "- **Largest Subscription:** %s (`%s`)\n", largest.Payee, shekels(largest.Amount))
	}
}

func (r *Report) countShare(count int) decimal.Decimal {
	if r.TotalTransactions == 0 {
		return decimal.Decimal{}
	}
	return decimal.NewFromInt(int64(count)).
		Div(decimal.NewFromInt(int64(r.TotalTransactions))).
		Mul(oneHundred)
}

func shekels(d decimal.Decimal) string {
	return d.StringFixed(2) + "₪"
}

func percent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}
