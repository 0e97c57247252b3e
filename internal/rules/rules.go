// Package rules implements the ordered decision lists that assign a
// category to a statement row. Two independent tables exist: one for the
// Markdown report taxonomy and one for the budget-app export taxonomy.
// They intentionally diverge and must not be unified.
package rules

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// payboxKeyword identifies peer-to-peer payment rows checked by the rent
// detector.
const payboxKeyword = "paybox"

// AmountRange is an inclusive amount window.
type AmountRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// Contains reports whether amount falls inside the range, bounds included.
func (r AmountRange) Contains(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(r.Min) && amount.LessThanOrEqual(r.Max)
}

// input carries one row through the decision list with the payee already
// lowercased and the category sentinel applied.
type input struct {
	amount decimal.Decimal
	payee  string // lowercased
	orig   string
}

// Rule is one step of a decision list: a predicate plus the category it
// assigns on match.
type Rule struct {
	category string
	match    func(in input) bool
}

// Table is an ordered decision list. Map returns the category of the first
// matching rule, or the fallback when nothing matches.
type Table struct {
	fallback string
	rules    []Rule
}

// NewTable creates a Table with the given fallback category.
func NewTable(fallback string, rules ...Rule) Table {
	return Table{fallback: fallback, rules: rules}
}

// Fallback returns the table's default category.
func (t Table) Fallback() string {
	return t.fallback
}

// Map assigns a category to a row. Empty payees and missing original
// categories must already be normalized by the caller ("" and "Unknown"
// respectively); Map itself only lowercases the payee.
func (t Table) Map(amount decimal.Decimal, payee, originalCategory string) string {
	in := input{
		amount: amount,
		payee:  strings.ToLower(payee),
		orig:   originalCategory,
	}
	for _, r := range t.rules {
		if r.match(in) {
			return r.category
		}
	}
	return t.fallback
}

// Negative matches any row with an amount below zero.
func Negative(category string) Rule {
	return Rule{category: category, match: func(in input) bool {
		return in.amount.IsNegative()
	}}
}

// RentDetector matches paybox rows whose amount falls in any of the
// configured windows. The negative rule runs first in both tables, so only
// positive amounts reach this check.
func RentDetector(category string, ranges []AmountRange) Rule {
	return Rule{category: category, match: func(in input) bool {
		if !strings.Contains(in.payee, payboxKeyword) {
			return false
		}
		for _, r := range ranges {
			if r.Contains(in.amount) {
				return true
			}
		}
		return false
	}}
}

// PayeeContains matches when the payee contains any of the given substrings,
// case-insensitively, anywhere in the name.
func PayeeContains(category string, substrings ...string) Rule {
	return Rule{category: category, match: func(in input) bool {
		return containsAny(in.payee, substrings)
	}}
}

// PayeeContainsOrWord is PayeeContains extended with a whole-word
// alternative: the rule also matches when word appears token-bounded in the
// payee.
func PayeeContainsOrWord(category, word string, substrings ...string) Rule {
	re := wordPattern(word)
	return Rule{category: category, match: func(in input) bool {
		return containsAny(in.payee, substrings) || re.MatchString(in.payee)
	}}
}

// Original matches when the row's original category equals any of the given
// labels exactly.
func Original(category string, labels ...string) Rule {
	return Rule{category: category, match: func(in input) bool {
		return equalsAny(in.orig, labels)
	}}
}

// OriginalAndPayee matches when the original category equals label and the
// payee contains any of the given substrings.
func OriginalAndPayee(category, label string, substrings ...string) Rule {
	return Rule{category: category, match: func(in input) bool {
		return in.orig == label && containsAny(in.payee, substrings)
	}}
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func equalsAny(s string, labels []string) bool {
	for _, l := range labels {
		if s == l {
			return true
		}
	}
	return false
}

// wordPattern builds a whole-word matcher. regexp's \b is ASCII-only, so
// boundaries are spelled out as letter/digit/underscore transitions to keep
// Hebrew keywords token-bounded too.
func wordPattern(word string) *regexp.Regexp {
	const boundary = `[^\p{L}\p{N}_]`
	return regexp.MustCompile(`(?:\A|` + boundary + `)` + regexp.QuoteMeta(word) + `(?:` + boundary + `|\z)`)
}
