package rules

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultRanges() []AmountRange {
	return []AmountRange{
		{Min: dec("2900"), Max: dec("3100")},
		{Min: dec("800"), Max: dec("900")},
	}
}

func TestReportTable_Map(t *testing.T) {
	table := ReportTable(defaultRanges())

	tests := []struct {
		name   string
		amount string
		payee  string
		orig   string
		want   string
	}{
		{"negative amount is reimbursement", "-50.00", "Refund Store", "מסעדות", ReportReimbursable},
		{"paybox inside primary rent window", "3000.00", "PAYBOX ltd", "Unknown", ReportRent},
		{"paybox at window bounds", "2900", "paybox", "Unknown", ReportRent},
		{"paybox just above window", "3100.01", "PAYBOX ltd", "Unknown", ReportFallback},
		{"paybox in secondary window", "850", "PayBox transfer", "Unknown", ReportRent},
		{"paybox between windows", "1500", "PAYBOX ltd", "Unknown", ReportFallback},
		{"energy category", "200", "DELEK", "אנרגיה", "Transport and Car"},
		{"events category", "120", "some venue", "אירועים", "Entertainment and Fun"},
		{"restaurants category", "45.00", "Wolt Tel Aviv", "מסעדות", ReportEatingOut},
		{"fast food is groceries", "30", "burger", "מזון מהיר", "Groceries"},
		{"home goods keyword", "89", "ONLINE HOME ITEMS LTD", "Unknown", "Home and Decor"},
		{"institution parking payee", "25", "pango", "מוסדות", "Transport and Car"},
		{"institution without parking payee", "25", "city hall", "מוסדות", "Institutions"},
		{"unknown parking payee", "12", "חניון תל אביב", "Unknown", "Transport and Car"},
		{"fashion keyword", "300", "Zara Fashion Store", "Unknown", "Appearance and Grooming"},
		{"grooming original", "150", "somewhere", "טיפוח ויופי", "Appearance and Grooming"},
		{"subscriptions original", "40", "Netflix", "Subscriptions", ReportSubscriptions},
		{"travel keyword", "900", "Booking.com", "Unknown", "Vacation and Travel"},
		{"education keyword", "60", "Udemy course", "Unknown", "Education and Learning"},
		{"charity keyword", "100", "תרומה לעמותה", "Unknown", "Gifts and Charity"},
		{"electronics keyword", "450", "KSP Computers", "Unknown", "Electronics and Gadgets"},
		{"reimbursable phrase", "75", "Work Expenses March", "Unknown", ReportReimbursable},
		{"no rule matches", "55", "mystery shop", "Unknown", ReportFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Map(dec(tt.amount), tt.payee, tt.orig)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The negative-amount rule outranks everything, including the rent detector.
func TestReportTable_NegativeShortCircuit(t *testing.T) {
	table := ReportTable(defaultRanges())

	payees := []string{"PAYBOX ltd", "Wolt", "KSP", ""}
	for _, payee := range payees {
		got := table.Map(dec("-3000"), payee, "מסעדות")
		assert.Equal(t, ReportReimbursable, got, "payee %q", payee)
	}
}

// Map is total: every input lands on a declared category.
func TestReportTable_Total(t *testing.T) {
	table := ReportTable(defaultRanges())
	declared := make(map[string]bool)
	for _, c := range ReportCategories() {
		declared[c] = true
	}

	inputs := []struct {
		amount string
		payee  string
		orig   string
	}{
		{"0", "", ""},
		{"0", "", "Unknown"},
		{"-0.01", "x", "y"},
		{"1000000", "PAYBOX", "whatever"},
		{"3.50", "חניון", "Unknown"},
	}
	for _, in := range inputs {
		got := table.Map(dec(in.amount), in.payee, in.orig)
		assert.True(t, declared[got], "mapped %q for payee %q", got, in.payee)
	}
}

func TestExportTable_Map(t *testing.T) {
	table := ExportTable(defaultRanges())

	tests := []struct {
		name   string
		amount string
		payee  string
		orig   string
		want   string
	}{
		{"negative amount", "-120.50", "anything", "מסעדות", ExportReimbursable},
		{"paybox rent folds into home", "3000", "PAYBOX ltd", "Unknown", "Home & Decor"},
		{"booom home goods", "60", "BOOOM store", "Unknown", "Home & Decor"},
		{"poalim wonder eats", "80", "POALIM WONDER", "Unknown", "Eating out"},
		{"hit as whole word", "120", "HIT dorms", "Unknown", "Education & Learning"},
		{"hit without right boundary", "120", "Hitchcock Cinema", "אופנה", "Appearance & Grooming"},
		{"dotted college payee", "500", "H.I.T tuition", "Unknown", "Education & Learning"},
		{"rav pass transport", "30", "רב-פס", "Unknown", "Transport & Car"},
		{"quoted abroad marker", "250", `עסקת חו"ל`, "Unknown", "Vacation & Travel"},
		{"abroad word bounded", "250", "רכישה חול 12", "Unknown", "Vacation & Travel"},
		{"abroad inside holon", "250", "מעונות חולון", "Unknown", "Education & Learning"},
		{"bitwarden subscription", "10", "Bitwarden", "Unknown", "Subscriptions"},
		{"hebrew ksp spelling", "900", "קי.אס.פי. בע\"מ", "Unknown", "Electronics & Gadgets"},
		{"karma plus groceries", "200", "קרמה + סניף", "Unknown", "Groceries"},
		{"municipality", "350", "עיריית תל אביב", "Unknown", "Government & Municipal"},
		{"iherb health", "140", "IHERB.COM", "Unknown", "Health & Cosmetics"},
		{"institutions map to municipal", "90", "misc", "מוסדות", "Government & Municipal"},
		{"events taxonomy name differs", "60", "venue", "אירועים", "Entertainment & Events"},
		{"fallback", "55", "mystery shop", "Unknown", ExportFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Map(dec(tt.amount), tt.payee, tt.orig)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The two taxonomies intentionally diverge for the same input.
func TestTables_Diverge(t *testing.T) {
	ranges := defaultRanges()
	report := ReportTable(ranges)
	exportT := ExportTable(ranges)

	assert.Equal(t, ReportRent, report.Map(dec("3000"), "PAYBOX ltd", "Unknown"))
	assert.Equal(t, "Home & Decor", exportT.Map(dec("3000"), "PAYBOX ltd", "Unknown"))

	assert.Equal(t, "Institutions", report.Map(dec("90"), "misc", "מוסדות"))
	assert.Equal(t, "Government & Municipal", exportT.Map(dec("90"), "misc", "מוסדות"))
}

func TestAmountRange_Contains(t *testing.T) {
	r := AmountRange{Min: dec("800"), Max: dec("900")}

	assert.True(t, r.Contains(dec("800")))
	assert.True(t, r.Contains(dec("900")))
	assert.True(t, r.Contains(dec("850.55")))
	assert.False(t, r.Contains(dec("799.99")))
	assert.False(t, r.Contains(dec("900.01")))
}

func TestRentDetector_ConfiguredRanges(t *testing.T) {
	custom := []AmountRange{{Min: dec("100"), Max: dec("200")}}
	table := ReportTable(custom)

	assert.Equal(t, ReportRent, table.Map(dec("150"), "paybox", "Unknown"))
	assert.Equal(t, ReportFallback, table.Map(dec("3000"), "paybox", "Unknown"))
}
