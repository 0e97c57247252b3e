package rules

// Export taxonomy names referenced outside the table. The export taxonomy
// tracks the budget app's category tree and is allowed to drift from the
// report taxonomy.
const (
	ExportReimbursable = "Reimburseable"
	ExportFallback     = "Misc & One-offs"
)

// ExportTable builds the decision list used when generating the budget-app
// import CSV. The rent detector folds rent into Home & Decor because the
// target budget has no standalone rent category.
func ExportTable(rentRanges []AmountRange) Table {
	return NewTable(ExportFallback,
		Negative(ExportReimbursable),
		RentDetector("Home & Decor", rentRanges),
		PayeeContains("Home & Decor", "online home items", "booom"),
		PayeeContains("Eating out", "poalim wonder", "מש - קר"),
		PayeeContainsOrWord("Education & Learning", "hit",
			"course", "udemy", "coursera", "book", "books", "steimatzky", "סטימצקי", "ספרים",
			"מכון טכנולוגי", "h.i.t", "מכון אקדמי טכנולוגי חולון", "מעונות חולון", "חניון מעונות"),
		PayeeContains("Transport & Car", "parking", "חניון", "pango", "פנגו", "רב-פס"),
		PayeeContains("Appearance & Grooming", "clothing", "fashion", "salon", "barber", "haircut"),
		PayeeContainsOrWord("Vacation & Travel", "חול",
			"hotel", "airbnb", "booking", "flight", "travel", "el al", "נתבג", `חו"ל`, "voye global connectivi"),
		PayeeContains("Gifts & Charity", "gift", "donation", "charity", "מתנה", "תרומה"),
		PayeeContains("Subscriptions", "bitwarden", "addy.io"),
		PayeeContains(ExportReimbursable, "work expenses", "shared bills"),
		PayeeContains("Electronics & Gadgets",
			"gadget", "electronic", "ksp", "ivory", "קי.אס.פי.", "קיי.אס.פי", "פי.אס.קיי", "פי.אס.קי", "k s p"),
		PayeeContains("Groceries", "קרמה +"),
		PayeeContains("Government & Municipal", "עיריית"),
		PayeeContains("Health & Cosmetics", "iherb"),
		Original("Transport & Car", "אנרגיה"),
		Original("Entertainment & Events", "אירועים"),
		Original("Eating out", "מסעדות"),
		Original("Groceries", "מזון ומשקאות", "מזון מהיר"),
		Original("Home & Decor", "ריהוט ובית"),
		Original("Health & Cosmetics", "רפואה ובריאות"),
		Original("Transport & Car", "רכב ותחבורה"),
		Original("Telecom", "תקשורת ומחשבים"),
		Original("Appearance & Grooming", "אופנה", "טיפוח ויופי"),
		Original("Government & Municipal", "מוסדות"),
		Original("Subscriptions", "Subscriptions"),
	)
}
