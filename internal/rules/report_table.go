package rules

// Report taxonomy category names referenced outside the table itself.
const (
	ReportRent          = "Rent and Utilities"
	ReportEatingOut     = "Eating Out"
	ReportSubscriptions = "Subscriptions"
	ReportReimbursable  = "Reimbursable Expenses"
	ReportFallback      = "Misc and One-offs"
)

// ReportCategories is the closed list of categories the Markdown report
// iterates, in declaration order. Rows mapping outside this list are omitted
// from per-category sections but still count toward grand totals.
func ReportCategories() []string {
	return []string{
		"Entertainment and Fun",
		ReportEatingOut,
		"Groceries",
		"Home and Decor",
		"Health and Cosmetics",
		"Transport and Car",
		"Telecom",
		"Appearance and Grooming",
		"Institutions",
		ReportSubscriptions,
		"Vacation and Travel",
		"Education and Learning",
		"Gifts and Charity",
		"Electronics and Gadgets",
		ReportReimbursable,
		ReportRent,
		ReportFallback,
	}
}

// ReportTable builds the decision list used by the report stage. rentRanges
// parameterizes the paybox rent detector.
func ReportTable(rentRanges []AmountRange) Table {
	return NewTable(ReportFallback,
		Negative(ReportReimbursable),
		RentDetector(ReportRent, rentRanges),
		Original("Transport and Car", "אנרגיה"),
		Original("Entertainment and Fun", "אירועים"),
		Original(ReportEatingOut, "מסעדות"),
		Original("Groceries", "מזון ומשקאות", "מזון מהיר"),
		Original("Home and Decor", "ריהוט ובית"),
		PayeeContains("Home and Decor", "online home items"),
		Original("Health and Cosmetics", "רפואה ובריאות"),
		Original("Transport and Car", "רכב ותחבורה"),
		OriginalAndPayee("Transport and Car", "מוסדות", "parking", "חניון", "pango", "פנגו"),
		OriginalAndPayee("Transport and Car", "Unknown", "חניון", "parking"),
		Original("Telecom", "תקשורת ומחשבים"),
		Original("Appearance and Grooming", "אופנה", "טיפוח ויופי"),
		PayeeContains("Appearance and Grooming", "clothing", "fashion", "salon", "barber", "haircut"),
		Original("Institutions", "מוסדות"),
		Original(ReportSubscriptions, "Subscriptions"),
		PayeeContains("Vacation and Travel", "hotel", "airbnb", "booking", "flight", "travel", "el al", "נתבג", "חול"),
		PayeeContains("Education and Learning", "course", "udemy", "coursera", "book", "steimatzky", "סטימצקי"),
		PayeeContains("Gifts and Charity", "gift", "donation", "charity", "מתנה", "תרומה"),
		PayeeContains("Electronics and Gadgets", "gadget", "electronic", "ksp", "ivory"),
		PayeeContains(ReportReimbursable, "work expenses", "shared bills"),
	)
}
