package actual

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// importNotes is attached to every transaction created by the driver.
const importNotes = "Imported via shekel"

var minorUnits = decimal.NewFromInt(100)

// Result summarizes one import run.
type Result struct {
	Account  string // account name imported into
	Imported int
	Failed   int
}

// Importer pushes CSV rows into a budget server one transaction at a time.
// Row failures are reported to out and skipped; they never abort the batch.
type Importer struct {
	client Client
	out    io.Writer
}

// NewImporter creates an Importer reporting progress to out.
func NewImporter(client Client, out io.Writer) *Importer {
	return &Importer{client: client, out: out}
}

// Run reads the import CSV and creates one transaction per row. The CSV
// amount is expense-positive; the server wants expense-negative minor
// units, so each amount is scaled by 100 and sign-inverted. Categories
// resolve by exact name; unresolved names import as uncategorized. A single
// sync happens at the end, and only when at least one row succeeded.
func (im *Importer) Run(ctx context.Context, r io.Reader, accountName string) (Result, error) {
	account, err := im.resolveAccount(ctx, accountName)
	if err != nil {
		return Result{}, err
	}

	categories, err := im.client.Categories(ctx)
	if err != nil {
		return Result{}, err
	}
	categoryIDs := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryIDs[c.Name] = c.ID
	}

	rows, err := readRows(r)
	if err != nil {
		return Result{}, err
	}

	res := Result{Account: account.Name}
	for _, row := range rows {
		if row.date == "" || row.amount == "" {
			continue
		}

		txn, err := buildTransaction(row, categoryIDs)
		if err != nil {
			res.Failed++
			fmt.Fprintf(im.out, "Error processing row %v: %v\n", row, err)
			continue
		}

		if err := im.client.CreateTransaction(ctx, account.ID, txn); err != nil {
			res.Failed++
			fmt.Fprintf(im.out, "Error processing row %v: %v\n", row, err)
			continue
		}
		res.Imported++
	}

	if res.Imported > 0 {
		if err := im.client.Sync(ctx); err != nil {
			return res, err
		}
	}
	return res, nil
}

// resolveAccount picks the named account, or the first one when name is
// empty.
func (im *Importer) resolveAccount(ctx context.Context, name string) (Account, error) {
	accounts, err := im.client.Accounts(ctx)
	if err != nil {
		return Account{}, err
	}
	if len(accounts) == 0 {
		return Account{}, fmt.Errorf("no accounts found")
	}
	if name == "" {
		return accounts[0], nil
	}
	for _, a := range accounts {
		if a.Name == name {
			return a, nil
		}
	}
	return Account{}, fmt.Errorf("account %q not found", name)
}

// csvRow is one parsed line of the import CSV.
type csvRow struct {
	date     string
	payee    string
	amount   string
	category string
}

func (r csvRow) String() string {
	return fmt.Sprintf("{Date:%s Payee:%s Amount:%s Category:%s}", r.date, r.payee, r.amount, r.category)
}

func readRows(r io.Reader) ([]csvRow, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("import CSV is empty")
	}

	cols := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		cols[h] = i
	}
	for _, required := range []string{"Date", "Payee", "Amount", "Category"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("import CSV missing column %q", required)
		}
	}

	rows := make([]csvRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, csvRow{
			date:     rec[cols["Date"]],
			payee:    rec[cols["Payee"]],
			amount:   rec[cols["Amount"]],
			category: rec[cols["Category"]],
		})
	}
	return rows, nil
}

// buildTransaction converts a CSV row into the server's representation:
// ISO date validated, amount scaled to minor units and sign-inverted.
func buildTransaction(row csvRow, categoryIDs map[string]string) (NewTransaction, error) {
	if _, err := time.Parse("2006-01-02", row.date); err != nil {
		return NewTransaction{}, fmt.Errorf("parsing date %q: %w", row.date, err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(row.amount))
	if err != nil {
		return NewTransaction{}, fmt.Errorf("parsing amount %q: %w", row.amount, err)
	}

	return NewTransaction{
		Date:       row.date,
		Amount:     -amount.Mul(minorUnits).Round(0).IntPart(),
		PayeeName:  row.payee,
		CategoryID: categoryIDs[row.category],
		Notes:      importNotes,
	}, nil
}
