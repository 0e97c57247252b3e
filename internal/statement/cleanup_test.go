package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KJone1/shekel/internal/config"
	"github.com/KJone1/shekel/internal/model"
)

func TestClean_DropsRowsWithoutAmount(t *testing.T) {
	raw := []RawRow{
		{Date: "01/02/2025", Payee: "Wolt", Amount: "45.00", Category: "מסעדות"},
		{Date: "02/02/2025", Payee: "pending", Amount: "", Category: "מסעדות"},
		{Date: "03/02/2025", Payee: "garbage", Amount: "n/a", Category: "מסעדות"},
	}

	txns := Clean(raw, nil)
	require.Len(t, txns, 1)
	assert.Equal(t, "Wolt", txns[0].Payee)
	assert.True(t, txns[0].Amount.Equal(decimal.RequireFromString("45.00")))
}

func TestClean_NormalizesMissingCategories(t *testing.T) {
	raw := []RawRow{
		{Payee: "a", Amount: "10", Category: ""},
		{Payee: "b", Amount: "10", Category: "nan"},
		{Payee: "c", Amount: "10", Category: "  "},
		{Payee: "d", Amount: "10", Category: "מסעדות"},
	}

	txns := Clean(raw, nil)
	require.Len(t, txns, 4)
	for _, txn := range txns[:3] {
		assert.Equal(t, model.UnknownCategory, txn.Category, "payee %s", txn.Payee)
	}
	assert.Equal(t, "מסעדות", txns[3].Category)
}

func TestClean_ThousandsSeparator(t *testing.T) {
	raw := []RawRow{{Payee: "rent", Amount: "3,000.00", Category: "x"}}

	txns := Clean(raw, nil)
	require.Len(t, txns, 1)
	assert.Equal(t, "3000", txns[0].Amount.String())
}

func TestClean_PayeeOverrideOnlyFillsUnknown(t *testing.T) {
	raw := []RawRow{
		{Payee: "PAYBOX", Amount: "3000", Category: ""},
		{Payee: "PAYBOX", Amount: "50", Category: "מסעדות"},
		{Payee: "BIT", Amount: "20", Category: "nan"},
	}
	overrides := []config.Override{
		{Payees: []string{"BIT", "PAYBOX"}, Category: "תשלומים"},
	}

	txns := Clean(raw, overrides)
	byPayeeAmount := func(payee, amount string) model.Transaction {
		for _, txn := range txns {
			if txn.Payee == payee && txn.Amount.Equal(decimal.RequireFromString(amount)) {
				return txn
			}
		}
		t.Fatalf("row %s/%s not found", payee, amount)
		return model.Transaction{}
	}

	assert.Equal(t, "תשלומים", byPayeeAmount("PAYBOX", "3000").Category)
	assert.Equal(t, "תשלומים", byPayeeAmount("BIT", "20").Category)
	assert.Equal(t, "מסעדות", byPayeeAmount("PAYBOX", "50").Category, "payee override must not clobber a set category")
}

func TestClean_ContainsOverrideIsUnconditional(t *testing.T) {
	raw := []RawRow{
		{Payee: "My Gym Staff", Amount: "180", Category: "מסעדות"},
	}
	overrides := []config.Override{
		{Contains: "gym", Category: "Sport"},
	}

	txns := Clean(raw, overrides)
	require.Len(t, txns, 1)
	assert.Equal(t, "Sport", txns[0].Category)
}

func TestClean_LaterOverrideWins(t *testing.T) {
	raw := []RawRow{
		{Payee: "Gym Paybox", Amount: "100", Category: ""},
	}
	overrides := []config.Override{
		{Contains: "paybox", Category: "תשלומים"},
		{Contains: "gym", Category: "Sport"},
	}

	txns := Clean(raw, overrides)
	require.Len(t, txns, 1)
	assert.Equal(t, "Sport", txns[0].Category)
}

func TestClean_SortsByCategory(t *testing.T) {
	raw := []RawRow{
		{Payee: "z", Amount: "1", Category: "ב"},
		{Payee: "y", Amount: "1", Category: "א"},
		{Payee: "x", Amount: "1", Category: "א"},
	}

	txns := Clean(raw, nil)
	require.Len(t, txns, 3)
	assert.Equal(t, "א", txns[0].Category)
	assert.Equal(t, "א", txns[1].Category)
	assert.Equal(t, "ב", txns[2].Category)
	// Stable: original order preserved within a category.
	assert.Equal(t, "y", txns[0].Payee)
	assert.Equal(t, "x", txns[1].Payee)
}

// Re-running the cleanup on its own output with no overrides is a no-op.
func TestClean_Idempotent(t *testing.T) {
	raw := []RawRow{
		{Date: "01/02/2025", Payee: "Wolt", Amount: "45.5", Category: "מסעדות"},
		{Date: "02/02/2025", Payee: "KSP", Amount: "900", Category: ""},
		{Date: "03/02/2025", Payee: "skip", Amount: "", Category: "x"},
	}

	once := Clean(raw, nil)

	again := make([]RawRow, 0, len(once))
	for _, txn := range once {
		again = append(again, RawRow{
			Date:     txn.Date,
			Payee:    txn.Payee,
			Amount:   txn.Amount.String(),
			Category: txn.Category,
		})
	}
	twice := Clean(again, nil)

	require.Len(t, twice, len(once))
	for i := range once {
		assert.Equal(t, once[i].Payee, twice[i].Payee)
		assert.Equal(t, once[i].Category, twice[i].Category)
		assert.True(t, once[i].Amount.Equal(twice[i].Amount))
	}
}
