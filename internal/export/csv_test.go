package export

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KJone1/shekel/internal/model"
	"github.com/KJone1/shekel/internal/rules"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func exportTable() rules.Table {
	return rules.ExportTable([]rules.AmountRange{
		{Min: dec("2900"), Max: dec("3100")},
		{Min: dec("800"), Max: dec("900")},
	})
}

func TestWrite(t *testing.T) {
	txns := []model.Transaction{
		{Date: "01/02/2025", Payee: "Wolt Tel Aviv", Amount: dec("45.5"), Category: "מסעדות"},
		{Date: "15/02/2025", Payee: "PAYBOX ltd", Amount: dec("3000"), Category: "Unknown"},
		{Date: "28/02/2025", Payee: "Refund Store", Amount: dec("-50"), Category: "Unknown"},
	}

	var b strings.Builder
	require.NoError(t, Write(&b, txns, exportTable()))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Date,Payee,Amount,Category", lines[0])
	assert.Equal(t, "2025-02-01,Wolt Tel Aviv,45.5,Eating out", lines[1])
	assert.Equal(t, "2025-02-15,PAYBOX ltd,3000,Home & Decor", lines[2])
	assert.Equal(t, "2025-02-28,Refund Store,-50,Reimburseable", lines[3])
}

func TestWrite_UnparseableDateIsFatal(t *testing.T) {
	txns := []model.Transaction{
		{Date: "01/02/2025", Payee: "ok", Amount: dec("10"), Category: "Unknown"},
		{Date: "not a date", Payee: "bad", Amount: dec("10"), Category: "Unknown"},
	}

	var b strings.Builder
	err := Write(&b, txns, exportTable())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "not a date")
}

func TestReformatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"01/02/2025", "2025-02-01"}, // day first, not Feb 1 read as Jan 2
		{"5/1/2025", "2025-01-05"},
		{"28-02-2024", "2024-02-28"},
		{"31.12.2025", "2025-12-31"},
		{"2025-06-07", "2025-06-07"}, // already ISO passes through
	}
	for _, tt := range tests {
		got, err := ReformatDate(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestReformatDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "2025/02/01T00:00", "99/99/2025"} {
		_, err := ReformatDate(in)
		assert.Error(t, err, in)
	}
}

// Amounts survive the export as exact decimal strings.
func TestWrite_AmountRoundTrip(t *testing.T) {
	txns := []model.Transaction{
		{Date: "01/02/2025", Payee: "x", Amount: dec("120.50"), Category: "Unknown"},
	}

	var b strings.Builder
	require.NoError(t, Write(&b, txns, exportTable()))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	fields := strings.Split(lines[1], ",")
	back := decimal.RequireFromString(fields[2])
	assert.True(t, back.Equal(dec("120.50")))
}
