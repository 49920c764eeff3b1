package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grana-dev/grana/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func pending(amount, category string, dir model.Direction) model.PendingTransaction {
	return model.PendingTransaction{Amount: dec(amount), Direction: dir, Category: category}
}

func TestRecord_NewMonth(t *testing.T) {
	svc := NewService(t.TempDir())

	entryID, err := svc.Record(pending("50", "mercado", model.DirectionExpense), date(2025, time.January, 15), "paguei 50 no mercado")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-001", entryID)

	entries, err := svc.ReadMonth(2025, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Amount.Equal(dec("50")))
	assert.Equal(t, model.DirectionExpense, entries[0].Direction)
	assert.Equal(t, "mercado", entries[0].Category)
}

func TestRecord_SequencesWithinMonth(t *testing.T) {
	svc := NewService(t.TempDir())

	first, err := svc.Record(pending("50", "mercado", model.DirectionExpense), date(2025, time.January, 10), "")
	require.NoError(t, err)
	second, err := svc.Record(pending("30", "farmacia", model.DirectionExpense), date(2025, time.January, 20), "")
	require.NoError(t, err)

	assert.Equal(t, "2025-01-001", first)
	assert.Equal(t, "2025-01-002", second)
}

func TestRecord_RejectsIncomplete(t *testing.T) {
	svc := NewService(t.TempDir())

	_, err := svc.Record(pending("0", "mercado", model.DirectionExpense), date(2025, time.January, 1), "")
	assert.Error(t, err)

	_, err = svc.Record(pending("50", "", model.DirectionExpense), date(2025, time.January, 1), "")
	assert.Error(t, err)

	_, err = svc.Record(model.PendingTransaction{Amount: dec("50"), Category: "mercado"}, date(2025, time.January, 1), "")
	assert.Error(t, err)
}

func TestBalance_AcrossMonths(t *testing.T) {
	svc := NewService(t.TempDir())

	_, err := svc.Record(pending("2000", "salario", model.DirectionIncome), date(2025, time.January, 5), "")
	require.NoError(t, err)
	_, err = svc.Record(pending("50", "mercado", model.DirectionExpense), date(2025, time.January, 10), "")
	require.NoError(t, err)
	_, err = svc.Record(pending("30", "farmacia", model.DirectionExpense), date(2025, time.February, 2), "")
	require.NoError(t, err)

	balance, err := svc.Balance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("1920")), "got %s", balance)
}

func TestBalance_EmptyLedger(t *testing.T) {
	svc := NewService(filepath.Join(t.TempDir(), "does-not-exist"))

	balance, err := svc.Balance()
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestMonthSpend(t *testing.T) {
	svc := NewService(t.TempDir())

	_, err := svc.Record(pending("2000", "salario", model.DirectionIncome), date(2025, time.January, 5), "")
	require.NoError(t, err)
	_, err = svc.Record(pending("50", "mercado", model.DirectionExpense), date(2025, time.January, 10), "")
	require.NoError(t, err)
	_, err = svc.Record(pending("25.50", "mercado", model.DirectionExpense), date(2025, time.January, 12), "")
	require.NoError(t, err)
	_, err = svc.Record(pending("30", "farmacia", model.DirectionExpense), date(2025, time.February, 2), "")
	require.NoError(t, err)

	total, byCategory, err := svc.MonthSpend(2025, time.January)
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("75.50")), "got %s", total)
	require.Len(t, byCategory, 1)
	assert.True(t, byCategory["mercado"].Equal(dec("75.50")))
}

func TestReadMonth_MissingFile(t *testing.T) {
	svc := NewService(t.TempDir())

	entries, err := svc.ReadMonth(2025, 3)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadEntries_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir)

	_, err := svc.Record(pending("15.90", "lanche", model.DirectionExpense), date(2025, time.March, 3), "comprei um lanche")
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "2025", "03", "journal.csv"))
	require.NoError(t, err)
	defer f.Close()

	entries, err := ReadEntries(f)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2025-03-001", entries[0].EntryID)
	assert.Equal(t, "comprei um lanche", entries[0].Note)
	assert.True(t, entries[0].Amount.Equal(dec("15.90")))
}
