package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grana-dev/grana/internal/model"
)

// Header is the CSV header for monthly journal files.
const Header = "entry_id,date,direction,category,amount,note"

const (
	numFields    = 6
	dateFormat   = "2006-01-02"
	colEntryID   = 0
	colDate      = 1
	colDirection = 2
	colCategory  = 3
	colAmount    = 4
	colNote      = 5
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e model.Entry) []string {
	row := make([]string, numFields)
	row[colEntryID] = e.EntryID
	row[colDate] = e.Date.Format(dateFormat)
	row[colDirection] = string(e.Direction)
	row[colCategory] = e.Category
	row[colAmount] = e.Amount.StringFixed(2)
	row[colNote] = e.Note
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (model.Entry, error) {
	if len(record) != numFields {
		return model.Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	direction := model.Direction(record[colDirection])
	if direction != model.DirectionIncome && direction != model.DirectionExpense {
		return model.Entry{}, fmt.Errorf("unknown direction %q", record[colDirection])
	}

	return model.Entry{
		EntryID:   record[colEntryID],
		Date:      date,
		Direction: direction,
		Category:  record[colCategory],
		Amount:    amount,
		Note:      record[colNote],
	}, nil
}

// ReadEntries reads a monthly journal CSV.
func ReadEntries(r io.Reader) ([]model.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []model.Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// AppendEntries writes entries as CSV rows (no header).
func AppendEntries(w io.Writer, entries []model.Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	return cw.Error()
}
