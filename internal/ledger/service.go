// Package ledger owns the assistant's figures: a CSV cash journal laid
// out as <dir>/YYYY/MM/journal.csv, one row per recorded transaction.
// The dialogue core only ever reads balances and spend totals from it;
// writing happens when the transport layer commits a confirmed
// transaction.
package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grana-dev/grana/internal/id"
	"github.com/grana-dev/grana/internal/model"
)

// Service provides read and append access to the cash journal.
type Service struct {
	root string
}

// NewService creates a ledger Service rooted at dir.
func NewService(root string) *Service {
	return &Service{root: root}
}

// Record appends a confirmed transaction to the journal for its date's
// month and returns the new entry ID. Incomplete or non-positive
// transactions are rejected; the dialogue layer must never let one
// reach this point.
func (s *Service) Record(p model.PendingTransaction, date time.Time, note string) (string, error) {
	if !p.Amount.IsPositive() {
		return "", fmt.Errorf("recording transaction: amount %s is not positive", p.Amount)
	}
	if p.Direction != model.DirectionIncome && p.Direction != model.DirectionExpense {
		return "", fmt.Errorf("recording transaction: unknown direction %q", p.Direction)
	}
	if p.Category == "" {
		return "", errors.New("recording transaction: empty category")
	}

	year := date.Year()
	month := int(date.Month())

	seq, err := s.NextEntrySeq(year, month)
	if err != nil {
		return "", err
	}
	entryID := id.FormatEntryID(year, month, seq)

	entry := model.Entry{
		EntryID:   entryID,
		Date:      date,
		Direction: p.Direction,
		Category:  p.Category,
		Amount:    p.Amount,
		Note:      note,
	}

	journalPath := s.monthPath(year, month)
	if err := os.MkdirAll(filepath.Dir(journalPath), 0o755); err != nil {
		return "", fmt.Errorf("creating journal dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(journalPath); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(journalPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return "", fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendEntries(f, []model.Entry{entry}); err != nil {
		return "", fmt.Errorf("appending entry: %w", err)
	}

	return entryID, nil
}

// ReadMonth reads all entries for a given year/month. A missing journal
// file reads as an empty month.
func (s *Service) ReadMonth(year, month int) ([]model.Entry, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return entries, nil
}

// Balance sums income minus expense across every month on disk.
func (s *Service) Balance() (decimal.Decimal, error) {
	balance := decimal.Zero

	err := s.walkEntries(func(e model.Entry) {
		if e.Direction == model.DirectionIncome {
			balance = balance.Add(e.Amount)
		} else {
			balance = balance.Sub(e.Amount)
		}
	})
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// MonthSpend totals expenses for one month, overall and per category.
func (s *Service) MonthSpend(year int, month time.Month) (decimal.Decimal, map[string]decimal.Decimal, error) {
	entries, err := s.ReadMonth(year, int(month))
	if err != nil {
		return decimal.Zero, nil, err
	}

	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, e := range entries {
		if e.Direction != model.DirectionExpense {
			continue
		}
		total = total.Add(e.Amount)
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}
	return total, byCategory, nil
}

// NextEntrySeq returns the next available sequence number for a month.
func (s *Service) NextEntrySeq(year, month int) (int, error) {
	entries, err := s.ReadMonth(year, month)
	if err != nil {
		return 0, err
	}

	maxSeq := 0
	for _, e := range entries {
		_, _, seq, err := id.ParseEntryID(e.EntryID)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1, nil
}

// walkEntries visits every journal entry under the ledger root.
func (s *Service) walkEntries(visit func(model.Entry)) error {
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil // empty ledger
			}
			return err
		}
		if d.IsDir() || d.Name() != "journal.csv" {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening journal %s: %w", path, err)
		}
		defer f.Close()

		entries, err := ReadEntries(f)
		if err != nil {
			return fmt.Errorf("reading journal %s: %w", path, err)
		}
		for _, e := range entries {
			visit(e)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking ledger: %w", err)
	}
	return nil
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.root, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "journal.csv")
}
