package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a single row in a monthly journal.csv, one recorded cash
// movement. Unlike double-entry bookkeeping there is exactly one row
// per transaction; the direction column carries the sign.
type Entry struct {
	EntryID   string // "YYYY-MM-NNN"
	Date      time.Time
	Direction Direction
	Category  string
	Amount    decimal.Decimal // always positive; Direction carries the sign
	Note      string
}
