package model

import (
	"github.com/shopspring/decimal"
)

// Direction indicates whether money moved in or out.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

// Field names a draft slot the extractor can report as missing.
type Field string

const (
	FieldAmount   Field = "amount"
	FieldCategory Field = "category"
)

// TransactionDraft is a possibly-incomplete transaction extracted from
// free text. Missing lists the fields still needed; a draft with a
// non-empty Missing set must never be offered for confirmation.
type TransactionDraft struct {
	Amount    decimal.Decimal `json:"amount"`
	Direction Direction       `json:"direction"`
	Category  string          `json:"category"`
	Missing   []Field         `json:"-"`
}

// Complete reports whether every required field was extracted.
func (d TransactionDraft) Complete() bool {
	return len(d.Missing) == 0
}

// PendingTransaction is a complete draft surfaced to the user and
// awaiting explicit confirmation. It is held entirely by the caller,
// round-tripped through the conversation context each turn.
type PendingTransaction struct {
	Amount    decimal.Decimal `json:"amount"`
	Direction Direction       `json:"direction"`
	Category  string          `json:"category"`
}

// Pending converts a complete draft into a pending transaction.
func (d TransactionDraft) Pending() PendingTransaction {
	return PendingTransaction{
		Amount:    d.Amount,
		Direction: d.Direction,
		Category:  d.Category,
	}
}
