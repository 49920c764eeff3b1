// Package dialog composes the intent classifier and transaction
// extractor into the per-turn decision of the assistant. The
// orchestrator holds no state between calls: everything it needs
// arrives in the message and the caller-supplied context, which makes
// every invocation independent and trivially parallel.
package dialog

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grana-dev/grana/internal/extract"
	"github.com/grana-dev/grana/internal/intent"
	"github.com/grana-dev/grana/internal/model"
)

// Ledger supplies the figures behind informational queries. The
// orchestrator only reads; recording confirmed transactions is the
// caller's job.
type Ledger interface {
	Balance() (decimal.Decimal, error)
	MonthSpend(year int, month time.Month) (decimal.Decimal, map[string]decimal.Decimal, error)
}

// Orchestrator decides one dialogue turn at a time.
type Orchestrator struct {
	ledger Ledger           // nil when no figures are available
	now    func() time.Time // injected for month-spend tests
}

// New creates an Orchestrator. ledger may be nil; query turns then
// answer without figures instead of failing.
func New(ledger Ledger) *Orchestrator {
	return &Orchestrator{ledger: ledger, now: time.Now}
}

// HandleTurn maps one message plus its caller-supplied context onto a
// TurnResponse. It never returns an error and never panics: unexpected
// faults are caught at this boundary and surfaced as a generic error
// response with the detail attached under data.
func (o *Orchestrator) HandleTurn(message string, rawContext json.RawMessage) (resp model.TurnResponse) {
	defer func() {
		if r := recover(); r != nil {
			resp = internalFailure(fmt.Sprint(r))
		}
	}()

	convCtx := ResolveContext(rawContext)

	switch in := intent.Classify(message); in.Kind {
	case model.IntentCancel:
		return model.TurnResponse{Reply: replyCancelled, Action: model.TurnCancelled}
	case model.IntentQuery:
		return o.handleQuery(in.Action)
	case model.IntentConfirm:
		return handleConfirm(convCtx)
	case model.IntentTransaction:
		return handleTransaction(message)
	default:
		return model.TurnResponse{Reply: replyHelp, Action: model.TurnMessage}
	}
}

// internalFailure is the catch-all shape: a generic apology as the
// reply, with the underlying detail attached for diagnostics only.
func internalFailure(detail string) model.TurnResponse {
	return model.TurnResponse{
		Reply:  replyInternal,
		Action: model.TurnError,
		Data:   map[string]any{"details": detail},
	}
}

func handleConfirm(convCtx Context) model.TurnResponse {
	if convCtx.Pending == nil {
		return model.TurnResponse{Reply: replyNoPending, Action: model.TurnError}
	}

	p := *convCtx.Pending
	return model.TurnResponse{
		Reply:  successReply(p),
		Action: model.TurnSuccess,
		Data: map[string]any{
			"amount":    p.Amount,
			"direction": p.Direction,
			"category":  p.Category,
		},
	}
}

func handleTransaction(message string) model.TurnResponse {
	draft, err := extract.Extract(message)
	if errors.Is(err, extract.ErrInvalidAmount) {
		return model.TurnResponse{
			Reply:  replyBadAmount,
			Action: model.TurnNeedMoreInfo,
			Data:   map[string]any{"missing_field": model.FieldAmount},
		}
	}
	if err != nil {
		return internalFailure(err.Error())
	}

	if !draft.Complete() {
		return incompleteResponse(draft)
	}

	pending := draft.Pending()
	return model.TurnResponse{
		Reply:  confirmPrompt(pending),
		Action: model.TurnAwaitingConfirmation,
		Data:   map[string]any{"pending_transaction": pending},
	}
}

func incompleteResponse(draft model.TransactionDraft) model.TurnResponse {
	missing := draft.Missing[0]

	partial := map[string]any{"direction": draft.Direction}
	if draft.Category != "" {
		partial["category"] = draft.Category
	}
	if missing != model.FieldAmount {
		partial["amount"] = draft.Amount
	}

	reply := replyAskAmount
	if missing == model.FieldCategory {
		reply = askCategory(draft.Amount)
	}

	return model.TurnResponse{
		Reply:  reply,
		Action: model.TurnNeedMoreInfo,
		Data: map[string]any{
			"missing_field": missing,
			"partial_data":  partial,
		},
	}
}

func (o *Orchestrator) handleQuery(action model.TurnAction) model.TurnResponse {
	if o.ledger == nil {
		return model.TurnResponse{Reply: replyNoLedger, Action: action}
	}

	switch action {
	case model.TurnShowBalance:
		balance, err := o.ledger.Balance()
		if err != nil {
			return internalFailure(fmt.Sprintf("reading balance: %v", err))
		}
		return model.TurnResponse{
			Reply:  "Seu saldo atual é R$ " + formatAmount(balance) + ".",
			Action: action,
			Data:   map[string]any{"balance": balance},
		}
	default: // model.TurnShowSpend
		now := o.now()
		total, byCategory, err := o.ledger.MonthSpend(now.Year(), now.Month())
		if err != nil {
			return internalFailure(fmt.Sprintf("reading month spend: %v", err))
		}
		return model.TurnResponse{
			Reply:  "Você gastou R$ " + formatAmount(total) + " este mês.",
			Action: action,
			Data: map[string]any{
				"total":       total,
				"by_category": byCategory,
			},
		}
	}
}
