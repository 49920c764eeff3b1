package dialog

import (
	"bytes"
	"encoding/json"

	"github.com/grana-dev/grana/internal/model"
)

// ContextState tells how the caller-supplied conversation context
// resolved at the boundary.
type ContextState string

const (
	ContextAbsent    ContextState = "absent"
	ContextMalformed ContextState = "malformed"
	ContextValid     ContextState = "valid"
)

// Context is the resolved conversation snapshot for one turn. A
// malformed context never reaches the orchestrator branches as an
// error; it behaves exactly like an absent one.
type Context struct {
	State   ContextState
	Pending *model.PendingTransaction
}

type contextSnapshot struct {
	PendingTransaction *model.PendingTransaction `json:"pending_transaction"`
}

// ResolveContext parses the raw context field from a request. The field
// may be a JSON object, a JSON string holding serialized JSON (chat UIs
// commonly re-serialize the previous data payload verbatim), or
// null/absent. Resolution fails open: any parse failure yields a
// Malformed context, never an error.
func ResolveContext(raw json.RawMessage) Context {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Context{State: ContextAbsent}
	}

	// String form: unquote, then parse the inner document.
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return Context{State: ContextMalformed}
		}
		raw = []byte(inner)
	}

	var snap contextSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Context{State: ContextMalformed}
	}
	if snap.PendingTransaction == nil {
		return Context{State: ContextAbsent}
	}
	return Context{State: ContextValid, Pending: snap.PendingTransaction}
}
