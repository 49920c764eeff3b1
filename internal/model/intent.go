package model

// IntentKind classifies the purpose of a user message.
type IntentKind string

const (
	IntentCancel      IntentKind = "cancel"
	IntentQuery       IntentKind = "query"
	IntentConfirm     IntentKind = "confirm"
	IntentTransaction IntentKind = "transaction"
	IntentGeneral     IntentKind = "general"
)

// Intent is the classified purpose of a message. Exactly one kind is
// assigned per message. Query intents carry the action tag naming the
// question asked; the other kinds carry no payload of their own.
type Intent struct {
	Kind   IntentKind
	Action TurnAction // set only when Kind == IntentQuery
}
