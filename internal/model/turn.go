package model

// TurnAction tags the outcome of one dialogue turn.
type TurnAction string

const (
	TurnCancelled            TurnAction = "cancelled"
	TurnSuccess              TurnAction = "success"
	TurnError                TurnAction = "error"
	TurnNeedMoreInfo         TurnAction = "need_more_info"
	TurnAwaitingConfirmation TurnAction = "awaiting_confirmation"
	TurnMessage              TurnAction = "message"

	// Query action tags, assigned by the classifier and passed through
	// to the response unchanged.
	TurnShowBalance TurnAction = "show_balance"
	TurnShowSpend   TurnAction = "show_spend"
)

// TurnResponse is the structured result of handling one message. The
// transport layer serializes it verbatim; it never maps Action onto
// HTTP status codes.
type TurnResponse struct {
	Reply  string         `json:"reply"`
	Action TurnAction     `json:"action"`
	Data   map[string]any `json:"data,omitempty"`
}
