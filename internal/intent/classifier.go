// Package intent classifies user messages into a closed set of intent
// categories. Classification is total: every input maps to exactly one
// category, with general as the fallback.
package intent

import (
	"github.com/grana-dev/grana/internal/extract"
	"github.com/grana-dev/grana/internal/model"
)

// Cue sets are normalized (lowercase, unaccented) words or phrases
// matched on word boundaries.
var (
	cancelCues = []string{
		"cancelar", "cancela", "cancele",
		"esquece", "esquecer", "desiste",
		"deixa pra la", "deixa para la", "nao quero mais",
	}

	confirmCues = []string{
		"sim", "confirma", "confirmo", "confirmar", "confirmado",
		"pode ser", "pode sim", "isso", "isso mesmo",
		"ok", "okay", "certo", "claro", "com certeza",
		"beleza", "positivo", "fechado",
	}

	balanceCues = []string{
		"saldo", "quanto tenho", "quanto eu tenho", "quanto tem na conta",
	}

	spendCues = []string{
		"quanto gastei", "quanto eu gastei", "quanto ja gastei",
		"gastos", "despesas", "extrato", "resumo do mes",
	}
)

// Classify assigns exactly one intent category to a message.
//
// When a message matches cues for more than one category the most
// specific wins: cancel > confirm > query > transaction > general.
// The ordering is load-bearing: "cancela, confirma" must cancel, and
// "quanto gastei esse mes" is a question, not a new expense, even
// though it contains an expense verb.
func Classify(text string) model.Intent {
	switch {
	case extract.MatchesAny(text, cancelCues):
		return model.Intent{Kind: model.IntentCancel}
	case extract.MatchesAny(text, confirmCues):
		return model.Intent{Kind: model.IntentConfirm}
	case extract.MatchesAny(text, balanceCues):
		return model.Intent{Kind: model.IntentQuery, Action: model.TurnShowBalance}
	case extract.MatchesAny(text, spendCues):
		return model.Intent{Kind: model.IntentQuery, Action: model.TurnShowSpend}
	case extract.MatchesAny(text, extract.ExpenseCues),
		extract.MatchesAny(text, extract.IncomeCues),
		extract.ContainsAmount(text):
		return model.Intent{Kind: model.IntentTransaction}
	default:
		return model.Intent{Kind: model.IntentGeneral}
	}
}
