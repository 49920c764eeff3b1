// Package extract turns free-text financial statements into structured
// transaction drafts: amount, income/expense direction and category,
// with explicit missing-field reporting. Everything here is a pure
// function of the input text.
package extract

import (
	"strings"

	"github.com/grana-dev/grana/internal/model"
)

// ExpenseCues are verb forms indicating money going out.
var ExpenseCues = []string{
	"paguei", "pagou", "pagar",
	"gastei", "gastou", "gastar",
	"comprei", "comprou", "comprar",
	"torrei",
}

// IncomeCues are verb forms indicating money coming in.
var IncomeCues = []string{
	"recebi", "recebeu", "receber",
	"ganhei", "ganhou", "ganhar",
	"vendi", "vendeu", "entrou", "caiu",
}

// DefaultDirection applies when an amount is present without any
// directional verb. Users state expenses far more often than income,
// so the undirected case reads as an expense.
const DefaultDirection = model.DirectionExpense

// stopWords are articles, prepositions and fillers dropped when the
// residual text is distilled into a category.
var stopWords = map[string]bool{
	"o": true, "a": true, "os": true, "as": true,
	"um": true, "uma": true, "uns": true, "umas": true,
	"no": true, "na": true, "nos": true, "nas": true,
	"em": true, "de": true, "do": true, "da": true, "dos": true, "das": true,
	"com": true, "por": true, "pelo": true, "pela": true,
	"pra": true, "pro": true, "para": true,
	"eu": true, "meu": true, "minha": true, "que": true, "e": true,
	"hoje": true, "ontem": true, "anteontem": true, "agora": true,
	"r": true, "rs": true, "real": true, "reais": true, "conto": true, "contos": true,
}

// Extract parses a financial statement into a TransactionDraft. The
// draft's Missing set lists required fields the text did not supply, in
// priority order (amount before category); partially extracted fields
// are still filled in so the caller can ask only for what is absent.
// The only error is ErrInvalidAmount.
func Extract(text string) (model.TransactionDraft, error) {
	draft := model.TransactionDraft{Direction: DefaultDirection}

	if MatchesAny(text, IncomeCues) {
		draft.Direction = model.DirectionIncome
	} else if MatchesAny(text, ExpenseCues) {
		draft.Direction = model.DirectionExpense
	}

	amount, found, err := FindAmount(text)
	if err != nil {
		return model.TransactionDraft{}, err
	}
	draft.Amount = amount
	draft.Category = categoryOf(text)

	if !found {
		draft.Missing = append(draft.Missing, model.FieldAmount)
	}
	if draft.Category == "" {
		draft.Missing = append(draft.Missing, model.FieldCategory)
	}
	return draft, nil
}

// categoryOf distills the residual text into a category: tokens left
// after removing direction verbs, numeric tokens and stop words, joined
// in their original order.
func categoryOf(text string) string {
	cues := make(map[string]bool, len(ExpenseCues)+len(IncomeCues))
	for _, c := range ExpenseCues {
		cues[c] = true
	}
	for _, c := range IncomeCues {
		cues[c] = true
	}

	var kept []string
	for _, tok := range Tokenize(text) {
		if cues[tok] || stopWords[tok] || amountPattern.MatchString(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}
