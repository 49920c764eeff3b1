package dialog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/grana-dev/grana/internal/model"
)

// User-facing reply text. The product speaks Brazilian Portuguese; the
// strings live here as data so every branch of the orchestrator reads
// from one place.
const (
	replyCancelled = "Tudo bem, cancelei. Se precisar de algo é só chamar!"

	replyNoPending = "Não encontrei nenhuma transação pendente. Pode reenviar os detalhes?"

	replyAskAmount = "Entendi! Só ficou faltando o valor. Quanto foi?"

	replyBadAmount = "Esse valor não pareceu válido. Pode me dizer o valor de novo?"

	replyInternal = "Desculpe, algo deu errado por aqui. Pode tentar de novo?"

	replyHelp = "Não entendi. Você pode me dizer coisas como: " +
		"\"paguei 50 no mercado\", \"recebi 2000 de salário\", " +
		"\"qual meu saldo?\" ou \"quanto gastei esse mês?\"."

	replyNoLedger = "Ainda não tenho acesso aos seus números por aqui."
)

var directionLabels = map[model.Direction]string{
	model.DirectionExpense: "despesa",
	model.DirectionIncome:  "receita",
}

var directionTitles = map[model.Direction]string{
	model.DirectionExpense: "Despesa",
	model.DirectionIncome:  "Receita",
}

// formatAmount renders a decimal the way Brazilians read money:
// two places, comma as the decimal separator.
func formatAmount(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

func confirmPrompt(p model.PendingTransaction) string {
	return "Vou registrar uma " + directionLabels[p.Direction] +
		" de R$ " + formatAmount(p.Amount) + " em \"" + p.Category + "\". Confirma?"
}

func successReply(p model.PendingTransaction) string {
	return "Anotado! " + directionTitles[p.Direction] +
		" de R$ " + formatAmount(p.Amount) + " em \"" + p.Category + "\" registrada."
}

func askCategory(amount decimal.Decimal) string {
	return "Anotei R$ " + formatAmount(amount) + ". Com o que foi essa transação?"
}
