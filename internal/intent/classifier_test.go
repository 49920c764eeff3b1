package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grana-dev/grana/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Intent
	}{
		{"cancel word", "cancelar", model.Intent{Kind: model.IntentCancel}},
		{"cancel colloquial", "ah esquece", model.Intent{Kind: model.IntentCancel}},
		{"confirm yes", "sim", model.Intent{Kind: model.IntentConfirm}},
		{"confirm phrase", "pode ser", model.Intent{Kind: model.IntentConfirm}},
		{"balance query", "qual meu saldo?", model.Intent{Kind: model.IntentQuery, Action: model.TurnShowBalance}},
		{"spend query", "quanto gastei esse mês?", model.Intent{Kind: model.IntentQuery, Action: model.TurnShowSpend}},
		{"expense statement", "paguei 50 no mercado", model.Intent{Kind: model.IntentTransaction}},
		{"income statement", "recebi 2000 de salário", model.Intent{Kind: model.IntentTransaction}},
		{"verb without amount", "gastei no mercado", model.Intent{Kind: model.IntentTransaction}},
		{"amount without verb", "50 no mercado", model.Intent{Kind: model.IntentTransaction}},
		{"greeting", "oi", model.Intent{Kind: model.IntentGeneral}},
		{"empty", "", model.Intent{Kind: model.IntentGeneral}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassify_TieBreakOrdering(t *testing.T) {
	// Cancel outranks confirm outranks query outranks transaction.
	assert.Equal(t, model.IntentCancel, Classify("cancela, confirma").Kind)
	assert.Equal(t, model.IntentConfirm, Classify("sim, paguei 50").Kind)
	assert.Equal(t, model.IntentQuery, Classify("quanto gastei em janeiro?").Kind)
}

func TestClassify_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, model.IntentTransaction, Classify("paguei 50 no mercado").Kind)
	}
}
