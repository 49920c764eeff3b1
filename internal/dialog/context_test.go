package dialog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveContext_Absent(t *testing.T) {
	assert.Equal(t, ContextAbsent, ResolveContext(nil).State)
	assert.Equal(t, ContextAbsent, ResolveContext(json.RawMessage(`null`)).State)
	assert.Equal(t, ContextAbsent, ResolveContext(json.RawMessage(`  `)).State)
}

func TestResolveContext_ObjectForm(t *testing.T) {
	raw := json.RawMessage(`{"pending_transaction":{"amount":50,"direction":"expense","category":"mercado"}}`)
	got := ResolveContext(raw)

	require.Equal(t, ContextValid, got.State)
	require.NotNil(t, got.Pending)
	assert.True(t, got.Pending.Amount.Equal(dec("50")))
	assert.Equal(t, "mercado", got.Pending.Category)
}

func TestResolveContext_DoubleEncodedString(t *testing.T) {
	inner := `{"pending_transaction":{"amount":50,"direction":"expense","category":"mercado"}}`
	raw, err := json.Marshal(inner)
	require.NoError(t, err)

	got := ResolveContext(raw)
	require.Equal(t, ContextValid, got.State)
	require.NotNil(t, got.Pending)
	assert.True(t, got.Pending.Amount.Equal(dec("50")))
}

func TestResolveContext_MalformedFailsOpen(t *testing.T) {
	for _, raw := range []string{`{`, `"{"`, `[1,2`, `"not json at all"`, `12x`} {
		got := ResolveContext(json.RawMessage(raw))
		assert.Equal(t, ContextMalformed, got.State, "input %q", raw)
		assert.Nil(t, got.Pending)
	}
}

func TestResolveContext_ObjectWithoutPending(t *testing.T) {
	got := ResolveContext(json.RawMessage(`{"something_else":1}`))
	assert.Equal(t, ContextAbsent, got.State)
	assert.Nil(t, got.Pending)
}
