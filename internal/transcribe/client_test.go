package transcribe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grana-dev/grana/internal/config"
)

func TestNewHTTPClient_DisabledWithoutURL(t *testing.T) {
	assert.Nil(t, NewHTTPClient(config.TranscriberConfig{}))
}

func TestTranscribe(t *testing.T) {
	var gotModel, gotLanguage, gotFile string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotModel = r.FormValue("model")
		gotLanguage = r.FormValue("language")

		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		gotFile = header.Filename

		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"paguei 50 no mercado"}`))
	}))
	defer srv.Close()

	t.Setenv("TEST_STT_KEY", "test-key")
	client := NewHTTPClient(config.TranscriberConfig{
		URL:       srv.URL,
		Model:     "whisper-1",
		APIKeyEnv: "TEST_STT_KEY",
	})
	require.NotNil(t, client)

	text, err := client.Transcribe(context.Background(), strings.NewReader("fake-audio"), "voice.ogg", "pt")
	require.NoError(t, err)

	assert.Equal(t, "paguei 50 no mercado", text)
	assert.Equal(t, "whisper-1", gotModel)
	assert.Equal(t, "pt", gotLanguage)
	assert.Equal(t, "voice.ogg", gotFile)
}

func TestTranscribe_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewHTTPClient(config.TranscriberConfig{URL: srv.URL})
	_, err := client.Transcribe(context.Background(), strings.NewReader("x"), "voice.ogg", "pt")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}
