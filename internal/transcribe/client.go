// Package transcribe delegates speech-to-text to an external provider.
// The dialogue core never sees audio; it only receives the transcribed
// text as a regular message.
package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/grana-dev/grana/internal/config"
)

// Transcriber converts an audio stream into plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, filename, language string) (string, error)
}

// APIError is a non-2xx response from the provider.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("transcription API returned %d: %s", e.StatusCode, e.Body)
}

// HTTPClient talks to an OpenAI-compatible transcription endpoint
// (multipart upload, JSON {"text": ...} response).
type HTTPClient struct {
	url        string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient builds a client from config. Returns nil when no URL is
// configured, which disables audio turns rather than failing startup.
func NewHTTPClient(cfg config.TranscriberConfig) *HTTPClient {
	if cfg.URL == "" {
		return nil
	}
	apiKey := ""
	if cfg.APIKeyEnv != "" {
		apiKey = os.Getenv(cfg.APIKeyEnv)
	}
	return &HTTPClient{
		url:        cfg.URL,
		model:      cfg.Model,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

type transcription struct {
	Text string `json:"text"`
}

// Transcribe uploads the audio stream with a language hint and returns
// the transcribed text.
func (c *HTTPClient) Transcribe(ctx context.Context, audio io.Reader, filename, language string) (string, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := writeForm(mw, audio, filename, c.model, language)
		if cerr := mw.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, pr)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result transcription
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding transcription: %w", err)
	}
	return result.Text, nil
}

func writeForm(mw *multipart.Writer, audio io.Reader, filename, model, language string) error {
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return fmt.Errorf("copying audio: %w", err)
	}
	if model != "" {
		if err := mw.WriteField("model", model); err != nil {
			return fmt.Errorf("writing model field: %w", err)
		}
	}
	if language != "" {
		if err := mw.WriteField("language", language); err != nil {
			return fmt.Errorf("writing language field: %w", err)
		}
	}
	return nil
}
