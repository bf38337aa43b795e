package openai

import (
	"TalonAI/pkg/aiprovider"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) aiprovider.IProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := New(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)
	return p
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestComplete_SendsPromptsAndSampling(t *testing.T) {
	var got map[string]any
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"hello there"},"finish_reason":"stop"}]}`)
	})

	out, err := p.Complete(context.Background(), aiprovider.CompletionRequest{
		SystemPrompt: "be terse",
		Prompt:       "hi",
		Temperature:  0.3,
		MaxTokens:    42,
		JSONOutput:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "hello there", out)

	assert.Equal(t, "gpt-3.5-turbo", got["model"])
	assert.InDelta(t, 0.3, got["temperature"], 0.0001)
	assert.EqualValues(t, 42, got["max_tokens"])

	messages, ok := got["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "hi", messages[1].(map[string]any)["content"])

	format, ok := got["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", format["type"])
}

func TestComplete_NoChoices(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"c1","object":"chat.completion","choices":[]}`)
	})

	_, err := p.Complete(context.Background(), aiprovider.CompletionRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, aiprovider.ErrEmptyResponse)
}

func TestComplete_UpstreamError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"invalid api key","type":"invalid_request_error"}}`)
	})

	_, err := p.Complete(context.Background(), aiprovider.CompletionRequest{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestTranscribe_ForwardsAudioAndLanguage(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/transcriptions", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-1", r.FormValue("model"))
		assert.Equal(t, "pt", r.FormValue("language"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "clip.wav", header.Filename)
		assert.Equal(t, []byte("RIFF....WAVE"), data)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"text":"abrir navegador"}`)
	})

	text, err := p.Transcribe(context.Background(), aiprovider.TranscriptionRequest{
		Filename: "clip.wav",
		Audio:    []byte("RIFF....WAVE"),
		Language: "pt",
	})
	require.NoError(t, err)
	assert.Equal(t, "abrir navegador", text)
}

func TestServices(t *testing.T) {
	p, err := New(Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, []string{"openai_whisper", "openai_gpt"}, p.Services())
}
