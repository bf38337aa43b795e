package gemini

import (
	"TalonAI/pkg/aiprovider"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	_, err := NewGeminiClient()
	assert.Error(t, err)
}

func TestResponseText_JoinsTextParts(t *testing.T) {
	res := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("abrir "), genai.Text("navegador")}},
		}},
	}

	text, err := responseText(res)
	require.NoError(t, err)
	assert.Equal(t, "abrir navegador", text)
}

func TestResponseText_Empty(t *testing.T) {
	_, err := responseText(&genai.GenerateContentResponse{})
	assert.ErrorIs(t, err, aiprovider.ErrEmptyResponse)

	_, err = responseText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "audio/wav"}}},
		}},
	})
	assert.Error(t, err)
}

func TestTranscriptionPrompt(t *testing.T) {
	assert.Contains(t, transcriptionPrompt("pt"), `"pt"`)
	assert.NotContains(t, transcriptionPrompt(""), "language")
}
