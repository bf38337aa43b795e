package gemini

import (
	"TalonAI/pkg/aiprovider"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiClient struct {
	modelName string
	client    *genai.Client
}

func NewGeminiClient() (aiprovider.IProvider, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		modelName: modelName,
		client:    client,
	}, nil
}

func (g *geminiClient) Services() []string {
	return []string{"gemini_transcription", "gemini_text"}
}

func (g *geminiClient) Transcribe(ctx context.Context, req aiprovider.TranscriptionRequest) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(0)

	mimeType := req.ContentType
	if mimeType == "" {
		mimeType = "audio/wav"
	}

	res, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: req.Audio},
		genai.Text(transcriptionPrompt(req.Language)),
	)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text, err := responseText(res)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (g *geminiClient) Complete(ctx context.Context, req aiprovider.CompletionRequest) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(req.Temperature)
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	if req.SystemPrompt != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.SystemPrompt)}}
	}
	if req.JSONOutput {
		model.ResponseMIMEType = "application/json"
	}

	res, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	return responseText(res)
}

func (g *geminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

func transcriptionPrompt(language string) string {
	if language == "" {
		return "Transcribe this audio. Reply with the transcript only."
	}
	return fmt.Sprintf("Transcribe this audio. The speech is in language %q. Reply with the transcript only.", language)
}

func responseText(res *genai.GenerateContentResponse) (string, error) {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return "", aiprovider.ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	if sb.Len() == 0 {
		return "", errors.New("unexpected response format from Gemini API")
	}
	return sb.String(), nil
}
