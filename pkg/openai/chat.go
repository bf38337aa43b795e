package openai

import (
	"TalonAI/pkg/aiprovider"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
)

type Config struct {
	APIKey             string
	BaseURL            string
	ChatModel          string
	TranscriptionModel string
}

type chatGPTService struct {
	client             *openai.Client
	model              string
	transcriptionModel string
}

// ConfigFromEnv reads OPENAI_API_KEY, OPENAI_API_BASE, OPENAI_CHAT_MODEL and
// OPENAI_TRANSCRIPTION_MODEL.
func ConfigFromEnv() Config {
	return Config{
		APIKey:             os.Getenv("OPENAI_API_KEY"),
		BaseURL:            os.Getenv("OPENAI_API_BASE"),
		ChatModel:          os.Getenv("OPENAI_CHAT_MODEL"),
		TranscriptionModel: os.Getenv("OPENAI_TRANSCRIPTION_MODEL"),
	}
}

func New(cfg Config) (aiprovider.IProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai API key is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.ChatModel
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	transcriptionModel := cfg.TranscriptionModel
	if transcriptionModel == "" {
		transcriptionModel = openai.Whisper1
	}

	return &chatGPTService{
		client:             openai.NewClientWithConfig(clientCfg),
		model:              model,
		transcriptionModel: transcriptionModel,
	}, nil
}

func (c *chatGPTService) Services() []string {
	return []string{"openai_whisper", "openai_gpt"}
}

func (c *chatGPTService) Complete(ctx context.Context, req aiprovider.CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONOutput {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("ChatGPT API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", aiprovider.ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
