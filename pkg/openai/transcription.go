package openai

import (
	"TalonAI/pkg/aiprovider"
	"bytes"
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

func (c *chatGPTService) Transcribe(ctx context.Context, req aiprovider.TranscriptionRequest) (string, error) {
	filename := req.Filename
	if filename == "" {
		filename = "audio.wav"
	}

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.transcriptionModel,
		FilePath: filename,
		Reader:   bytes.NewReader(req.Audio),
		Language: req.Language,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", fmt.Errorf("Whisper API error: %w", err)
	}

	return resp.Text, nil
}
