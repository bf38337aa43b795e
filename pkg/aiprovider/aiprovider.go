// Package aiprovider defines the contract the AI gateway needs from an
// external speech-to-text and text-completion service.
package aiprovider

import (
	"context"
	"errors"
)

type IProvider interface {
	Transcribe(ctx context.Context, req TranscriptionRequest) (string, error)
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Services names the capabilities reported by the health endpoint.
	Services() []string
}

type TranscriptionRequest struct {
	Filename    string
	ContentType string
	Audio       []byte
	Language    string
}

type CompletionRequest struct {
	SystemPrompt string
	Prompt       string
	Temperature  float32
	MaxTokens    int
	// JSONOutput asks the provider to constrain output to a JSON object
	// when it supports that.
	JSONOutput bool
}

var ErrEmptyResponse = errors.New("provider returned no content")
