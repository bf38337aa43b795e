package ai

import "TalonAI/pkg/response"

var (
	ErrMissingAudio   = response.NewError(400, "no audio file provided")
	ErrReadAudio      = response.NewError(400, "failed to read audio file")
	ErrTranscription  = response.NewError(500, "speech recognition failed")
	ErrProcessCommand = response.NewError(500, "command processing failed")
	ErrGenerateText   = response.NewError(500, "text generation failed")
)
