package aiService

import (
	"TalonAI/internal/api/ai"
	"TalonAI/pkg/aiprovider"
	contextPkg "TalonAI/pkg/context"
	"TalonAI/pkg/response"
	"TalonAI/pkg/utils"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *aiService) Transcribe(ctx context.Context, audio utils.AudioFile) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	text, err := s.provider.Transcribe(ctx, aiprovider.TranscriptionRequest{
		Filename:    audio.Filename,
		ContentType: audio.ContentType,
		Audio:       audio.Data,
		Language:    s.language,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"filename":   audio.Filename,
			"error":      err.Error(),
		}).Error("Transcription failed")
		return "", response.Wrap(ai.ErrTranscription, err)
	}

	s.archiveAudio(ctx, audio)

	return text, nil
}

// archiveAudio stores the recording when an archive is configured. Failures
// are logged only.
func (s *aiService) archiveAudio(ctx context.Context, audio utils.AudioFile) {
	if s.archive == nil {
		return
	}
	requestID := contextPkg.GetRequestID(ctx)

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to generate archive key")
		return
	}

	location, err := s.archive.UploadAudio(ctx, id+"-"+audio.Filename, audio.ContentType, audio.Data)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to archive audio")
		return
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"location":   location,
	}).Debug("Audio archived")
}

func (s *aiService) ProcessCommand(ctx context.Context, text string) (ai.CommandResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	raw, err := s.provider.Complete(ctx, aiprovider.CompletionRequest{
		SystemPrompt: ai.SystemPrompt,
		Prompt:       text,
		Temperature:  ai.ProcessTemperature,
		JSONOutput:   true,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Command processing failed")
		return ai.CommandResult{}, response.Wrap(ai.ErrProcessCommand, err)
	}

	result := ai.ParseCommandResult(raw)
	if result.Intent == ai.FallbackIntent && result.Action == ai.FallbackAction {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Debug("Model reply was not structured, using fallback result")
	}

	return result, nil
}

func (s *aiService) GenerateText(ctx context.Context, prompt string, maxTokens int) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if maxTokens <= 0 {
		maxTokens = ai.DefaultMaxTokens
	}

	text, err := s.provider.Complete(ctx, aiprovider.CompletionRequest{
		Prompt:      prompt,
		Temperature: ai.GenerateTemperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Text generation failed")
		return "", response.Wrap(ai.ErrGenerateText, err)
	}

	return text, nil
}

func (s *aiService) Health() ai.HealthResponse {
	services := make(map[string]bool)
	for _, name := range s.provider.Services() {
		services[name] = true
	}
	return ai.HealthResponse{
		Status:   "healthy",
		Services: services,
	}
}
