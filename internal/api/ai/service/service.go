package aiService

import (
	"TalonAI/internal/api/ai"
	"TalonAI/pkg/aiprovider"
	"TalonAI/pkg/s3"
	"TalonAI/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type IAIService interface {
	Transcribe(ctx context.Context, audio utils.AudioFile) (string, error)
	ProcessCommand(ctx context.Context, text string) (ai.CommandResult, error)
	GenerateText(ctx context.Context, prompt string, maxTokens int) (string, error)
	Health() ai.HealthResponse
}

type aiService struct {
	log      *logrus.Logger
	provider aiprovider.IProvider
	archive  s3.ItfS3
	utils    utils.IUtils
	language string
}

// NewAIService wires the gateway to provider. archive may be nil, in which
// case received audio is not stored.
func NewAIService(
	log *logrus.Logger,
	provider aiprovider.IProvider,
	archive s3.ItfS3,
	util utils.IUtils,
	language string,
) IAIService {
	if language == "" {
		language = "pt"
	}
	return &aiService{
		log:      log,
		provider: provider,
		archive:  archive,
		utils:    util,
		language: language,
	}
}
