package aiHandler

import (
	aiService "TalonAI/internal/api/ai/service"
	"TalonAI/internal/middleware"
	contextPkg "TalonAI/pkg/context"
	"TalonAI/pkg/utils"
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AIHandler struct {
	log        *logrus.Logger
	validator  *validator.Validate
	middleware middleware.Middleware
	aiService  aiService.IAIService
	utils      utils.IUtils
	timeout    time.Duration
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as aiService.IAIService,
	util utils.IUtils,
	timeout time.Duration,
) *AIHandler {
	return &AIHandler{
		log:        log,
		validator:  validate,
		middleware: middleware,
		aiService:  as,
		utils:      util,
		timeout:    timeout,
	}
}

func (h *AIHandler) Start(srv fiber.Router) {
	srv.Post("/speech-to-text", h.middleware.NewRateLimiter, h.SpeechToText)
	srv.Post("/process-command", h.middleware.NewRateLimiter, h.ProcessCommand)
	srv.Post("/generate-text", h.middleware.NewRateLimiter, h.GenerateText)
	srv.Get("/health", h.Health)
}

// requestContext bounds the upstream call by the configured timeout. A zero
// timeout leaves the call bounded only by the client connection.
func (h *AIHandler) requestContext(ctx *fiber.Ctx) (context.Context, context.CancelFunc) {
	parent := contextPkg.FromFiberCtx(ctx)
	if h.timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, h.timeout)
}
