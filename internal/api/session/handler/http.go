package sessionHandler

import (
	sessionService "TalonAI/internal/api/session/service"
	"TalonAI/internal/middleware"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SessionHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	sessionService sessionService.ISessionService
	timeout        time.Duration
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ss sessionService.ISessionService,
	timeout time.Duration,
) *SessionHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SessionHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		sessionService: ss,
		timeout:        timeout,
	}
}

func (h *SessionHandler) Start(srv fiber.Router) {
	sessions := srv.Group("/sessions")

	sessions.Post("", h.RecordSession)
	sessions.Get("", h.ListRecentSessions)
}
