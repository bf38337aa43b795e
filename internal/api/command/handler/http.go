package commandHandler

import (
	commandService "TalonAI/internal/api/command/service"
	"TalonAI/internal/middleware"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CommandHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	commandService commandService.ICommandService
	timeout        time.Duration
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs commandService.ICommandService,
	timeout time.Duration,
) *CommandHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CommandHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		commandService: cs,
		timeout:        timeout,
	}
}

func (h *CommandHandler) Start(srv fiber.Router) {
	commands := srv.Group("/commands")

	commands.Get("", h.ListCommands)
	commands.Post("", h.CreateCommand)
	commands.Put("/:id", h.UpdateCommand)
	commands.Delete("/:id", h.DeleteCommand)
}
