package commandService

import (
	"TalonAI/internal/api/command"
	commandRepository "TalonAI/internal/api/command/repository"
	"TalonAI/internal/entity"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type ICommandService interface {
	ListActiveCommands(ctx context.Context) ([]entity.Command, error)
	CreateCommand(ctx context.Context, req command.CreateCommandRequest) (entity.Command, error)
	UpdateCommand(ctx context.Context, id int64, req command.UpdateCommandRequest) (entity.Command, error)
	DeleteCommand(ctx context.Context, id int64) error
}

type commandService struct {
	log         *logrus.Logger
	commandRepo commandRepository.Repository
	now         func() time.Time
}

func NewCommandService(
	log *logrus.Logger,
	commandRepo commandRepository.Repository,
) ICommandService {
	return &commandService{
		log:         log,
		commandRepo: commandRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}
