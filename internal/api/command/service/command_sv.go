package commandService

import (
	"TalonAI/internal/api/command"
	"TalonAI/internal/entity"
	contextPkg "TalonAI/pkg/context"
	"TalonAI/pkg/response"
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

func (s *commandService) ListActiveCommands(ctx context.Context) ([]entity.Command, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commandRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, response.Wrap(command.ErrListCommands, err)
	}

	commands, err := repo.Commands.ListActiveCommands(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list commands")
		return nil, response.Wrap(command.ErrListCommands, err)
	}

	return commands, nil
}

func (s *commandService) CreateCommand(ctx context.Context, req command.CreateCommandRequest) (entity.Command, error) {
	requestID := contextPkg.GetRequestID(ctx)

	actionData, err := command.NormalizeActionData(req.ActionData.Value)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       *req.Name,
		}).Warn("Invalid action_data")
		return entity.Command{}, err
	}

	repo, err := s.commandRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Command{}, response.Wrap(command.ErrCreateCommand, err)
	}
	defer repo.Rollback()

	_, err = repo.Commands.GetCommandByName(ctx, *req.Name)
	switch {
	case err == nil:
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       *req.Name,
		}).Warn("Command name already taken")
		return entity.Command{}, command.ErrCommandNameTaken
	case !errors.Is(err, command.ErrCommandNotFound):
		return entity.Command{}, response.Wrap(command.ErrCreateCommand, err)
	}

	now := s.now()
	cmd := entity.Command{
		Name:          *req.Name,
		TriggerPhrase: *req.TriggerPhrase,
		ActionType:    *req.ActionType,
		ActionData:    actionData,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.Description != nil {
		cmd.Description = *req.Description
	}
	if req.IsActive != nil {
		cmd.IsActive = *req.IsActive
	}

	id, err := repo.Commands.CreateCommand(ctx, cmd)
	if err != nil {
		if errors.Is(err, command.ErrCommandNameTaken) {
			return entity.Command{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create command")
		return entity.Command{}, response.Wrap(command.ErrCreateCommand, err)
	}
	cmd.ID = id

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.Command{}, response.Wrap(command.ErrCreateCommand, err)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"command_id": cmd.ID,
		"name":       cmd.Name,
	}).Info("Command created")

	return cmd, nil
}

func (s *commandService) UpdateCommand(ctx context.Context, id int64, req command.UpdateCommandRequest) (entity.Command, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var actionData *string
	if req.ActionData.Set {
		normalized, err := command.NormalizeActionData(req.ActionData.Value)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"command_id": id,
			}).Warn("Invalid action_data")
			return entity.Command{}, err
		}
		actionData = &normalized
	}

	repo, err := s.commandRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Command{}, response.Wrap(command.ErrUpdateCommand, err)
	}
	defer repo.Rollback()

	cmd, err := repo.Commands.GetCommandByID(ctx, id)
	if err != nil {
		if errors.Is(err, command.ErrCommandNotFound) {
			return entity.Command{}, err
		}
		return entity.Command{}, response.Wrap(command.ErrUpdateCommand, err)
	}

	applyUpdate(&cmd, req, actionData)
	cmd.UpdatedAt = s.now()

	if err := repo.Commands.UpdateCommand(ctx, cmd); err != nil {
		if errors.Is(err, command.ErrCommandNameTaken) || errors.Is(err, command.ErrCommandNotFound) {
			return entity.Command{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"command_id": id,
			"error":      err.Error(),
		}).Error("Failed to update command")
		return entity.Command{}, response.Wrap(command.ErrUpdateCommand, err)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.Command{}, response.Wrap(command.ErrUpdateCommand, err)
	}

	return cmd, nil
}

func applyUpdate(cmd *entity.Command, req command.UpdateCommandRequest, actionData *string) {
	if req.Name != nil {
		cmd.Name = *req.Name
	}
	if req.TriggerPhrase != nil {
		cmd.TriggerPhrase = *req.TriggerPhrase
	}
	if req.ActionType != nil {
		cmd.ActionType = *req.ActionType
	}
	if actionData != nil {
		cmd.ActionData = *actionData
	}
	if req.Description != nil {
		cmd.Description = *req.Description
	}
	if req.IsActive != nil {
		cmd.IsActive = *req.IsActive
	}
}

func (s *commandService) DeleteCommand(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commandRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return response.Wrap(command.ErrDeleteCommand, err)
	}
	defer repo.Rollback()

	if err := repo.Commands.DeactivateCommand(ctx, id, s.now()); err != nil {
		if errors.Is(err, command.ErrCommandNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"command_id": id,
			"error":      err.Error(),
		}).Error("Failed to deactivate command")
		return response.Wrap(command.ErrDeleteCommand, err)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return response.Wrap(command.ErrDeleteCommand, err)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"command_id": id,
	}).Info("Command deactivated")

	return nil
}
