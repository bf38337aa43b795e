package commandHandler

import (
	"TalonAI/internal/api/command"
	contextPkg "TalonAI/pkg/context"
	"TalonAI/pkg/handlerUtil"
	"TalonAI/pkg/log"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	errBodyNotObject     = errors.New("request body must be a JSON object")
	errMissingActionData = errors.New("missing required field: action_data")
)

func (h *CommandHandler) ListCommands(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.timeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list commands request")

	commands, err := h.commandService.ListActiveCommands(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_commands")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, command.NewCommandListResponse(commands))
	}
}

func (h *CommandHandler) CreateCommand(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.timeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create command request")

	var req command.CreateCommandRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, errBodyNotObject, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if req.MissingActionData() {
		return errHandler.HandleValidationError(ctx, requestID, errMissingActionData, ctx.Path())
	}

	cmd, err := h.commandService.CreateCommand(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_command")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, command.CommandEnvelope{
			Success: true,
			Command: command.NewCommandResponse(cmd),
		})
	}
}

func (h *CommandHandler) UpdateCommand(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.timeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update command request")

	id, err := ctx.ParamsInt("id")
	if err != nil {
		return errHandler.HandleNotFound(ctx, requestID, command.ErrCommandNotFound, ctx.Path())
	}

	var req command.UpdateCommandRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, errBodyNotObject, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	cmd, err := h.commandService.UpdateCommand(c, int64(id), req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_command")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, command.CommandEnvelope{
			Success: true,
			Command: command.NewCommandResponse(cmd),
		})
	}
}

func (h *CommandHandler) DeleteCommand(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.timeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete command request")

	id, err := ctx.ParamsInt("id")
	if err != nil {
		return errHandler.HandleNotFound(ctx, requestID, command.ErrCommandNotFound, ctx.Path())
	}

	if err := h.commandService.DeleteCommand(c, int64(id)); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_command")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, command.MessageResponse{
			Success: true,
			Message: "Command deactivated successfully",
		})
	}
}
