package sessionHandler

import (
	"TalonAI/internal/api/session"
	contextPkg "TalonAI/pkg/context"
	"TalonAI/pkg/handlerUtil"
	"TalonAI/pkg/log"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
)

var errMalformedBody = errors.New("request body must be a JSON object")

func (h *SessionHandler) RecordSession(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.timeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing record session request")

	var req session.RecordSessionRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, errMalformedBody, ctx.Path())
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	vs, err := h.sessionService.RecordSession(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "record_session")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, session.SessionEnvelope{
			Success: true,
			Session: session.NewSessionResponse(vs),
		})
	}
}

func (h *SessionHandler) ListRecentSessions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.timeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list sessions request")

	sessions, err := h.sessionService.ListRecentSessions(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_sessions")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, session.NewSessionListResponse(sessions))
	}
}
