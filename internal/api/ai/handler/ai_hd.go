package aiHandler

import (
	"TalonAI/internal/api/ai"
	"TalonAI/pkg/handlerUtil"
	"TalonAI/pkg/log"
	"TalonAI/pkg/response"
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	errBodyNotObject    = errors.New("request body must be a JSON object")
	errInvalidMaxTokens = errors.New("max_tokens must be at least 1")
)

func (h *AIHandler) SpeechToText(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := h.requestContext(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing speech to text request")

	fileHeader, err := ctx.FormFile("audio")
	if err != nil {
		return errHandler.Handle(ctx, requestID, ai.ErrMissingAudio, ctx.Path(), "speech_to_text")
	}

	audio, err := h.utils.ReadAudioFile(fileHeader)
	if err != nil {
		return errHandler.Handle(ctx, requestID, response.Wrap(ai.ErrReadAudio, err), ctx.Path(), "speech_to_text")
	}

	text, err := h.aiService.Transcribe(c, audio)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "speech_to_text")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, ai.TextResponse{
			Success: true,
			Text:    text,
		})
	}
}

func (h *AIHandler) ProcessCommand(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := h.requestContext(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing process command request")

	var req ai.ProcessCommandRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, errBodyNotObject, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.aiService.ProcessCommand(c, *req.Text)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "process_command")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, ai.ProcessCommandResponse{
			Success: true,
			Result:  result,
		})
	}
}

func (h *AIHandler) GenerateText(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := h.requestContext(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing generate text request")

	var req ai.GenerateTextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, errBodyNotObject, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	maxTokens := ai.DefaultMaxTokens
	if req.MaxTokens != nil {
		if *req.MaxTokens < 1 {
			return errHandler.HandleValidationError(ctx, requestID, errInvalidMaxTokens, ctx.Path())
		}
		maxTokens = *req.MaxTokens
	}

	text, err := h.aiService.GenerateText(c, *req.Prompt, maxTokens)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "generate_text")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, ai.TextResponse{
			Success: true,
			Text:    text,
		})
	}
}

func (h *AIHandler) Health(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(h.aiService.Health())
}
