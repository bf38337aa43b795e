package config

import (
	"TalonAI/internal/middleware"
	"TalonAI/pkg/handlerUtil"
	"TalonAI/pkg/log"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"
)

func NewFiber() *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:           "Talon AI",
			BodyLimit:         30 * 1024 * 1024,
			DisableKeepalive:  false,
			StrictRouting:     true,
			CaseSensitive:     true,
			EnablePrintRoutes: false,
			JSONEncoder:       jsoniter.Marshal,
			JSONDecoder:       jsoniter.Unmarshal,
			ErrorHandler:      newErrorHandler(),
		})

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))

	return app
}

// newErrorHandler renders errors that escape a handler, including recovered
// panics, as JSON.
func newErrorHandler() fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
			return ctx.Status(fiberErr.Code).JSON(handlerUtil.ErrorResponse{Error: fiberErr.Message})
		}

		requestID, _ := ctx.Locals(middleware.RequestIDKey).(string)
		traceID := log.ErrorWithTraceID(log.Fields{
			log.RequestIDKey: requestID,
			"path":           ctx.Path(),
			"method":         ctx.Method(),
			"error":          err.Error(),
		}, "Unhandled error")

		ctx.Set("X-Trace-ID", traceID)
		return ctx.Status(fiber.StatusInternalServerError).JSON(handlerUtil.ErrorResponse{
			Error: "An unexpected error occurred: " + err.Error(),
		})
	}
}
