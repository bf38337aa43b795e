package middleware

import (
	"TalonAI/pkg/log"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var sensitiveFields = []string{
	"password", "token", "secret", "api_key", "apikey",
	"authorization", "credential",
}

const maxLoggedBody = 2048

func (m *middleware) NewLoggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		requestID := m.GetRequestID(c)
		status := c.Response().StatusCode()

		logFields := log.Fields{
			"request_id":    requestID,
			"method":        c.Method(),
			"path":          c.Path(),
			"status":        status,
			"latency_ms":    time.Since(start).Milliseconds(),
			"ip":            c.IP(),
			"user_agent":    c.Get(fiber.HeaderUserAgent),
			"response_size": len(c.Response().Body()),
		}

		if body := c.Request().Body(); len(body) > 0 {
			logFields["request_body"] = sanitizeRequestBody(c.Get(fiber.HeaderContentType), body)
		}

		entry := m.log.WithFields(logFields)
		switch {
		case status >= 500:
			entry.Error("Server error")
		case status >= 400:
			entry.Warn("Client error")
		default:
			entry.Info("Success")
		}

		return err
	}
}

func sanitizeRequestBody(contentType string, body []byte) string {
	if strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		return "[multipart body]"
	}

	var jsonBody map[string]interface{}
	if err := json.Unmarshal(body, &jsonBody); err != nil {
		return "[non-JSON body]"
	}

	for key := range jsonBody {
		lower := strings.ToLower(key)
		for _, field := range sensitiveFields {
			if strings.Contains(lower, field) {
				jsonBody[key] = "[SECRET]"
				break
			}
		}
	}

	sanitized, err := json.Marshal(jsonBody)
	if err != nil {
		return "[sanitization-failed]"
	}

	if len(sanitized) > maxLoggedBody {
		return string(sanitized[:maxLoggedBody]) + "...[truncated]"
	}
	return string(sanitized)
}
