package sessionHandler_test

import (
	"TalonAI/database/migration"
	"TalonAI/database/sqlite"
	"TalonAI/internal/api/session"
	sessionHandler "TalonAI/internal/api/session/handler"
	sessionRepository "TalonAI/internal/api/session/repository"
	sessionService "TalonAI/internal/api/session/service"
	"TalonAI/internal/config"
	"TalonAI/internal/middleware"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migration.Migrate(context.Background(), db))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	mw := middleware.New(logger, middleware.Options{})
	svc := sessionService.NewSessionService(logger, sessionRepository.New(db, logger))

	app := config.NewFiber()
	app.Use(mw.NewRequestIDMiddleware())
	sessionHandler.New(logger, config.NewValidator(), mw, svc, 5*time.Second).Start(app.Group("/api"))
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestRecordSession_EmptyBody(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, http.MethodPost, "/api/sessions", "")
	require.Equal(t, fiber.StatusCreated, status, string(body))

	var env session.SessionEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	assert.True(t, env.Success)
	assert.Positive(t, env.Session.ID)
	assert.Equal(t, "{}", env.Session.Entities)
	assert.True(t, env.Session.Success)
	assert.Nil(t, env.Session.Intent)
	assert.Nil(t, env.Session.ErrorMessage)
}

func TestRecordSession_FullBody(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, http.MethodPost, "/api/sessions",
		`{"session_id":"abc","command_text":"abrir navegador","intent":"open_app","entities":{"app":"browser"},"response":"ok","execution_time":1.5,"success":false,"error_message":"timeout"}`)
	require.Equal(t, fiber.StatusCreated, status, string(body))

	var env session.SessionEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(t, "abc", env.Session.SessionID)
	assert.Equal(t, `{"app":"browser"}`, env.Session.Entities)
	assert.InDelta(t, 1.5, env.Session.ExecutionTime, 1e-9)
	assert.False(t, env.Session.Success)
	require.NotNil(t, env.Session.ErrorMessage)
	assert.Equal(t, "timeout", *env.Session.ErrorMessage)
}

func TestRecordSession_NullEntities(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, http.MethodPost, "/api/sessions", `{"command_text":"abrir","entities":null}`)
	require.Equal(t, fiber.StatusCreated, status, string(body))

	var env session.SessionEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(t, "{}", env.Session.Entities)
}

func TestRecordSession_MalformedJSON(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, http.MethodPost, "/api/sessions", `{"session_id":`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(body), "VALIDATION_ERROR")
}

func TestListRecentSessions(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, http.MethodGet, "/api/sessions", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"sessions":[]`)

	for _, id := range []string{"one", "two"} {
		status, _ := do(t, app, http.MethodPost, "/api/sessions", `{"session_id":"`+id+`"}`)
		require.Equal(t, fiber.StatusCreated, status)
	}

	status, body = do(t, app, http.MethodGet, "/api/sessions", "")
	require.Equal(t, fiber.StatusOK, status)

	var list session.SessionListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list.Sessions, 2)
	assert.Equal(t, "two", list.Sessions[0].SessionID)
	assert.Equal(t, "one", list.Sessions[1].SessionID)
}
