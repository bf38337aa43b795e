package config

import (
	"TalonAI/database/migration"
	"TalonAI/database/sqlite"
	"TalonAI/pkg/aiprovider"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

type echoProvider struct{}

func (echoProvider) Transcribe(_ context.Context, _ aiprovider.TranscriptionRequest) (string, error) {
	return "ok", nil
}

func (echoProvider) Complete(_ context.Context, req aiprovider.CompletionRequest) (string, error) {
	return req.Prompt, nil
}

func (echoProvider) Services() []string { return []string{"openai_whisper", "openai_gpt"} }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(context.Background(), db))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	srv, err := NewServer(
		WithFiber(NewFiber()),
		WithLogger(logger),
		WithValidator(NewValidator()),
		WithDB(db),
		WithProvider(echoProvider{}),
		WithMiddleware(),
		WithUtils(),
	)
	require.NoError(t, err)
	srv.RegisterHandler()
	srv.Mount()
	t.Cleanup(func() { _ = srv.Shutdown(time.Second) })
	return srv
}

func TestNewServer_RequiresCollaborators(t *testing.T) {
	_, err := NewServer(WithLogger(logrus.New()))
	assert.Error(t, err)
}

func TestServer_RoutesMountedUnderPrefix(t *testing.T) {
	srv := newTestServer(t)
	app := srv.App()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"message":"Server is Healthy!"}`, string(body))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	for _, path := range []string{"/api/commands", "/api/sessions", "/api/health"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/generate-text", strings.NewReader(`{"prompt":"echo me"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"success":true,"text":"echo me"}`, string(body))
}

func TestGetDuration(t *testing.T) {
	t.Setenv("TEST_TIMEOUT", "45s")
	assert.Equal(t, 45*time.Second, getDuration("TEST_TIMEOUT", time.Second))

	t.Setenv("TEST_TIMEOUT", "2.5")
	assert.Equal(t, 2500*time.Millisecond, getDuration("TEST_TIMEOUT", time.Second))

	t.Setenv("TEST_TIMEOUT", "soon")
	assert.Equal(t, time.Second, getDuration("TEST_TIMEOUT", time.Second))
}

func TestFiberErrorHandler_RecoversPanics(t *testing.T) {
	app := NewFiber()
	app.Get("/boom", func(c *fiber.Ctx) error { panic("kaboom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
}
