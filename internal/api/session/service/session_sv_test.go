package sessionService

import (
	"TalonAI/database/migration"
	"TalonAI/database/sqlite"
	"TalonAI/internal/api/session"
	sessionRepository "TalonAI/internal/api/session/repository"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*sessionService, *sqlx.DB) {
	t.Helper()
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migration.Migrate(context.Background(), db))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := NewSessionService(logger, sessionRepository.New(db, logger)).(*sessionService)
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		at = at.Add(time.Second)
		return at
	}
	return svc, db
}

func TestRecordSession_EmptyRequest(t *testing.T) {
	svc, _ := newTestService(t)

	vs, err := svc.RecordSession(context.Background(), session.RecordSessionRequest{})
	require.NoError(t, err)

	assert.Positive(t, vs.ID)
	assert.Equal(t, "{}", vs.Entities)
	assert.True(t, vs.Success)
	assert.Nil(t, vs.Intent)
	assert.False(t, vs.CreatedAt.IsZero())
}

func TestRecordSession_ThenListNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, id := range []string{"first", "second", "third"} {
		sid := id
		_, err := svc.RecordSession(ctx, session.RecordSessionRequest{
			SessionID: &sid,
			Entities:  json.RawMessage(`{"n": 1}`),
		})
		require.NoError(t, err)
	}

	sessions, err := svc.ListRecentSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "third", sessions[0].SessionID)
	assert.Equal(t, "first", sessions[2].SessionID)
	assert.Equal(t, `{"n":1}`, sessions[0].Entities)
}

func TestListRecentSessions_CappedAtLimit(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < session.RecentSessionsLimit+5; i++ {
		_, err := svc.RecordSession(ctx, session.RecordSessionRequest{})
		require.NoError(t, err)
	}

	sessions, err := svc.ListRecentSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, session.RecentSessionsLimit)
}

func TestRecordSession_StorageFailure(t *testing.T) {
	svc, db := newTestService(t)
	_, err := db.Exec(`DROP TABLE voice_sessions`)
	require.NoError(t, err)

	_, err = svc.RecordSession(context.Background(), session.RecordSessionRequest{})
	assert.ErrorIs(t, err, session.ErrRecordSession)

	_, err = svc.ListRecentSessions(context.Background())
	assert.ErrorIs(t, err, session.ErrListSessions)
}
