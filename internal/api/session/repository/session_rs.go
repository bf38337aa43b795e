package sessionRepository

import (
	"TalonAI/internal/entity"
	contextPkg "TalonAI/pkg/context"
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type VoiceSessionDB struct {
	ID            int64           `db:"id"`
	SessionID     sql.NullString  `db:"session_id"`
	CommandText   sql.NullString  `db:"command_text"`
	Intent        sql.NullString  `db:"intent"`
	Entities      sql.NullString  `db:"entities"`
	Response      sql.NullString  `db:"response"`
	ExecutionTime sql.NullFloat64 `db:"execution_time"`
	Success       sql.NullBool    `db:"success"`
	ErrorMessage  sql.NullString  `db:"error_message"`
	CreatedAt     sql.NullTime    `db:"created_at"`
}

func (r *sessionsRepository) CreateSession(ctx context.Context, vs entity.VoiceSession) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"session_id":     vs.SessionID,
		"command_text":   vs.CommandText,
		"intent":         nullString(vs.Intent),
		"entities":       vs.Entities,
		"response":       vs.Response,
		"execution_time": vs.ExecutionTime,
		"success":        vs.Success,
		"error_message":  nullString(vs.ErrorMessage),
		"created_at":     vs.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateSession, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateSession")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating voice session")
		return 0, err
	}

	return id, nil
}

func (r *sessionsRepository) ListRecentSessions(ctx context.Context, limit int) ([]entity.VoiceSession, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []VoiceSessionDB

	query, args, err := sqlx.Named(queryListRecentSessions, map[string]interface{}{
		"limit": limit,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListRecentSessions named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListRecentSessions execution err")
		return nil, err
	}

	sessions := make([]entity.VoiceSession, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, r.makeVoiceSession(row))
	}

	return sessions, nil
}

func (r *sessionsRepository) makeVoiceSession(row VoiceSessionDB) entity.VoiceSession {
	vs := entity.VoiceSession{
		ID:            row.ID,
		SessionID:     row.SessionID.String,
		CommandText:   row.CommandText.String,
		Entities:      row.Entities.String,
		Response:      row.Response.String,
		ExecutionTime: row.ExecutionTime.Float64,
		Success:       row.Success.Bool,
		CreatedAt:     row.CreatedAt.Time,
	}
	if row.Intent.Valid {
		vs.Intent = &row.Intent.String
	}
	if row.ErrorMessage.Valid {
		vs.ErrorMessage = &row.ErrorMessage.String
	}
	if !row.Success.Valid {
		vs.Success = true
	}
	return vs
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
