package session

import (
	"TalonAI/internal/entity"
	"encoding/json"
	"time"
)

// RecentSessionsLimit caps ListRecentSessions.
const RecentSessionsLimit = 100

// RecordSessionRequest fields are all optional; see NewVoiceSession for defaults.
type RecordSessionRequest struct {
	SessionID     *string         `json:"session_id" validate:"omitempty,max=100"`
	CommandText   *string         `json:"command_text"`
	Intent        *string         `json:"intent" validate:"omitempty,max=100"`
	Entities      json.RawMessage `json:"entities"`
	Response      *string         `json:"response"`
	ExecutionTime *float64        `json:"execution_time"`
	Success       *bool           `json:"success"`
	ErrorMessage  *string         `json:"error_message"`
}

type SessionResponse struct {
	ID            int64      `json:"id"`
	SessionID     string     `json:"session_id"`
	CommandText   string     `json:"command_text"`
	Intent        *string    `json:"intent"`
	Entities      string     `json:"entities"`
	Response      string     `json:"response"`
	ExecutionTime float64    `json:"execution_time"`
	Success       bool       `json:"success"`
	ErrorMessage  *string    `json:"error_message"`
	CreatedAt     *time.Time `json:"created_at"`
}

type SessionEnvelope struct {
	Success bool            `json:"success"`
	Session SessionResponse `json:"session"`
}

type SessionListResponse struct {
	Success  bool              `json:"success"`
	Sessions []SessionResponse `json:"sessions"`
}

// NewVoiceSession applies the defaults for omitted fields. Entities default to
// an empty object and are otherwise stored as compact JSON text.
func NewVoiceSession(req RecordSessionRequest, createdAt time.Time) (entity.VoiceSession, error) {
	vs := entity.VoiceSession{
		Entities:     "{}",
		Success:      true,
		Intent:       req.Intent,
		ErrorMessage: req.ErrorMessage,
		CreatedAt:    createdAt,
	}

	if req.SessionID != nil {
		vs.SessionID = *req.SessionID
	}
	if req.CommandText != nil {
		vs.CommandText = *req.CommandText
	}
	if req.Response != nil {
		vs.Response = *req.Response
	}
	if req.ExecutionTime != nil {
		vs.ExecutionTime = *req.ExecutionTime
	}
	if req.Success != nil {
		vs.Success = *req.Success
	}

	if len(req.Entities) > 0 && string(req.Entities) != "null" {
		entities, err := compactJSON(req.Entities)
		if err != nil {
			return entity.VoiceSession{}, ErrInvalidEntities
		}
		vs.Entities = entities
	}

	return vs, nil
}

func NewSessionResponse(s entity.VoiceSession) SessionResponse {
	resp := SessionResponse{
		ID:            s.ID,
		SessionID:     s.SessionID,
		CommandText:   s.CommandText,
		Intent:        s.Intent,
		Entities:      s.Entities,
		Response:      s.Response,
		ExecutionTime: s.ExecutionTime,
		Success:       s.Success,
		ErrorMessage:  s.ErrorMessage,
	}
	if !s.CreatedAt.IsZero() {
		createdAt := s.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

func NewSessionListResponse(sessions []entity.VoiceSession) SessionListResponse {
	resp := SessionListResponse{
		Success:  true,
		Sessions: make([]SessionResponse, 0, len(sessions)),
	}
	for _, s := range sessions {
		resp.Sessions = append(resp.Sessions, NewSessionResponse(s))
	}
	return resp
}
