package session

import "TalonAI/pkg/response"

var (
	ErrInvalidEntities = response.NewError(400, "entities must be valid JSON")
	ErrRecordSession   = response.NewError(500, "failed to record session")
	ErrListSessions    = response.NewError(500, "failed to fetch sessions")
)
