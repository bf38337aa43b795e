package sessionService

import (
	"TalonAI/internal/api/session"
	"TalonAI/internal/entity"
	contextPkg "TalonAI/pkg/context"
	"TalonAI/pkg/response"
	"context"

	"github.com/sirupsen/logrus"
)

func (s *sessionService) RecordSession(ctx context.Context, req session.RecordSessionRequest) (entity.VoiceSession, error) {
	requestID := contextPkg.GetRequestID(ctx)

	vs, err := session.NewVoiceSession(req, s.now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Invalid entities")
		return entity.VoiceSession{}, err
	}

	repo, err := s.sessionRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.VoiceSession{}, response.Wrap(session.ErrRecordSession, err)
	}
	defer repo.Rollback()

	id, err := repo.Sessions.CreateSession(ctx, vs)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to record voice session")
		return entity.VoiceSession{}, response.Wrap(session.ErrRecordSession, err)
	}
	vs.ID = id

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.VoiceSession{}, response.Wrap(session.ErrRecordSession, err)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": vs.SessionID,
		"id":         vs.ID,
	}).Info("Voice session recorded")

	return vs, nil
}

func (s *sessionService) ListRecentSessions(ctx context.Context) ([]entity.VoiceSession, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.sessionRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, response.Wrap(session.ErrListSessions, err)
	}

	sessions, err := repo.Sessions.ListRecentSessions(ctx, session.RecentSessionsLimit)
	if err != nil {
		return nil, response.Wrap(session.ErrListSessions, err)
	}

	return sessions, nil
}
