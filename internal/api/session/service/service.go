package sessionService

import (
	"TalonAI/internal/api/session"
	sessionRepository "TalonAI/internal/api/session/repository"
	"TalonAI/internal/entity"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type ISessionService interface {
	RecordSession(ctx context.Context, req session.RecordSessionRequest) (entity.VoiceSession, error)
	ListRecentSessions(ctx context.Context) ([]entity.VoiceSession, error)
}

type sessionService struct {
	log         *logrus.Logger
	sessionRepo sessionRepository.Repository
	now         func() time.Time
}

func NewSessionService(
	log *logrus.Logger,
	sessionRepo sessionRepository.Repository,
) ISessionService {
	return &sessionService{
		log:         log,
		sessionRepo: sessionRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}
