package commandRepository

import (
	"TalonAI/internal/entity"
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

// NewClient returns a client bound to the pool, or to a fresh transaction when
// tx is true. Rollback after Commit is a no-op, so callers defer Rollback.
func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Commands: &commandsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Commands interface {
		ListActiveCommands(ctx context.Context) ([]entity.Command, error)
		GetCommandByID(ctx context.Context, id int64) (entity.Command, error)
		GetCommandByName(ctx context.Context, name string) (entity.Command, error)
		CreateCommand(ctx context.Context, cmd entity.Command) (int64, error)
		UpdateCommand(ctx context.Context, cmd entity.Command) error
		DeactivateCommand(ctx context.Context, id int64, at time.Time) error
	}

	Commit   func() error
	Rollback func() error
}

type commandsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
