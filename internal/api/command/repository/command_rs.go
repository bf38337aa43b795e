package commandRepository

import (
	"TalonAI/database"
	"TalonAI/internal/api/command"
	"TalonAI/internal/entity"
	contextPkg "TalonAI/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CommandDB struct {
	ID            int64          `db:"id"`
	Name          sql.NullString `db:"name"`
	TriggerPhrase sql.NullString `db:"trigger_phrase"`
	ActionType    sql.NullString `db:"action_type"`
	ActionData    sql.NullString `db:"action_data"`
	Description   sql.NullString `db:"description"`
	IsActive      sql.NullBool   `db:"is_active"`
	CreatedAt     sql.NullTime   `db:"created_at"`
	UpdatedAt     sql.NullTime   `db:"updated_at"`
}

func (r *commandsRepository) ListActiveCommands(ctx context.Context) ([]entity.Command, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []CommandDB

	query, args, err := sqlx.Named(queryListActiveCommands, map[string]interface{}{
		"is_active": true,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListActiveCommands named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListActiveCommands execution err")
		return nil, err
	}

	commands := make([]entity.Command, 0, len(rows))
	for _, row := range rows {
		commands = append(commands, r.makeCommand(row))
	}

	return commands, nil
}

func (r *commandsRepository) GetCommandByID(ctx context.Context, id int64) (entity.Command, error) {
	return r.getOne(ctx, "GetCommandByID", queryGetCommandByID, map[string]interface{}{
		"id": id,
	})
}

func (r *commandsRepository) GetCommandByName(ctx context.Context, name string) (entity.Command, error) {
	return r.getOne(ctx, "GetCommandByName", queryGetCommandByName, map[string]interface{}{
		"name": name,
	})
}

func (r *commandsRepository) getOne(ctx context.Context, op string, namedQuery string, argsKV map[string]interface{}) (entity.Command, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row CommandDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return entity.Command{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"args":       argsKV,
			}).Debug(op + " no rows found")
			return entity.Command{}, command.ErrCommandNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return entity.Command{}, err
	}

	return r.makeCommand(row), nil
}

func (r *commandsRepository) CreateCommand(ctx context.Context, cmd entity.Command) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"name":           cmd.Name,
		"trigger_phrase": cmd.TriggerPhrase,
		"action_type":    cmd.ActionType,
		"action_data":    cmd.ActionData,
		"description":    cmd.Description,
		"is_active":      cmd.IsActive,
		"created_at":     cmd.CreatedAt,
		"updated_at":     cmd.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateCommand, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateCommand")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		if database.IsUniqueViolation(err) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"name":       cmd.Name,
			}).Warn("CreateCommand unique constraint violated")
			return 0, command.ErrCommandNameTaken
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating command")
		return 0, err
	}

	return id, nil
}

func (r *commandsRepository) UpdateCommand(ctx context.Context, cmd entity.Command) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":             cmd.ID,
		"name":           cmd.Name,
		"trigger_phrase": cmd.TriggerPhrase,
		"action_type":    cmd.ActionType,
		"action_data":    cmd.ActionData,
		"description":    cmd.Description,
		"is_active":      cmd.IsActive,
		"updated_at":     cmd.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateCommand, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateCommand")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		if database.IsUniqueViolation(err) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"name":       cmd.Name,
			}).Warn("UpdateCommand unique constraint violated")
			return command.ErrCommandNameTaken
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating command")
		return err
	}

	return expectOneRow(res)
}

func (r *commandsRepository) DeactivateCommand(ctx context.Context, id int64, at time.Time) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         id,
		"is_active":  false,
		"updated_at": at,
	}

	query, args, err := sqlx.Named(queryDeactivateCommand, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeactivateCommand")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deactivating command")
		return err
	}

	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return command.ErrCommandNotFound
	}
	return nil
}

func (r *commandsRepository) makeCommand(row CommandDB) entity.Command {
	return entity.Command{
		ID:            row.ID,
		Name:          row.Name.String,
		TriggerPhrase: row.TriggerPhrase.String,
		ActionType:    row.ActionType.String,
		ActionData:    row.ActionData.String,
		Description:   row.Description.String,
		IsActive:      row.IsActive.Bool,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
