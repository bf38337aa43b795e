package command

import "TalonAI/pkg/response"

var (
	ErrCommandNotFound   = response.NewError(404, "command not found")
	ErrCommandNameTaken  = response.NewError(400, "a command with this name already exists")
	ErrInvalidActionData = response.NewError(400, "action_data must be valid JSON")
	ErrListCommands      = response.NewError(500, "failed to fetch commands")
	ErrCreateCommand     = response.NewError(500, "failed to create command")
	ErrUpdateCommand     = response.NewError(500, "failed to update command")
	ErrDeleteCommand     = response.NewError(500, "failed to delete command")
)
