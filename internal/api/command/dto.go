package command

import (
	"TalonAI/internal/entity"
	"time"
)

// CreateCommandRequest uses pointers so that presence, not emptiness, decides
// whether a required field was supplied. ActionData presence is checked with
// MissingActionData.
type CreateCommandRequest struct {
	Name          *string         `json:"name" validate:"required,max=100"`
	TriggerPhrase *string         `json:"trigger_phrase" validate:"required,max=200"`
	ActionType    *string         `json:"action_type" validate:"required,max=50"`
	ActionData    RawField        `json:"action_data"`
	Description   *string         `json:"description"`
	IsActive      *bool           `json:"is_active"`
}

// UpdateCommandRequest carries only the fields the caller supplied; nil
// fields are left untouched.
type UpdateCommandRequest struct {
	Name          *string         `json:"name" validate:"omitempty,max=100"`
	TriggerPhrase *string         `json:"trigger_phrase" validate:"omitempty,max=200"`
	ActionType    *string         `json:"action_type" validate:"omitempty,max=50"`
	ActionData    RawField        `json:"action_data"`
	Description   *string         `json:"description"`
	IsActive      *bool           `json:"is_active"`
}

// MissingActionData reports whether the body omitted action_data entirely.
func (r CreateCommandRequest) MissingActionData() bool {
	return !r.ActionData.Set
}

type CommandResponse struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	TriggerPhrase string     `json:"trigger_phrase"`
	ActionType    string     `json:"action_type"`
	ActionData    string     `json:"action_data"`
	Description   string     `json:"description"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type CommandEnvelope struct {
	Success bool            `json:"success"`
	Command CommandResponse `json:"command"`
}

type CommandListResponse struct {
	Success  bool              `json:"success"`
	Commands []CommandResponse `json:"commands"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewCommandResponse(c entity.Command) CommandResponse {
	return CommandResponse{
		ID:            c.ID,
		Name:          c.Name,
		TriggerPhrase: c.TriggerPhrase,
		ActionType:    c.ActionType,
		ActionData:    c.ActionData,
		Description:   c.Description,
		IsActive:      c.IsActive,
		CreatedAt:     timePtr(c.CreatedAt),
		UpdatedAt:     timePtr(c.UpdatedAt),
	}
}

func NewCommandListResponse(commands []entity.Command) CommandListResponse {
	resp := CommandListResponse{
		Success:  true,
		Commands: make([]CommandResponse, 0, len(commands)),
	}
	for _, c := range commands {
		resp.Commands = append(resp.Commands, NewCommandResponse(c))
	}
	return resp
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
