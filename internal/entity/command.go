package entity

import "time"

// Command maps a spoken trigger phrase to an action. ActionData holds the
// JSON payload as text; its shape depends on ActionType.
type Command struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	TriggerPhrase string    `db:"trigger_phrase"`
	ActionType    string    `db:"action_type"`
	ActionData    string    `db:"action_data"`
	Description   string    `db:"description"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
