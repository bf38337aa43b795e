package entity

import "time"

// VoiceSession is a write-once record of one voice interaction.
type VoiceSession struct {
	ID            int64     `db:"id"`
	SessionID     string    `db:"session_id"`
	CommandText   string    `db:"command_text"`
	Intent        *string   `db:"intent"`
	Entities      string    `db:"entities"`
	Response      string    `db:"response"`
	ExecutionTime float64   `db:"execution_time"`
	Success       bool      `db:"success"`
	ErrorMessage  *string   `db:"error_message"`
	CreatedAt     time.Time `db:"created_at"`
}
