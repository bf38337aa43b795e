package sessionRepository

const (
	queryCreateSession = `
		INSERT INTO voice_sessions (
			session_id,
			command_text,
			intent,
			entities,
			response,
			execution_time,
			success,
			error_message,
			created_at
		) VALUES (
			:session_id,
			:command_text,
			:intent,
			:entities,
			:response,
			:execution_time,
			:success,
			:error_message,
			:created_at
		)
		RETURNING id
	`

	queryListRecentSessions = `
		SELECT
			id,
			session_id,
			command_text,
			intent,
			entities,
			response,
			execution_time,
			success,
			error_message,
			created_at
		FROM voice_sessions
		ORDER BY created_at DESC, id DESC
		LIMIT :limit
	`
)
