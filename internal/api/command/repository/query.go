package commandRepository

const (
	queryListActiveCommands = `
		SELECT
			id,
			name,
			trigger_phrase,
			action_type,
			action_data,
			description,
			is_active,
			created_at,
			updated_at
		FROM commands
		WHERE is_active = :is_active
		ORDER BY id ASC
	`

	queryGetCommandByID = `
		SELECT
			id,
			name,
			trigger_phrase,
			action_type,
			action_data,
			description,
			is_active,
			created_at,
			updated_at
		FROM commands
		WHERE id = :id
	`

	queryGetCommandByName = `
		SELECT
			id,
			name,
			trigger_phrase,
			action_type,
			action_data,
			description,
			is_active,
			created_at,
			updated_at
		FROM commands
		WHERE name = :name
	`

	queryCreateCommand = `
		INSERT INTO commands (
			name,
			trigger_phrase,
			action_type,
			action_data,
			description,
			is_active,
			created_at,
			updated_at
		) VALUES (
			:name,
			:trigger_phrase,
			:action_type,
			:action_data,
			:description,
			:is_active,
			:created_at,
			:updated_at
		)
		RETURNING id
	`

	queryUpdateCommand = `
		UPDATE commands
		SET
			name = :name,
			trigger_phrase = :trigger_phrase,
			action_type = :action_type,
			action_data = :action_data,
			description = :description,
			is_active = :is_active,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeactivateCommand = `
		UPDATE commands
		SET
			is_active = :is_active,
			updated_at = :updated_at
		WHERE id = :id
	`
)
