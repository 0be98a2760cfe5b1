package roles

const (
	queryInsertRole = `
		INSERT INTO roles (id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
	`

	queryFindByName = `
		SELECT id, name
		FROM roles
		WHERE name = $1
	`

	queryFindByID = `
		SELECT id, name
		FROM roles
		WHERE id = $1
	`

	queryUpdateRole = `
		UPDATE roles
		SET name = $2
		WHERE id = $1
		RETURNING id, name
	`

	queryListRoles = `
		SELECT id, name
		FROM roles
		ORDER BY name
	`

	queryAddMember = `
		INSERT INTO user_roles (user_id, role_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, role_id) DO NOTHING
	`

	queryRemoveMember = `
		DELETE FROM user_roles
		WHERE user_id = $1 AND role_id = $2
	`

	queryListMemberIDs = `
		SELECT user_id
		FROM user_roles
		WHERE role_id = $1
	`

	queryUserHasRole = `
		SELECT EXISTS (
			SELECT 1
			FROM user_roles ur
			JOIN roles r ON r.id = ur.role_id
			WHERE ur.user_id = $1 AND r.name = $2
		)
	`
)
