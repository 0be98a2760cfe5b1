package users

const (
	queryInsertUser = `
		INSERT INTO users (id, email, password_hash, full_name)
		VALUES ($1, lower($2), $3, $4)
		RETURNING id, email, password_hash, full_name, join_date, failed_attempts, locked_until
	`

	queryFindByEmail = `
		SELECT id, email, password_hash, full_name, join_date, failed_attempts, locked_until
		FROM users
		WHERE email = lower($1)
	`

	queryFindByID = `
		SELECT id, email, password_hash, full_name, join_date, failed_attempts, locked_until
		FROM users
		WHERE id = $1
	`

	queryFindByExternalLogin = `
		SELECT u.id, u.email, u.password_hash, u.full_name, u.join_date, u.failed_attempts, u.locked_until
		FROM users u
		JOIN external_logins el ON el.user_id = u.id
		WHERE el.provider = $1 AND el.provider_key = $2
	`

	queryInsertExternalLogin = `
		INSERT INTO external_logins (provider, provider_key, user_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (provider, provider_key) DO NOTHING
	`

	queryExternalLoginOwner = `
		SELECT user_id
		FROM external_logins
		WHERE provider = $1 AND provider_key = $2
	`

	// the counter increment and the lockout decision happen in one
	// statement so concurrent failures never under-count
	queryRecordFailedLogin = `
		UPDATE users
		SET failed_attempts = failed_attempts + 1,
		    locked_until = CASE
		        WHEN failed_attempts + 1 >= $2 THEN now() + $3
		        ELSE locked_until
		    END
		WHERE id = $1
		RETURNING failed_attempts, locked_until
	`

	queryResetLockout = `
		UPDATE users
		SET failed_attempts = 0, locked_until = NULL
		WHERE id = $1
	`

	queryUpdateProfile = `
		UPDATE users
		SET full_name = $2
		WHERE id = $1
		RETURNING id, email, password_hash, full_name, join_date, failed_attempts, locked_until
	`

	queryAddWishlistItem = `
		INSERT INTO wishlist_items (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING
	`

	queryRemoveWishlistItem = `
		DELETE FROM wishlist_items
		WHERE user_id = $1 AND product_id = $2
	`

	queryListWishlist = `
		SELECT product_id
		FROM wishlist_items
		WHERE user_id = $1
		ORDER BY added_at
	`
)
