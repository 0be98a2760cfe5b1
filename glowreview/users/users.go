package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// persists a new account; the email must not already be registered
func (r *Repository) Create(ctx context.Context, nu NewUser) (*User, error) {
	var user User

	err := r.db.QueryRow(
		ctx,
		queryInsertUser,
		uuid.NewString(),
		nu.Email,
		nu.PasswordHash,
		nu.FullName,
	).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.JoinDate,
		&user.FailedAttempts,
		&user.LockedUntil,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// finds a user by email, case-insensitive
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.scanOne(r.db.QueryRow(ctx, queryFindByEmail, email))
}

// finds a user by their ID
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	return r.scanOne(r.db.QueryRow(ctx, queryFindByID, userID))
}

// finds the user owning the (provider, providerKey) pair
func (r *Repository) FindByExternalLogin(ctx context.Context, provider, providerKey string) (*User, error) {
	return r.scanOne(r.db.QueryRow(ctx, queryFindByExternalLogin, provider, providerKey))
}

// binds the (provider, providerKey) pair to the user. Linking a pair the
// user already owns is a no-op, so replayed provider callbacks are safe.
// The pair's uniqueness is enforced by the store's composite index, not
// by a check-then-insert in application code.
func (r *Repository) AddExternalLogin(ctx context.Context, userID, provider, providerKey string) error {
	tag, err := r.db.Exec(ctx, queryInsertExternalLogin, provider, providerKey, userID)
	if err != nil {
		return fmt.Errorf("failed to add external login: %w", err)
	}

	if tag.RowsAffected() == 1 {
		return nil
	}

	// the pair already exists; it is only a conflict when owned by someone else
	var ownerID string

	err = r.db.QueryRow(ctx, queryExternalLoginOwner, provider, providerKey).Scan(&ownerID)
	if err != nil {
		return fmt.Errorf("failed to resolve external login owner: %w", err)
	}

	if ownerID != userID {
		return ErrLinkConflict
	}

	return nil
}

// creates the account and its external login link in one transaction so a
// failed link insert never leaves an orphan user behind
func (r *Repository) CreateWithExternalLogin(ctx context.Context, nu NewUser, provider, providerKey string) (*User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	var user User

	err = tx.QueryRow(
		ctx,
		queryInsertUser,
		uuid.NewString(),
		nu.Email,
		nu.PasswordHash,
		nu.FullName,
	).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.JoinDate,
		&user.FailedAttempts,
		&user.LockedUntil,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tag, err := tx.Exec(ctx, queryInsertExternalLogin, provider, providerKey, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to link external login: %w", err)
	}

	if tag.RowsAffected() == 0 {
		// a concurrent callback bound the pair first; roll back the user
		return nil, ErrLinkConflict
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &user, nil
}

// records a failed login attempt; when the incremented counter reaches the
// threshold the account is locked until now()+cooldown
func (r *Repository) RecordFailedLogin(ctx context.Context, userID string, threshold int, cooldown time.Duration) (int, *time.Time, error) {
	var attempts int
	var lockedUntil *time.Time

	err := r.db.QueryRow(ctx, queryRecordFailedLogin, userID, threshold, cooldown).
		Scan(&attempts, &lockedUntil)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil, ErrNotFound
		}
		return 0, nil, fmt.Errorf("failed to record login failure: %w", err)
	}

	return attempts, lockedUntil, nil
}

// clears the failure counter after a successful authentication
func (r *Repository) ResetLockout(ctx context.Context, userID string) error {
	if _, err := r.db.Exec(ctx, queryResetLockout, userID); err != nil {
		return fmt.Errorf("failed to reset lockout: %w", err)
	}

	return nil
}

// updates the user's display name
func (r *Repository) UpdateProfile(ctx context.Context, userID, fullName string) (*User, error) {
	return r.scanOne(r.db.QueryRow(ctx, queryUpdateProfile, userID, fullName))
}

// adds the product to the user's wishlist; a present product is left
// untouched. The single-statement upsert keeps concurrent adds from
// racing each other.
func (r *Repository) AddWishlistItem(ctx context.Context, userID, productID string) (bool, error) {
	tag, err := r.db.Exec(ctx, queryAddWishlistItem, userID, productID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to add wishlist item: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// removes the product from the user's wishlist; removing an absent
// product is a no-op
func (r *Repository) RemoveWishlistItem(ctx context.Context, userID, productID string) (bool, error) {
	tag, err := r.db.Exec(ctx, queryRemoveWishlistItem, userID, productID)
	if err != nil {
		return false, fmt.Errorf("failed to remove wishlist item: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// returns the product ids saved by the user
func (r *Repository) ListWishlist(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.Query(ctx, queryListWishlist, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}
	defer rows.Close()

	productIDs := []string{}

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan wishlist item: %w", err)
		}
		productIDs = append(productIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wishlist: %w", err)
	}

	return productIDs, nil
}

func (r *Repository) scanOne(row pgx.Row) (*User, error) {
	var user User

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.JoinDate,
		&user.FailedAttempts,
		&user.LockedUntil,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
