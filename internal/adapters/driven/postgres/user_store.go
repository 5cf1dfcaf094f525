package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/veridian-labs/identity-core/internal/core/domain"
	"github.com/veridian-labs/identity-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.UserStore[uuid.UUID] = (*UserStore)(nil)

const userColumns = `id, user_name, normalized_user_name, email, normalized_email,
	password_hash, lockout_enabled, lockout_end, access_failed_count`

// UserStore implements driven.UserStore using PostgreSQL
type UserStore struct {
	db *DB
}

// NewUserStore creates a new UserStore
func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user
func (s *UserStore) Create(ctx context.Context, user *domain.User[uuid.UUID]) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.UserName,
		user.NormalizedUserName,
		user.Email,
		user.NormalizedEmail,
		user.PasswordHash,
		user.LockoutEnabled,
		NullTime(user.LockoutEnd),
		user.AccessFailedCount,
	)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

// Update persists changes to an existing user
func (s *UserStore) Update(ctx context.Context, user *domain.User[uuid.UUID]) error {
	query := `
		UPDATE users SET
			user_name = $2,
			normalized_user_name = $3,
			email = $4,
			normalized_email = $5,
			password_hash = $6,
			lockout_enabled = $7,
			lockout_end = $8,
			access_failed_count = $9
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.UserName,
		user.NormalizedUserName,
		user.Email,
		user.NormalizedEmail,
		user.PasswordHash,
		user.LockoutEnabled,
		NullTime(user.LockoutEnd),
		user.AccessFailedCount,
	)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes a user
func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// FindByID retrieves a user by ID
func (s *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.User[uuid.UUID], error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

// FindByNormalizedName retrieves a user by normalized user name
func (s *UserStore) FindByNormalizedName(ctx context.Context, normalizedName string) (*domain.User[uuid.UUID], error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE normalized_user_name = $1`
	return s.scanUser(s.db.QueryRowContext(ctx, query, normalizedName))
}

// FindByNormalizedEmail retrieves a user by normalized email
func (s *UserStore) FindByNormalizedEmail(ctx context.Context, normalizedEmail string) (*domain.User[uuid.UUID], error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE normalized_email = $1 LIMIT 1`
	return s.scanUser(s.db.QueryRowContext(ctx, query, normalizedEmail))
}

func (s *UserStore) scanUser(row *sql.Row) (*domain.User[uuid.UUID], error) {
	var user domain.User[uuid.UUID]
	var lockoutEnd sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.UserName,
		&user.NormalizedUserName,
		&user.Email,
		&user.NormalizedEmail,
		&user.PasswordHash,
		&user.LockoutEnabled,
		&lockoutEnd,
		&user.AccessFailedCount,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	user.LockoutEnd = TimePtr(lockoutEnd)
	return &user, nil
}
