package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/veridian-labs/identity-core/internal/core/domain"
	"github.com/veridian-labs/identity-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.UserRoleStore[uuid.UUID] = (*UserRoleStore)(nil)

// UserRoleStore implements driven.UserRoleStore using PostgreSQL
type UserRoleStore struct {
	db *DB
}

// NewUserRoleStore creates a new UserRoleStore
func NewUserRoleStore(db *DB) *UserRoleStore {
	return &UserRoleStore{db: db}
}

// Create inserts a user-role membership
func (s *UserRoleStore) Create(ctx context.Context, membership *domain.UserRole[uuid.UUID]) error {
	query := `INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`

	_, err := s.db.ExecContext(ctx, query, membership.UserID, membership.RoleID)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

// Delete removes a user-role membership
func (s *UserRoleStore) Delete(ctx context.Context, userID, roleID uuid.UUID) error {
	query := `DELETE FROM user_roles WHERE user_id = $1 AND role_id = $2`

	result, err := s.db.ExecContext(ctx, query, userID, roleID)
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

// Exists reports whether a user holds a role
func (s *UserRoleStore) Exists(ctx context.Context, userID, roleID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role_id = $2)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, userID, roleID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListRolesForUser retrieves the IDs of all roles held by a user
func (s *UserRoleStore) ListRolesForUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.listIDs(ctx, `SELECT role_id FROM user_roles WHERE user_id = $1`, userID)
}

// ListUsersInRole retrieves the IDs of all users holding a role
func (s *UserRoleStore) ListUsersInRole(ctx context.Context, roleID uuid.UUID) ([]uuid.UUID, error) {
	return s.listIDs(ctx, `SELECT user_id FROM user_roles WHERE role_id = $1`, roleID)
}

func (s *UserRoleStore) listIDs(ctx context.Context, query string, arg uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
