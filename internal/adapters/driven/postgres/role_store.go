package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/veridian-labs/identity-core/internal/core/domain"
	"github.com/veridian-labs/identity-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.RoleStore[uuid.UUID] = (*RoleStore)(nil)

// RoleStore implements driven.RoleStore using PostgreSQL
type RoleStore struct {
	db *DB
}

// NewRoleStore creates a new RoleStore
func NewRoleStore(db *DB) *RoleStore {
	return &RoleStore{db: db}
}

// Create inserts a new role
func (s *RoleStore) Create(ctx context.Context, role *domain.Role[uuid.UUID]) error {
	query := `INSERT INTO roles (id, name, normalized_name) VALUES ($1, $2, $3)`

	_, err := s.db.ExecContext(ctx, query, role.ID, role.Name, role.NormalizedName)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

// Update persists changes to an existing role
func (s *RoleStore) Update(ctx context.Context, role *domain.Role[uuid.UUID]) error {
	query := `UPDATE roles SET name = $2, normalized_name = $3 WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, role.ID, role.Name, role.NormalizedName)
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

// Delete removes a role
func (s *RoleStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM roles WHERE id = $1`, id)
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

// FindByID retrieves a role by ID
func (s *RoleStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Role[uuid.UUID], error) {
	query := `SELECT id, name, normalized_name FROM roles WHERE id = $1`
	return s.scanRole(s.db.QueryRowContext(ctx, query, id))
}

// FindByNormalizedName retrieves a role by normalized name
func (s *RoleStore) FindByNormalizedName(ctx context.Context, normalizedName string) (*domain.Role[uuid.UUID], error) {
	query := `SELECT id, name, normalized_name FROM roles WHERE normalized_name = $1`
	return s.scanRole(s.db.QueryRowContext(ctx, query, normalizedName))
}

func (s *RoleStore) scanRole(row *sql.Row) (*domain.Role[uuid.UUID], error) {
	var role domain.Role[uuid.UUID]

	err := row.Scan(&role.ID, &role.Name, &role.NormalizedName)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &role, nil
}
