package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/veridian-labs/identity-core/internal/core/domain"
	"github.com/veridian-labs/identity-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.RoleClaimStore[uuid.UUID] = (*RoleClaimStore)(nil)

// RoleClaimStore implements driven.RoleClaimStore using PostgreSQL
type RoleClaimStore struct {
	db *DB
}

// NewRoleClaimStore creates a new RoleClaimStore
func NewRoleClaimStore(db *DB) *RoleClaimStore {
	return &RoleClaimStore{db: db}
}

// Create inserts a new role claim, assigning its ID
func (s *RoleClaimStore) Create(ctx context.Context, claim *domain.RoleClaim[uuid.UUID]) error {
	query := `
		INSERT INTO role_claims (id, role_id, claim_type, claim_value)
		VALUES ($1, $2, $3, $4)
	`

	id := uuid.New()
	_, err := s.db.ExecContext(ctx, query, id, claim.RoleID, claim.Type, claim.Value)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	if err != nil {
		return err
	}

	claim.ID = id
	return nil
}

// Delete removes a claim from a role
func (s *RoleClaimStore) Delete(ctx context.Context, roleID uuid.UUID, claim domain.Claim) error {
	query := `
		DELETE FROM role_claims
		WHERE role_id = $1 AND claim_type = $2 AND claim_value = $3
	`

	result, err := s.db.ExecContext(ctx, query, roleID, claim.Type, claim.Value)
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

// ListByRole retrieves all claims attached to a role
func (s *RoleClaimStore) ListByRole(ctx context.Context, roleID uuid.UUID) ([]domain.RoleClaim[uuid.UUID], error) {
	query := `
		SELECT id, role_id, claim_type, claim_value
		FROM role_claims
		WHERE role_id = $1
		ORDER BY claim_type, claim_value
	`

	rows, err := s.db.QueryContext(ctx, query, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var claims []domain.RoleClaim[uuid.UUID]
	for rows.Next() {
		var c domain.RoleClaim[uuid.UUID]
		if err := rows.Scan(&c.ID, &c.RoleID, &c.Type, &c.Value); err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}

	return claims, rows.Err()
}
