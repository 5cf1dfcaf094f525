package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/veridian-labs/identity-core/internal/core/domain"
	"github.com/veridian-labs/identity-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.UserClaimStore[uuid.UUID] = (*UserClaimStore)(nil)

// UserClaimStore implements driven.UserClaimStore using PostgreSQL
type UserClaimStore struct {
	db *DB
}

// NewUserClaimStore creates a new UserClaimStore
func NewUserClaimStore(db *DB) *UserClaimStore {
	return &UserClaimStore{db: db}
}

// Create inserts a new user claim, assigning its ID
func (s *UserClaimStore) Create(ctx context.Context, claim *domain.UserClaim[uuid.UUID]) error {
	query := `
		INSERT INTO user_claims (id, user_id, claim_type, claim_value)
		VALUES ($1, $2, $3, $4)
	`

	id := uuid.New()
	_, err := s.db.ExecContext(ctx, query, id, claim.UserID, claim.Type, claim.Value)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	if err != nil {
		return err
	}

	claim.ID = id
	return nil
}

// Delete removes a claim from a user
func (s *UserClaimStore) Delete(ctx context.Context, userID uuid.UUID, claim domain.Claim) error {
	query := `
		DELETE FROM user_claims
		WHERE user_id = $1 AND claim_type = $2 AND claim_value = $3
	`

	result, err := s.db.ExecContext(ctx, query, userID, claim.Type, claim.Value)
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

// ListByUser retrieves all claims held by a user
func (s *UserClaimStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserClaim[uuid.UUID], error) {
	query := `
		SELECT id, user_id, claim_type, claim_value
		FROM user_claims
		WHERE user_id = $1
		ORDER BY claim_type, claim_value
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var claims []domain.UserClaim[uuid.UUID]
	for rows.Next() {
		var c domain.UserClaim[uuid.UUID]
		if err := rows.Scan(&c.ID, &c.UserID, &c.Type, &c.Value); err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}

	return claims, rows.Err()
}

// ListUsersForClaim retrieves the IDs of all users holding a claim
func (s *UserClaimStore) ListUsersForClaim(ctx context.Context, claim domain.Claim) ([]uuid.UUID, error) {
	query := `
		SELECT user_id
		FROM user_claims
		WHERE claim_type = $1 AND claim_value = $2
	`

	rows, err := s.db.QueryContext(ctx, query, claim.Type, claim.Value)
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
