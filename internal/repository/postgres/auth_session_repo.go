package postgres

import (
	"context"
	"database/sql"
	"errors"

	"happenly/internal/domain"
)

type authSessionRepository struct {
	DB *sql.DB
}

// NewAuthSessionRepository returns a domain.AuthSessionRepository implemented with Postgres.
func NewAuthSessionRepository(db *sql.DB) domain.AuthSessionRepository {
	return &authSessionRepository{DB: db}
}

func (r *authSessionRepository) Create(ctx context.Context, s *domain.AuthSession) error {
	query := `
		INSERT INTO auth_sessions (id, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.UserID, s.ExpiresAt, s.CreatedAt)
	return err
}

func (r *authSessionRepository) IsActive(ctx context.Context, id string) (bool, error) {
	var found string
	query := `
		SELECT id FROM auth_sessions
		WHERE id = $1 AND expires_at > NOW()
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *authSessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM auth_sessions WHERE id = $1`, id)
	return err
}
