package repository

import (
	"context"
	"errors"

	"github.com/tenderfindsa/tender-match-service/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository provides read access to user contact details.
type UserRepository interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// PostgresUserRepository implements UserRepository against Postgres.
type PostgresUserRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgresUserRepository.
func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// GetUser returns the user with the given id, or nil when absent.
func (r *PostgresUserRepository) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	query := `SELECT id, email, first_name, last_name, created_at FROM users WHERE id = $1`
	err := r.DB.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
