package repository

import (
	"context"
	"errors"
	"time"

	"github.com/tenderfindsa/tender-match-service/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepository manages business profiles.
type ProfileRepository interface {
	GetBusinessProfile(ctx context.Context, userID string) (*models.BusinessProfile, error)
	CreateBusinessProfile(ctx context.Context, userID string, req models.BusinessProfileRequest) (*models.BusinessProfile, error)
	UpdateBusinessProfile(ctx context.Context, userID string, req models.BusinessProfileRequest) (*models.BusinessProfile, error)
	ListProfileUserIDs(ctx context.Context) ([]string, error)
}

// PostgresProfileRepository implements ProfileRepository against Postgres.
type PostgresProfileRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository.
func NewPostgresProfileRepository(db *pgxpool.Pool) *PostgresProfileRepository {
	return &PostgresProfileRepository{DB: db}
}

const profileColumns = `id, user_id, business_name, registration_number, cidb_grading, bbbee_level,
	industry_categories, preferred_value_min, preferred_value_max, provinces, phone_number,
	language, email_notifications, sms_notifications, created_at, updated_at`

func scanProfile(row pgx.Row) (*models.BusinessProfile, error) {
	var p models.BusinessProfile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.BusinessName,
		&p.RegistrationNumber,
		&p.CIDBGrading,
		&p.BBBEELevel,
		&p.IndustryCategories,
		&p.PreferredValueMin,
		&p.PreferredValueMax,
		&p.Provinces,
		&p.PhoneNumber,
		&p.Language,
		&p.EmailNotifications,
		&p.SMSNotifications,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetBusinessProfile returns the profile for a user, or nil when the user has
// not submitted one yet.
func (r *PostgresProfileRepository) GetBusinessProfile(ctx context.Context, userID string) (*models.BusinessProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM business_profiles WHERE user_id = $1`
	profile, err := scanProfile(r.DB.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// CreateBusinessProfile inserts a new profile for the user.
func (r *PostgresProfileRepository) CreateBusinessProfile(ctx context.Context, userID string, req models.BusinessProfileRequest) (*models.BusinessProfile, error) {
	now := time.Now().UTC()
	query := `
		INSERT INTO business_profiles (id, user_id, business_name, registration_number, cidb_grading,
			bbbee_level, industry_categories, preferred_value_min, preferred_value_max, provinces,
			phone_number, language, email_notifications, sms_notifications, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
		RETURNING ` + profileColumns
	return scanProfile(r.DB.QueryRow(ctx, query,
		uuid.New().String(),
		userID,
		req.BusinessName,
		req.RegistrationNumber,
		req.CIDBGrading,
		req.BBBEELevel,
		req.IndustryCategories,
		req.PreferredValueMin,
		req.PreferredValueMax,
		req.Provinces,
		req.PhoneNumber,
		req.Language,
		req.EmailNotifications,
		req.SMSNotifications,
		now,
	))
}

// UpdateBusinessProfile replaces the profile fields for the user.
func (r *PostgresProfileRepository) UpdateBusinessProfile(ctx context.Context, userID string, req models.BusinessProfileRequest) (*models.BusinessProfile, error) {
	query := `
		UPDATE business_profiles
		SET business_name = $2, registration_number = $3, cidb_grading = $4, bbbee_level = $5,
			industry_categories = $6, preferred_value_min = $7, preferred_value_max = $8,
			provinces = $9, phone_number = $10, language = $11, email_notifications = $12,
			sms_notifications = $13, updated_at = $14
		WHERE user_id = $1
		RETURNING ` + profileColumns
	return scanProfile(r.DB.QueryRow(ctx, query,
		userID,
		req.BusinessName,
		req.RegistrationNumber,
		req.CIDBGrading,
		req.BBBEELevel,
		req.IndustryCategories,
		req.PreferredValueMin,
		req.PreferredValueMax,
		req.Provinces,
		req.PhoneNumber,
		req.Language,
		req.EmailNotifications,
		req.SMSNotifications,
		time.Now().UTC(),
	))
}

// ListProfileUserIDs returns the ids of all users holding a business profile,
// for batch matching runs.
func (r *PostgresProfileRepository) ListProfileUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.DB.Query(ctx, `SELECT user_id FROM business_profiles ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		userIDs = append(userIDs, userID)
	}
	return userIDs, rows.Err()
}
