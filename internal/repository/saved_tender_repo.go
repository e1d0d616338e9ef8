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

// SavedTenderRepository manages user bookmarks on tenders.
type SavedTenderRepository interface {
	GetSavedTenders(ctx context.Context, userID string) ([]models.SavedTenderWithTender, error)
	SaveTender(ctx context.Context, userID, tenderID string) (*models.SavedTender, error)
	UnsaveTender(ctx context.Context, userID, tenderID string) error
	IsTenderSaved(ctx context.Context, userID, tenderID string) (bool, error)
}

// PostgresSavedTenderRepository implements SavedTenderRepository against Postgres.
type PostgresSavedTenderRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresSavedTenderRepository creates a new PostgresSavedTenderRepository.
func NewPostgresSavedTenderRepository(db *pgxpool.Pool) *PostgresSavedTenderRepository {
	return &PostgresSavedTenderRepository{DB: db}
}

// GetSavedTenders returns the user's bookmarks, newest first.
func (r *PostgresSavedTenderRepository) GetSavedTenders(ctx context.Context, userID string) ([]models.SavedTenderWithTender, error) {
	query := `
		SELECT st.id, st.user_id, st.tender_id, st.created_at,
			` + prefixedTenderColumns("t") + `
		FROM saved_tenders st
		JOIN tenders t ON st.tender_id = t.id
		WHERE st.user_id = $1
		ORDER BY st.created_at DESC`

	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var saved []models.SavedTenderWithTender
	for rows.Next() {
		var s models.SavedTenderWithTender
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.TenderID,
			&s.CreatedAt,
			&s.Tender.ID,
			&s.Tender.OCID,
			&s.Tender.Title,
			&s.Tender.Description,
			&s.Tender.Department,
			&s.Tender.Category,
			&s.Tender.Province,
			&s.Tender.ValueMin,
			&s.Tender.ValueMax,
			&s.Tender.ClosingDate,
			&s.Tender.AdvertisedDate,
			&s.Tender.Status,
			&s.Tender.Requirements,
			&s.Tender.DocumentURL,
			&s.Tender.CIDBRequired,
			&s.Tender.BBBEERequired,
			&s.Tender.IsActive,
			&s.Tender.CreatedAt,
			&s.Tender.UpdatedAt,
		); err != nil {
			return nil, err
		}
		saved = append(saved, s)
	}
	return saved, rows.Err()
}

// SaveTender bookmarks a tender for the user. Saving an already-saved tender
// returns the existing bookmark.
func (r *PostgresSavedTenderRepository) SaveTender(ctx context.Context, userID, tenderID string) (*models.SavedTender, error) {
	var s models.SavedTender
	insert := `
		INSERT INTO saved_tenders (id, user_id, tender_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, tender_id) DO NOTHING
		RETURNING id, user_id, tender_id, created_at`
	err := r.DB.QueryRow(ctx, insert,
		uuid.New().String(), userID, tenderID, time.Now().UTC(),
	).Scan(&s.ID, &s.UserID, &s.TenderID, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		existing := `SELECT id, user_id, tender_id, created_at FROM saved_tenders WHERE user_id = $1 AND tender_id = $2`
		err = r.DB.QueryRow(ctx, existing, userID, tenderID).Scan(&s.ID, &s.UserID, &s.TenderID, &s.CreatedAt)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UnsaveTender removes the bookmark.
func (r *PostgresSavedTenderRepository) UnsaveTender(ctx context.Context, userID, tenderID string) error {
	_, err := r.DB.Exec(ctx,
		`DELETE FROM saved_tenders WHERE user_id = $1 AND tender_id = $2`,
		userID, tenderID)
	return err
}

// IsTenderSaved reports whether the user bookmarked the tender.
func (r *PostgresSavedTenderRepository) IsTenderSaved(ctx context.Context, userID, tenderID string) (bool, error) {
	var saved bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM saved_tenders WHERE user_id = $1 AND tender_id = $2)`,
		userID, tenderID).Scan(&saved)
	return saved, err
}
