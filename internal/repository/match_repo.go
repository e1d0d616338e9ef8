package repository

import (
	"context"
	"time"

	"github.com/tenderfindsa/tender-match-service/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MatchRepository manages scored (user, tender) pairs.
type MatchRepository interface {
	GetMatches(ctx context.Context, userID string, limit int) ([]models.MatchWithTender, error)
	UpsertMatch(ctx context.Context, match models.TenderMatch) (*models.TenderMatch, error)
	MarkMatchViewed(ctx context.Context, userID, tenderID string) error
}

// PostgresMatchRepository implements MatchRepository against Postgres.
type PostgresMatchRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresMatchRepository creates a new PostgresMatchRepository.
func NewPostgresMatchRepository(db *pgxpool.Pool) *PostgresMatchRepository {
	return &PostgresMatchRepository{DB: db}
}

// GetMatches returns the user's matches on active tenders, best score first.
func (r *PostgresMatchRepository) GetMatches(ctx context.Context, userID string, limit int) ([]models.MatchWithTender, error) {
	query := `
		SELECT tm.id, tm.user_id, tm.tender_id, tm.match_score, tm.match_reasons, tm.is_viewed, tm.created_at,
			` + prefixedTenderColumns("t") + `
		FROM tender_matches tm
		JOIN tenders t ON tm.tender_id = t.id
		WHERE tm.user_id = $1 AND t.is_active = TRUE
		ORDER BY tm.match_score DESC, tm.created_at DESC
		LIMIT $2`

	rows, err := r.DB.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []models.MatchWithTender
	for rows.Next() {
		var m models.MatchWithTender
		if err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.TenderID,
			&m.MatchScore,
			&m.MatchReasons,
			&m.IsViewed,
			&m.CreatedAt,
			&m.Tender.ID,
			&m.Tender.OCID,
			&m.Tender.Title,
			&m.Tender.Description,
			&m.Tender.Department,
			&m.Tender.Category,
			&m.Tender.Province,
			&m.Tender.ValueMin,
			&m.Tender.ValueMax,
			&m.Tender.ClosingDate,
			&m.Tender.AdvertisedDate,
			&m.Tender.Status,
			&m.Tender.Requirements,
			&m.Tender.DocumentURL,
			&m.Tender.CIDBRequired,
			&m.Tender.BBBEERequired,
			&m.Tender.IsActive,
			&m.Tender.CreatedAt,
			&m.Tender.UpdatedAt,
		); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// UpsertMatch inserts the match or refreshes score and reasons for an existing
// (user, tender) pair. The viewed flag survives re-matching so a tender the
// user already inspected does not reappear as unread.
func (r *PostgresMatchRepository) UpsertMatch(ctx context.Context, match models.TenderMatch) (*models.TenderMatch, error) {
	query := `
		INSERT INTO tender_matches (id, user_id, tender_id, match_score, match_reasons, is_viewed, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6)
		ON CONFLICT (user_id, tender_id) DO UPDATE SET
			match_score = EXCLUDED.match_score,
			match_reasons = EXCLUDED.match_reasons
		RETURNING id, user_id, tender_id, match_score, match_reasons, is_viewed, created_at`

	var m models.TenderMatch
	err := r.DB.QueryRow(ctx, query,
		uuid.New().String(),
		match.UserID,
		match.TenderID,
		match.MatchScore,
		match.MatchReasons,
		time.Now().UTC(),
	).Scan(
		&m.ID,
		&m.UserID,
		&m.TenderID,
		&m.MatchScore,
		&m.MatchReasons,
		&m.IsViewed,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// MarkMatchViewed flips the viewed flag for a (user, tender) pair.
func (r *PostgresMatchRepository) MarkMatchViewed(ctx context.Context, userID, tenderID string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE tender_matches SET is_viewed = TRUE WHERE user_id = $1 AND tender_id = $2`,
		userID, tenderID)
	return err
}
