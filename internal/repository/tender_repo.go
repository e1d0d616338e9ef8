package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tenderfindsa/tender-match-service/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// TenderRepository manages the tender catalog.
type TenderRepository interface {
	GetTenders(ctx context.Context, filter models.TenderFilter) ([]models.Tender, error)
	GetTender(ctx context.Context, tenderID string) (*models.Tender, error)
	GetActiveTenders(ctx context.Context) ([]models.Tender, error)
	UpsertTenderByOCID(ctx context.Context, tender models.Tender) (*models.Tender, error)
	GetStats(ctx context.Context, userID string) (*models.Stats, error)
}

// PostgresTenderRepository implements TenderRepository against Postgres.
type PostgresTenderRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresTenderRepository creates a new PostgresTenderRepository.
func NewPostgresTenderRepository(db *pgxpool.Pool) *PostgresTenderRepository {
	return &PostgresTenderRepository{DB: db}
}

const tenderColumns = `id, ocid, title, description, department, category, province, value_min,
	value_max, closing_date, advertised_date, status, requirements, document_url, cidb_required,
	bbbee_required, is_active, created_at, updated_at`

// prefixedTenderColumns qualifies the tender column list with a table alias
// for join queries.
func prefixedTenderColumns(alias string) string {
	cols := strings.Split(tenderColumns, ",")
	for i, col := range cols {
		cols[i] = alias + "." + strings.TrimSpace(col)
	}
	return strings.Join(cols, ", ")
}

func scanTender(row pgx.Row) (*models.Tender, error) {
	var t models.Tender
	err := row.Scan(
		&t.ID,
		&t.OCID,
		&t.Title,
		&t.Description,
		&t.Department,
		&t.Category,
		&t.Province,
		&t.ValueMin,
		&t.ValueMax,
		&t.ClosingDate,
		&t.AdvertisedDate,
		&t.Status,
		&t.Requirements,
		&t.DocumentURL,
		&t.CIDBRequired,
		&t.BBBEERequired,
		&t.IsActive,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresTenderRepository) queryTenders(ctx context.Context, query string, args ...interface{}) ([]models.Tender, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenders []models.Tender
	for rows.Next() {
		tender, err := scanTender(rows)
		if err != nil {
			return nil, err
		}
		tenders = append(tenders, *tender)
	}
	return tenders, rows.Err()
}

// GetTenders returns tenders matching the filter, newest advertised first.
func (r *PostgresTenderRepository) GetTenders(ctx context.Context, filter models.TenderFilter) ([]models.Tender, error) {
	query := `SELECT ` + tenderColumns + ` FROM tenders`
	var filters []string
	var args []interface{}
	argIndex := 1

	if len(filter.Categories) > 0 {
		filters = append(filters, fmt.Sprintf("category = ANY($%d)", argIndex))
		args = append(args, pq.Array(filter.Categories))
		argIndex++
	}
	if filter.Province != "" {
		filters = append(filters, fmt.Sprintf("province = $%d", argIndex))
		args = append(args, filter.Province)
		argIndex++
	}
	if filter.ValueMin != nil {
		filters = append(filters, fmt.Sprintf("value_min >= $%d", argIndex))
		args = append(args, *filter.ValueMin)
		argIndex++
	}
	if filter.ValueMax != nil {
		filters = append(filters, fmt.Sprintf("value_max <= $%d", argIndex))
		args = append(args, *filter.ValueMax)
		argIndex++
	}
	if filter.Status != "" {
		filters = append(filters, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, filter.Status)
		argIndex++
	} else {
		filters = append(filters, "is_active = TRUE")
	}
	if filter.Search != "" {
		filters = append(filters, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	if len(filters) > 0 {
		query += " WHERE " + strings.Join(filters, " AND ")
	}

	query += fmt.Sprintf(" ORDER BY advertised_date DESC NULLS LAST LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, filter.Limit, filter.Offset)

	return r.queryTenders(ctx, query, args...)
}

// GetTender returns one tender by id, or nil when absent.
func (r *PostgresTenderRepository) GetTender(ctx context.Context, tenderID string) (*models.Tender, error) {
	query := `SELECT ` + tenderColumns + ` FROM tenders WHERE id = $1`
	tender, err := scanTender(r.DB.QueryRow(ctx, query, tenderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return tender, nil
}

// GetActiveTenders returns the full matchable catalog.
func (r *PostgresTenderRepository) GetActiveTenders(ctx context.Context) ([]models.Tender, error) {
	query := `SELECT ` + tenderColumns + ` FROM tenders WHERE status = $1 AND is_active = TRUE`
	return r.queryTenders(ctx, query, models.ActiveTender)
}

// UpsertTenderByOCID inserts an ingested tender or refreshes the existing row
// carrying the same OCID.
func (r *PostgresTenderRepository) UpsertTenderByOCID(ctx context.Context, tender models.Tender) (*models.Tender, error) {
	now := time.Now().UTC()
	query := `
		INSERT INTO tenders (id, ocid, title, description, department, category, province,
			value_min, value_max, closing_date, advertised_date, status, requirements,
			document_url, cidb_required, bbbee_required, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $18)
		ON CONFLICT (ocid) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			department = EXCLUDED.department,
			category = EXCLUDED.category,
			province = EXCLUDED.province,
			value_min = EXCLUDED.value_min,
			value_max = EXCLUDED.value_max,
			closing_date = EXCLUDED.closing_date,
			advertised_date = EXCLUDED.advertised_date,
			status = EXCLUDED.status,
			requirements = EXCLUDED.requirements,
			document_url = EXCLUDED.document_url,
			cidb_required = EXCLUDED.cidb_required,
			bbbee_required = EXCLUDED.bbbee_required,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + tenderColumns
	return scanTender(r.DB.QueryRow(ctx, query,
		uuid.New().String(),
		tender.OCID,
		tender.Title,
		tender.Description,
		tender.Department,
		tender.Category,
		tender.Province,
		tender.ValueMin,
		tender.ValueMax,
		tender.ClosingDate,
		tender.AdvertisedDate,
		tender.Status,
		tender.Requirements,
		tender.DocumentURL,
		tender.CIDBRequired,
		tender.BBBEERequired,
		tender.IsActive,
		now,
	))
}

// GetStats returns catalog counts, plus per-user engagement counts when a
// user id is supplied.
func (r *PostgresTenderRepository) GetStats(ctx context.Context, userID string) (*models.Stats, error) {
	var stats models.Stats
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM tenders WHERE is_active = TRUE AND status = $1`,
		models.ActiveTender).Scan(&stats.ActiveTenders)
	if err != nil {
		return nil, err
	}

	if userID == "" {
		return &stats, nil
	}

	err = r.DB.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM tender_matches tm
		JOIN tenders t ON tm.tender_id = t.id
		WHERE tm.user_id = $1 AND t.is_active = TRUE`, userID).Scan(&stats.MatchingTenders)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM saved_tenders WHERE user_id = $1`, userID).Scan(&stats.SavedTenders)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
