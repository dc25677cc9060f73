package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"buraq/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// listingColumns is the read column list. The embedding column is excluded:
// it is write-only from this service's point of view.
const listingColumns = `
	id, title, description, category_id, type, location_text, tags,
	is_featured, status, gender_of_provider, certifications,
	years_of_experience, pricing_min, pricing_max, pricing_currency,
	pricing_unit, response_time, community_endorsements,
	contact_email, contact_phone, created_at, updated_at`

// PostgresRepository handles database operations
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// SearchListings retrieves listings matching the predicate, ordered by
// (is_featured desc, community_endorsements desc, created_at desc) as the
// pre-ranking seed order.
func (r *PostgresRepository) SearchListings(ctx context.Context, pred model.ListingPredicate) ([]model.Listing, error) {
	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIndex := 1

	status := pred.Status
	if status == "" {
		status = model.ListingStatusApproved
	}
	whereClauses = append(whereClauses, fmt.Sprintf("status = $%d", argIndex))
	args = append(args, status)
	argIndex++

	if pred.CategoryID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("category_id = $%d", argIndex))
		args = append(args, pred.CategoryID)
		argIndex++
	}
	if pred.MinYearsExperience != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("years_of_experience >= $%d", argIndex))
		args = append(args, *pred.MinYearsExperience)
		argIndex++
	}
	if pred.MaxPrice != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("pricing_max <= $%d", argIndex))
		args = append(args, *pred.MaxPrice)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM listings
		WHERE %s
		ORDER BY is_featured DESC, community_endorsements DESC, created_at DESC
	`, listingColumns, strings.Join(whereClauses, " AND "))

	var listings []model.Listing
	if err := r.db.SelectContext(ctx, &listings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}

	return listings, nil
}

// GetListingByID retrieves a single listing by its ID
func (r *PostgresRepository) GetListingByID(ctx context.Context, id string) (*model.Listing, error) {
	var listing model.Listing
	query := fmt.Sprintf(`SELECT %s FROM listings WHERE id = $1`, listingColumns)
	err := r.db.GetContext(ctx, &listing, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

// ListListingsByCategory returns approved listings for one category,
// newest first.
func (r *PostgresRepository) ListListingsByCategory(ctx context.Context, categoryID string, limit int) ([]model.Listing, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM listings
		WHERE category_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT $3
	`, listingColumns)

	var listings []model.Listing
	err := r.db.SelectContext(ctx, &listings, query, categoryID, model.ListingStatusApproved, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings by category: %w", err)
	}
	return listings, nil
}

// ListAllListings returns all listings for admin review, optionally filtered
// by status, newest first.
func (r *PostgresRepository) ListAllListings(ctx context.Context, status model.ListingStatus) ([]model.Listing, error) {
	whereClause := "1=1"
	args := []interface{}{}
	if status != "" {
		whereClause = "status = $1"
		args = append(args, status)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM listings
		WHERE %s
		ORDER BY created_at DESC
	`, listingColumns, whereClause)

	var listings []model.Listing
	if err := r.db.SelectContext(ctx, &listings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}

// CreateListing inserts a provider submission with status=pending
func (r *PostgresRepository) CreateListing(ctx context.Context, req *model.CreateListingRequest) (*model.Listing, error) {
	gender := req.GenderOfProvider
	if gender == "" {
		gender = model.GenderUnspecified
	}

	query := `
		INSERT INTO listings (
			title, description, category_id, type, location_text, tags,
			is_featured, status, gender_of_provider, certifications,
			years_of_experience, pricing_min, pricing_max, pricing_currency,
			pricing_unit, response_time, community_endorsements,
			contact_email, contact_phone, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, false, $7, $8, $9,
			$10, $11, $12, $13, $14, $15, 0, $16, $17, NOW(), NOW()
		)
		RETURNING id
	`

	var id string
	err := r.db.QueryRowxContext(ctx, query,
		req.Title, req.Description, req.CategoryID, req.Type, req.LocationText,
		model.JSONArray(req.Tags), model.ListingStatusPending, gender,
		model.JSONArray(req.Certifications), req.YearsOfExperience,
		req.PricingMin, req.PricingMax, req.PricingCurrency, req.PricingUnit,
		req.ResponseTime, req.ContactEmail, req.ContactPhone,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	return r.GetListingByID(ctx, id)
}

// UpdateListingStatus transitions a listing through the approval workflow
func (r *PostgresRepository) UpdateListingStatus(ctx context.Context, id string, status model.ListingStatus) (*model.Listing, error) {
	query := `UPDATE listings SET status = $1, updated_at = NOW() WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update listing status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return r.GetListingByID(ctx, id)
}

// ToggleFeatured flips the featured flag on a listing
func (r *PostgresRepository) ToggleFeatured(ctx context.Context, id string) (*model.Listing, error) {
	query := `UPDATE listings SET is_featured = NOT is_featured, updated_at = NOW() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle featured flag: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return r.GetListingByID(ctx, id)
}

// BatchUpdateEmbeddings stores precomputed embeddings for multiple listings
func (r *PostgresRepository) BatchUpdateEmbeddings(ctx context.Context, items []model.EmbeddingItem) (int, []string) {
	success := 0
	var errors []string

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		errors = append(errors, fmt.Sprintf("failed to start transaction: %v", err))
		return success, errors
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `UPDATE listings SET embedding = $1, updated_at = NOW() WHERE id = $2`)
	if err != nil {
		errors = append(errors, fmt.Sprintf("failed to prepare statement: %v", err))
		return success, errors
	}
	defer stmt.Close()

	for _, item := range items {
		vec := pgvector.NewVector(item.Embedding)
		if _, err := stmt.ExecContext(ctx, vec, item.ListingID); err != nil {
			errors = append(errors, fmt.Sprintf("listing %s: %v", item.ListingID, err))
			continue
		}
		success++
	}

	if err := tx.Commit(); err != nil {
		errors = append(errors, fmt.Sprintf("failed to commit transaction: %v", err))
		return 0, errors
	}

	return success, errors
}

// ListCategories returns all catalog categories in catalog order
func (r *PostgresRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	query := `
		SELECT id, slug, label, type, description, keywords
		FROM categories
		ORDER BY sort_order ASC
	`
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// AddSuggestion appends an unserved-request record for later review
func (r *PostgresRepository) AddSuggestion(ctx context.Context, rawQueryText, inferredCategory, location string) error {
	query := `
		INSERT INTO suggestions (raw_query_text, inferred_category, location, created_at)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NOW())
	`
	if _, err := r.db.ExecContext(ctx, query, rawQueryText, inferredCategory, location); err != nil {
		return fmt.Errorf("failed to add suggestion: %w", err)
	}
	return nil
}

// ListSuggestions returns logged suggestions, newest first
func (r *PostgresRepository) ListSuggestions(ctx context.Context) ([]model.Suggestion, error) {
	var suggestions []model.Suggestion
	query := `
		SELECT id, raw_query_text, inferred_category, location, created_at
		FROM suggestions
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &suggestions, query); err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	return suggestions, nil
}
