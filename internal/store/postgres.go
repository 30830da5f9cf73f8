package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements PrimaryStore on a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Insert writes a plan record and returns it with the store-assigned id and
// created_at timestamp.
func (s *PostgresStore) Insert(ctx context.Context, rec *PersistedRecord) (*PersistedRecord, error) {
	sectionsJSON, err := json.Marshal(rec.Sections)
	if err != nil {
		return nil, &Error{Class: ClassOther, Message: "failed to marshal sections", Cause: err}
	}
	tags := rec.Tags
	if tags == nil {
		tags = []string{}
	}

	stored := *rec
	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO business_plans
		     (user_id, title, business_idea, location, category, sections,
		      status, version, is_public, tags, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		 RETURNING id, created_at, updated_at`,
		rec.UserID, rec.Title, rec.BusinessIdea, rec.Location, rec.Category,
		sectionsJSON, rec.Status, rec.Version, rec.IsPublic, tags,
	).Scan(&id, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, &Error{
			Class:   classifyPgError(err),
			Message: "failed to insert plan",
			Cause:   err,
		}
	}

	stored.ID = id.String()
	stored.Tags = tags
	return &stored, nil
}

// Get retrieves a plan by id. Returns nil without error when absent.
func (s *PostgresStore) Get(ctx context.Context, id string) (*PersistedRecord, error) {
	planID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil // fallback-style ids never exist in the primary store
	}

	var rec PersistedRecord
	var recID uuid.UUID
	var sectionsJSON []byte
	err = s.pool.QueryRow(ctx,
		`SELECT id, user_id, title, business_idea, location, category, sections,
		        status, version, is_public, tags, created_at, updated_at
		 FROM business_plans WHERE id = $1`,
		planID,
	).Scan(&recID, &rec.UserID, &rec.Title, &rec.BusinessIdea, &rec.Location,
		&rec.Category, &sectionsJSON, &rec.Status, &rec.Version, &rec.IsPublic,
		&rec.Tags, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, &Error{Class: classifyPgError(err), Message: "failed to get plan", Cause: err}
	}

	if err := json.Unmarshal(sectionsJSON, &rec.Sections); err != nil {
		return nil, &Error{Class: ClassOther, Message: "failed to unmarshal sections", Cause: err}
	}
	rec.ID = recID.String()
	return &rec, nil
}

// List retrieves a user's most recent plans.
func (s *PostgresStore) List(ctx context.Context, userID uuid.UUID, limit int) ([]PersistedRecord, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, title, business_idea, location, category, sections,
		        status, version, is_public, tags, created_at, updated_at
		 FROM business_plans WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, &Error{Class: classifyPgError(err), Message: "failed to list plans", Cause: err}
	}
	defer rows.Close()

	var records []PersistedRecord
	for rows.Next() {
		var rec PersistedRecord
		var recID uuid.UUID
		var sectionsJSON []byte
		if err := rows.Scan(&recID, &rec.UserID, &rec.Title, &rec.BusinessIdea,
			&rec.Location, &rec.Category, &sectionsJSON, &rec.Status, &rec.Version,
			&rec.IsPublic, &rec.Tags, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, &Error{Class: ClassOther, Message: "failed to scan plan", Cause: err}
		}
		if err := json.Unmarshal(sectionsJSON, &rec.Sections); err != nil {
			return nil, &Error{Class: ClassOther, Message: "failed to unmarshal sections", Cause: err}
		}
		rec.ID = recID.String()
		records = append(records, rec)
	}
	return records, nil
}
