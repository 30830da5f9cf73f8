// Package store persists assembled business plan documents through a primary
// PostgreSQL store with a degraded in-memory fallback path.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"planpilot/internal/types"
)

// Record status and versioning defaults for freshly persisted plans.
const (
	StatusDraft    = "draft"
	InitialVersion = 1
)

// PersistedRecord is a stored business plan. Exactly one of the two stores
// produced it; callers get a uniform shape either way, and only the Fallback
// metadata field reveals the degraded path.
type PersistedRecord struct {
	ID           string                   `json:"id"`
	UserID       uuid.UUID                `json:"user_id"`
	Title        string                   `json:"title"`
	BusinessIdea string                   `json:"business_idea"`
	Location     string                   `json:"location"`
	Category     types.Category           `json:"category"`
	Sections     []types.GeneratedSection `json:"sections"`
	Status       string                   `json:"status"`
	Version      int                      `json:"version"`
	IsPublic     bool                     `json:"is_public"`
	Tags         []string                 `json:"tags"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
	Fallback     bool                     `json:"fallback,omitempty"`
}

// Document re-assembles the plan document held by a record.
func (r *PersistedRecord) Document() *types.BusinessPlanDocument {
	return &types.BusinessPlanDocument{
		Title:        r.Title,
		BusinessIdea: r.BusinessIdea,
		Location:     r.Location,
		Category:     r.Category,
		Sections:     r.Sections,
	}
}

// PrimaryStore is the durable persistence contract. Implemented by
// PostgresStore; tests substitute fakes.
type PrimaryStore interface {
	Insert(ctx context.Context, rec *PersistedRecord) (*PersistedRecord, error)
	Get(ctx context.Context, id string) (*PersistedRecord, error)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]PersistedRecord, error)
}

// FallbackStore is the degraded, non-durable persistence contract.
// Implemented by MemoryStore.
type FallbackStore interface {
	Put(rec *PersistedRecord) (*PersistedRecord, error)
	Get(id string) (*PersistedRecord, bool)
}
