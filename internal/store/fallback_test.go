package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planpilot/internal/types"
)

func TestMemoryStore_PutAssignsTimestampID(t *testing.T) {
	s := NewMemoryStore()
	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	rec, err := s.Put(&PersistedRecord{Title: "Plan", UserID: uuid.New()})

	require.NoError(t, err)
	assert.Equal(t, "plan-1773480413000", rec.ID)
	assert.Equal(t, fixed, rec.CreatedAt)
	assert.True(t, rec.Fallback)
}

func TestMemoryStore_PutKeepsExistingID(t *testing.T) {
	s := NewMemoryStore()

	rec, err := s.Put(&PersistedRecord{ID: "plan-42", Title: "Plan"})

	require.NoError(t, err)
	assert.Equal(t, "plan-42", rec.ID)
}

func TestMemoryStore_GetRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	stored, err := s.Put(&PersistedRecord{
		Title:    "Plan",
		Category: types.CategoryScaleUp,
		Sections: []types.GeneratedSection{{Title: "Executive Summary", Content: "text"}},
	})
	require.NoError(t, err)

	got, found := s.Get(stored.ID)

	require.True(t, found)
	assert.Equal(t, stored.Title, got.Title)
	assert.Equal(t, stored.Category, got.Category)
	assert.Equal(t, stored.Sections, got.Sections)
}

func TestMemoryStore_OverwriteByID(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Put(&PersistedRecord{ID: "plan-42", Title: "first"})
	require.NoError(t, err)

	_, err = s.Put(&PersistedRecord{ID: "plan-42", Title: "second"})
	require.NoError(t, err)

	got, found := s.Get("plan-42")
	require.True(t, found)
	assert.Equal(t, "second", got.Title)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()

	_, found := s.Get("plan-nope")

	assert.False(t, found)
}

func TestMemoryStore_PutDoesNotMutateInput(t *testing.T) {
	s := NewMemoryStore()
	input := &PersistedRecord{Title: "Plan"}

	_, err := s.Put(input)

	require.NoError(t, err)
	assert.Empty(t, input.ID)
	assert.False(t, input.Fallback)
}
