package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamlessgov/govdash/internal/model"
)

func TestStatsFromSeedData(t *testing.T) {
	s := newTestStore()

	stats := s.Stats()
	assert.Equal(t, 4, stats.TotalAmendments)
	assert.Equal(t, 3, stats.ActiveAmendments)
	assert.Equal(t, 1247+892+634+756, stats.TotalFeedback)
	assert.Equal(t, "7.8%", stats.ResponseRate)
	assert.Equal(t, "3,529", stats.FormattedFeedback())
}

func TestStatsTrackMutations(t *testing.T) {
	s := newTestStore()

	a, err := s.Create(Input{Name: "Another Act", Status: model.StatusActive})
	require.NoError(t, err)

	stats := s.Stats()
	assert.Equal(t, 5, stats.TotalAmendments)
	assert.Equal(t, 4, stats.ActiveAmendments)

	// Active count never exceeds the total, and total feedback is the exact
	// per-amendment sum.
	assert.LessOrEqual(t, stats.ActiveAmendments, stats.TotalAmendments)
	sum := 0
	for _, am := range s.List() {
		sum += am.TotalFeedback
	}
	assert.Equal(t, sum, stats.TotalFeedback)

	s.Delete(a.ID)
	stats = s.Stats()
	assert.Equal(t, 4, stats.TotalAmendments)
	assert.Equal(t, 3, stats.ActiveAmendments)
}

func TestStatsEmptyStore(t *testing.T) {
	s := NewStore(newTestStore().rng, nil)

	stats := s.Stats()
	assert.Zero(t, stats.TotalAmendments)
	assert.Zero(t, stats.ActiveAmendments)
	assert.Zero(t, stats.TotalFeedback)
	assert.Equal(t, "7.8%", stats.ResponseRate)
}
