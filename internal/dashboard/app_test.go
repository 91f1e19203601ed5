package dashboard

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamlessgov/govdash/internal/model"
)

func newTestApp() *App {
	return NewApp(
		rand.New(rand.NewPCG(1, 2)),
		rand.New(rand.NewPCG(3, 4)),
		func() time.Time { return testDay },
	)
}

func TestRefreshOverallCharts(t *testing.T) {
	app := newTestApp()

	require.NoError(t, app.RefreshOverallCharts())
	assert.Contains(t, app.Configs.ConfigJSON(CanvasOverallSentiment), `"type":"pie"`)
	assert.Contains(t, app.Configs.ConfigJSON(CanvasFeedbackTrends), `"type":"line"`)

	// Refreshing again replaces both charts without stacking.
	require.NoError(t, app.RefreshOverallCharts())
	assert.Len(t, app.Charts.Canvases(), 2)
}

func TestShowAndCloseAnalytics(t *testing.T) {
	app := newTestApp()

	an, ok := app.ShowAnalytics(2)
	require.True(t, ok)
	assert.Equal(t, "Healthcare Access Reform Bill", an.AmendmentName)
	assert.Equal(t, ModalAnalytics, app.Modals.OpenModal())
	assert.True(t, app.Modals.ScrollLocked())
	assert.Contains(t, app.Configs.ConfigJSON(CanvasAmendmentSentiment), `"type":"doughnut"`)

	app.CloseAnalytics()
	assert.Empty(t, app.Modals.OpenModal())
	assert.False(t, app.Modals.ScrollLocked())
	assert.Empty(t, app.Configs.ConfigJSON(CanvasAmendmentSentiment))
}

func TestShowAnalyticsVanishedAmendment(t *testing.T) {
	app := newTestApp()

	_, ok := app.ShowAnalytics(99)
	assert.False(t, ok)
	assert.Empty(t, app.Modals.OpenModal())
}

func TestCreateClosesModalAndRefreshes(t *testing.T) {
	app := newTestApp()
	app.Modals.Open(ModalAmendment)

	a, err := app.CreateAmendment(Input{Name: "Test Act", Status: model.StatusDraft, TimelineDays: 10})
	require.NoError(t, err)
	assert.Equal(t, 5, a.ID)
	assert.False(t, app.Modals.ScrollLocked())
	assert.NotEmpty(t, app.Configs.ConfigJSON(CanvasOverallSentiment))
}

func TestUpdateClosesModalEvenWhenMissing(t *testing.T) {
	app := newTestApp()
	app.Modals.Open(ModalAmendment)

	found, err := app.UpdateAmendment(99, Input{Name: "Ghost"})
	require.NoError(t, err)
	assert.False(t, found)
	// The editing UI still closes; the caller decides how to report it.
	assert.False(t, app.Modals.ScrollLocked())
}

func TestModalLockReleasedByAnyClose(t *testing.T) {
	var m Modals
	m.Open(ModalAnalytics)
	require.True(t, m.ScrollLocked())

	// Closing a different modal still releases the single shared lock.
	m.Close(ModalAmendment)
	assert.False(t, m.ScrollLocked())
	assert.Equal(t, ModalAnalytics, m.OpenModal(), "only the named modal is cleared")
}
