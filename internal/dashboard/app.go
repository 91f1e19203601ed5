package dashboard

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/seamlessgov/govdash/internal/analytics"
	"github.com/seamlessgov/govdash/internal/chart"
	"github.com/seamlessgov/govdash/internal/model"
	"github.com/seamlessgov/govdash/internal/upload"
)

// Canvas ids the dashboard binds charts to.
const (
	CanvasOverallSentiment   = "overall-sentiment-chart"
	CanvasFeedbackTrends     = "feedback-trends-chart"
	CanvasAmendmentSentiment = "amendment-sentiment-chart"
)

// Modal ids.
const (
	ModalAmendment = "amendment-modal"
	ModalAnalytics = "analytics-modal"
)

// App is the dashboard's application state: the amendment store, the chart
// registry with its retained configs, the upload simulator, and the modal
// bookkeeping. There are no ambient globals; everything hangs off one App.
type App struct {
	Store   *Store
	Charts  *chart.Registry
	Configs *chart.ConfigRenderer
	Uploads *upload.Simulator
	Modals  Modals

	mu  sync.Mutex // guards rng and now for chart refreshes
	rng *rand.Rand
	now func() time.Time
}

// NewApp creates a seeded dashboard. The store draws synthesized feedback
// counts from storeRng; chartRng drives the placeholder trend series.
func NewApp(storeRng, chartRng *rand.Rand, now func() time.Time) *App {
	if now == nil {
		now = time.Now
	}
	configs := chart.NewConfigRenderer()
	// The simulator runs on its own goroutines, so it gets a random source
	// of its own instead of sharing chartRng.
	uploadRng := rand.New(rand.NewPCG(chartRng.Uint64(), chartRng.Uint64()))
	return &App{
		Store:   NewSeededStore(storeRng, now),
		Charts:  chart.NewRegistry(configs),
		Configs: configs,
		Uploads: upload.NewSimulator(uploadRng, now, 200*time.Millisecond, 500*time.Millisecond),
		rng:     chartRng,
		now:     now,
	}
}

// RefreshOverallCharts replaces the dashboard-wide charts from current
// store state. Called after every mutation.
func (app *App) RefreshOverallCharts() error {
	if err := app.Charts.Render(CanvasOverallSentiment, analytics.OverallSeries(app.Store.List())); err != nil {
		return err
	}

	app.mu.Lock()
	trend := analytics.TrendSeries(app.now(), app.rng)
	app.mu.Unlock()
	return app.Charts.Render(CanvasFeedbackTrends, trend)
}

// ShowAnalytics derives the analytics panel for one amendment, binds its
// sentiment chart, and opens the analytics modal. Returns false when the
// amendment no longer exists.
func (app *App) ShowAnalytics(id int) (analytics.Analytics, bool) {
	a, ok := app.Store.Get(id)
	if !ok {
		return analytics.Analytics{}, false
	}

	if err := app.Charts.Render(CanvasAmendmentSentiment, analytics.SentimentSeries(a)); err != nil {
		return analytics.Analytics{}, false
	}
	app.Modals.Open(ModalAnalytics)
	return analytics.Derive(a), true
}

// CloseAnalytics closes the analytics modal and destroys the charts bound
// to it, so a later open never stacks instances on the same canvas.
func (app *App) CloseAnalytics() {
	app.Modals.Close(ModalAnalytics)
	app.Charts.DestroyPrefix("amendment-")
}

// CreateAmendment adds an amendment and refreshes the overall charts.
func (app *App) CreateAmendment(in Input) (model.Amendment, error) {
	a, err := app.Store.Create(in)
	if err != nil {
		return model.Amendment{}, err
	}
	app.Modals.Close(ModalAmendment)
	return a, app.RefreshOverallCharts()
}

// UpdateAmendment merges form fields into an amendment. The editing modal
// closes whether or not the id was found.
func (app *App) UpdateAmendment(id int, in Input) (bool, error) {
	found := app.Store.Update(id, in)
	app.Modals.Close(ModalAmendment)
	return found, app.RefreshOverallCharts()
}

// DeleteAmendment removes an amendment. Confirmation happens in the UI
// layer before this is called.
func (app *App) DeleteAmendment(id int) (bool, error) {
	found := app.Store.Delete(id)
	return found, app.RefreshOverallCharts()
}
