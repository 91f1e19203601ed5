package web

import (
	"log/slog"
	"net/http"

	"github.com/seamlessgov/govdash/internal/dashboard"
)

// Dashboard handles GET /.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	if err := s.App.RefreshOverallCharts(); err != nil {
		slog.Error("failed to refresh dashboard charts", "error", err)
	}

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		Stats        dashboard.Stats
		OverallChart string
		TrendChart   string
	}{
		PageData:     PageData{Title: "Dashboard", Message: r.URL.Query().Get("msg")},
		Stats:        s.App.Store.Stats(),
		OverallChart: s.App.Configs.ConfigJSON(dashboard.CanvasOverallSentiment),
		TrendChart:   s.App.Configs.ConfigJSON(dashboard.CanvasFeedbackTrends),
	})
}
