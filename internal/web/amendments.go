package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/seamlessgov/govdash/internal/analytics"
	"github.com/seamlessgov/govdash/internal/dashboard"
	"github.com/seamlessgov/govdash/internal/model"
)

// AmendmentsPage handles GET /amendments. With ?edit=<id> the form modal
// opens prefilled for that amendment.
func (s *Server) AmendmentsPage(w http.ResponseWriter, r *http.Request) {
	var editing *model.Amendment
	if editID := r.URL.Query().Get("edit"); editID != "" {
		if id, err := strconv.Atoi(editID); err == nil {
			if a, ok := s.App.Store.Get(id); ok {
				editing = &a
				s.App.Modals.Open(dashboard.ModalAmendment)
			}
		}
	}
	if r.URL.Query().Get("new") != "" {
		s.App.Modals.Open(dashboard.ModalAmendment)
	}

	s.Templates.Render(w, "amendments.html", &struct {
		PageData
		Amendments []model.Amendment
		Editing    *model.Amendment
		FormOpen   bool
	}{
		PageData: PageData{
			Title:        "Amendments",
			Message:      r.URL.Query().Get("msg"),
			ScrollLocked: s.App.Modals.ScrollLocked(),
		},
		Amendments: s.App.Store.List(),
		Editing:    editing,
		FormOpen:   s.App.Modals.OpenModal() == dashboard.ModalAmendment,
	})
}

// formInput reads the amendment form fields.
func formInput(r *http.Request) dashboard.Input {
	days, _ := strconv.Atoi(r.FormValue("timeline_days"))
	return dashboard.Input{
		Name:         r.FormValue("name"),
		Description:  r.FormValue("description"),
		Status:       r.FormValue("status"),
		TimelineDays: days,
	}
}

// AmendmentCreateSubmit handles POST /amendments.
func (s *Server) AmendmentCreateSubmit(w http.ResponseWriter, r *http.Request) {
	if _, err := s.App.CreateAmendment(formInput(r)); err != nil {
		slog.Error("failed to create amendment", "error", err)
		http.Redirect(w, r, "/amendments?msg=Amendment+name+is+required", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/amendments?msg=Amendment+created+successfully!", http.StatusSeeOther)
}

// AmendmentUpdateSubmit handles POST /amendments/{id}.
func (s *Server) AmendmentUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	// A vanished id still closes the form and reports success, matching the
	// dashboard's best-effort mutation behavior.
	if _, err := s.App.UpdateAmendment(id, formInput(r)); err != nil {
		slog.Error("failed to refresh charts after update", "error", err)
	}
	http.Redirect(w, r, "/amendments?msg=Amendment+updated+successfully!", http.StatusSeeOther)
}

// AmendmentDeleteSubmit handles POST /amendments/{id}/delete. The request
// must carry confirm=yes, set by the confirmation prompt.
func (s *Server) AmendmentDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if r.FormValue("confirm") != "yes" {
		http.Redirect(w, r, "/amendments", http.StatusSeeOther)
		return
	}

	if _, err := s.App.DeleteAmendment(id); err != nil {
		slog.Error("failed to refresh charts after delete", "error", err)
	}
	http.Redirect(w, r, "/amendments?msg=Amendment+deleted+successfully!", http.StatusSeeOther)
}

// AnalyticsPage handles GET /amendments/{id}/analytics.
func (s *Server) AnalyticsPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	an, ok := s.App.ShowAnalytics(id)
	if !ok {
		http.Redirect(w, r, "/amendments?msg=Amendment+not+found", http.StatusSeeOther)
		return
	}

	a, _ := s.App.Store.Get(id)
	s.Templates.Render(w, "analytics.html", &struct {
		PageData
		Amendment      model.Amendment
		Analytics      analytics.Analytics
		SentimentChart string
	}{
		PageData: PageData{
			Title:        an.AmendmentName + " - Analytics",
			ScrollLocked: s.App.Modals.ScrollLocked(),
		},
		Amendment:      a,
		Analytics:      an,
		SentimentChart: s.App.Configs.ConfigJSON(dashboard.CanvasAmendmentSentiment),
	})
}

// AnalyticsClose handles POST /analytics/close.
func (s *Server) AnalyticsClose(w http.ResponseWriter, r *http.Request) {
	s.App.CloseAnalytics()
	http.Redirect(w, r, "/amendments", http.StatusSeeOther)
}
