package web

import (
	"log/slog"
	"net/http"

	"github.com/seamlessgov/govdash/internal/store"
)

// SendPage handles GET /send.
func (s *Server) SendPage(w http.ResponseWriter, r *http.Request) {
	latest, err := store.LatestFriendAmendment(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to get latest amendment", "error", err)
	}

	var latestName string
	if latest != nil {
		latestName = latest.Name
	}

	s.Templates.Render(w, "send.html", &struct {
		PageData
		Latest string
	}{
		PageData: PageData{Title: "Send Amendment", Message: r.URL.Query().Get("msg")},
		Latest:   latestName,
	})
}

// SendSubmit handles POST /send, storing an amendment name in the local
// database the same way the API endpoint does.
func (s *Server) SendSubmit(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("amendment_name")
	if name == "" {
		http.Redirect(w, r, "/send?msg=Amendment+name+is+required", http.StatusSeeOther)
		return
	}

	if _, err := store.SendAmendment(r.Context(), s.DB, name); err != nil {
		slog.Error("failed to save amendment", "error", err)
		http.Redirect(w, r, "/send?msg=Failed+to+save+amendment", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/send?msg=Amendment+saved+to+your+friend's+database!", http.StatusSeeOther)
}
