package web

import (
	"database/sql"
	"net/http"

	"github.com/seamlessgov/govdash/internal/dashboard"
	webembed "github.com/seamlessgov/govdash/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB, app *dashboard.App) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        db,
		App:       app,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.Dashboard)

	mux.HandleFunc("GET /amendments", s.AmendmentsPage)
	mux.HandleFunc("POST /amendments", s.AmendmentCreateSubmit)
	mux.HandleFunc("POST /amendments/{id}", s.AmendmentUpdateSubmit)
	mux.HandleFunc("POST /amendments/{id}/delete", s.AmendmentDeleteSubmit)
	mux.HandleFunc("GET /amendments/{id}/analytics", s.AnalyticsPage)
	mux.HandleFunc("POST /analytics/close", s.AnalyticsClose)

	mux.HandleFunc("GET /uploads", s.UploadsPage)
	mux.HandleFunc("POST /uploads", s.UploadSubmit)
	mux.HandleFunc("POST /uploads/{id}/remove", s.UploadRemoveSubmit)

	mux.HandleFunc("GET /send", s.SendPage)
	mux.HandleFunc("POST /send", s.SendSubmit)

	return mux, nil
}
