package web

import (
	"database/sql"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/seamlessgov/govdash/internal/dashboard"
	webembed "github.com/seamlessgov/govdash/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"comma": func(n int) string {
			return humanize.Comma(int64(n))
		},
		"formatDate": func(date string) string {
			d, err := time.Parse("2006-01-02", date)
			if err != nil {
				return date
			}
			return d.Format("Jan 2, 2006")
		},
		"statusClass": func(status string) string {
			switch status {
			case "Active":
				return "status-active"
			case "Draft":
				return "status-draft"
			case "Under Review":
				return "status-review"
			case "Completed":
				return "status-completed"
			default:
				return "status-other"
			}
		},
		"score": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"dashboard.html",
		"amendments.html",
		"analytics.html",
		"uploads.html",
		"send.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data. Rendering reads only the
// passed data, so repeating it with the same state gives the same markup.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title        string
	Message      string
	ScrollLocked bool
}

// Server holds all dependencies for page handlers.
type Server struct {
	DB        *sql.DB
	App       *dashboard.App
	Templates *Templates
}
