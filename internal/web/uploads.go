package web

import (
	"net/http"
	"strconv"

	"github.com/seamlessgov/govdash/internal/model"
	"github.com/seamlessgov/govdash/internal/upload"
)

// UploadsPage handles GET /uploads.
func (s *Server) UploadsPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "uploads.html", &struct {
		PageData
		Files []model.UploadedFile
	}{
		PageData: PageData{Title: "Documents", Message: r.URL.Query().Get("msg")},
		Files:    s.App.Uploads.Files(),
	})
}

// UploadSubmit handles POST /uploads. Only file metadata is taken from the
// multipart form; the content is discarded, since uploads are simulated.
func (s *Server) UploadSubmit(w http.ResponseWriter, r *http.Request) {
	// Metadata only, but still cap the request size.
	r.Body = http.MaxBytesReader(w, r.Body, 25<<20)
	if err := r.ParseMultipartForm(25 << 20); err != nil {
		http.Redirect(w, r, "/uploads?msg=Invalid+upload", http.StatusSeeOther)
		return
	}

	var infos []upload.FileInfo
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["files"] {
			infos = append(infos, upload.FileInfo{
				Name: header.Filename,
				Size: header.Size,
				Type: header.Header.Get("Content-Type"),
			})
		}
	}
	if len(infos) == 0 {
		http.Redirect(w, r, "/uploads?msg=No+files+selected", http.StatusSeeOther)
		return
	}

	// Wait for the simulated batch so the redirected page shows the result.
	<-s.App.Uploads.Upload(infos)
	http.Redirect(w, r, "/uploads?msg="+strconv.Itoa(len(infos))+"+file(s)+uploaded+successfully!", http.StatusSeeOther)
}

// UploadRemoveSubmit handles POST /uploads/{id}/remove.
func (s *Server) UploadRemoveSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	s.App.Uploads.Remove(id)
	http.Redirect(w, r, "/uploads?msg=File+removed+successfully!", http.StatusSeeOther)
}
