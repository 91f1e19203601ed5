package api

import (
	"database/sql"
	"net/http"

	"github.com/seamlessgov/govdash/internal/auth"
)

// NewRouter creates the API router with all endpoints registered. Everything
// under /api/ requires a valid x-api-key header; /bill is public.
func NewRouter(db *sql.DB, v auth.Validator) http.Handler {
	mux := http.NewServeMux()

	amendments := &AmendmentsHandler{DB: db}
	keyMW := KeyMiddleware(v)

	mux.Handle("GET /api/amendment/{id}", keyMW(http.HandlerFunc(amendments.Get)))
	mux.Handle("POST /api/send-amendment", keyMW(http.HandlerFunc(amendments.Send)))

	mux.HandleFunc("GET /bill", amendments.LatestBill)

	return mux
}
