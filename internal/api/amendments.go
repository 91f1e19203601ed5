package api

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/seamlessgov/govdash/internal/store"
)

// AmendmentsHandler handles the friend-amendment endpoints.
type AmendmentsHandler struct {
	DB *sql.DB
}

type sendAmendmentRequest struct {
	AmendmentName string `json:"amendmentName"`
}

// Get handles GET /api/amendment/{id}.
func (h *AmendmentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusNotFound, "Amendment not found.")
		return
	}

	fa, err := store.GetFriendAmendment(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to get amendment", "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "Failed to get amendment.")
		return
	}
	if fa == nil {
		jsonError(w, http.StatusNotFound, "Amendment not found.")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"amendmentName": fa.Name})
}

// Send handles POST /api/send-amendment.
func (h *AmendmentsHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendAmendmentRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "Amendment name is required.")
		return
	}

	if req.AmendmentName == "" {
		jsonError(w, http.StatusBadRequest, "Amendment name is required.")
		return
	}

	fa, err := store.SendAmendment(r.Context(), h.DB, req.AmendmentName)
	if err != nil {
		slog.Error("failed to save amendment", "error", err)
		jsonError(w, http.StatusInternalServerError, "Failed to save amendment.")
		return
	}

	slog.Info("amendment saved", "id", fa.ID, "name", fa.Name)
	jsonResponse(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Amendment '%s' saved to your friend's database!", fa.Name),
	})
}

// defaultBill is returned by the public bill endpoint when nothing has been
// stored yet.
const defaultBill = "Digital Privacy Protection Act 2025"

// LatestBill handles GET /bill. The endpoint is public and returns the most
// recently stored amendment name.
func (h *AmendmentsHandler) LatestBill(w http.ResponseWriter, r *http.Request) {
	fa, err := store.LatestFriendAmendment(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to get latest amendment", "error", err)
		jsonError(w, http.StatusInternalServerError, "Failed to get amendment.")
		return
	}

	name := defaultBill
	if fa != nil {
		name = fa.Name
	}
	jsonResponse(w, http.StatusOK, map[string]string{"bill": name})
}
