package http

import (
	"net/http"

	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getWeek(w http.ResponseWriter, r *http.Request, profileID string) {
	writeView(w, r, h.state.Weekly.Get(r.Context(), profileID, chi.URLParam(r, "weekStart")))
}

func (h *Handler) getCurrentWeek(w http.ResponseWriter, r *http.Request, profileID string) {
	writeView(w, r, h.state.Weekly.Current(r.Context(), profileID))
}

func (h *Handler) upsertWeek(w http.ResponseWriter, r *http.Request, profileID string) {
	var upd models.WeeklyEntryUpdate
	if !decodeJSON(w, r, &upd) {
		return
	}
	entry, err := h.state.Weekly.Upsert(r.Context(), profileID, chi.URLParam(r, "weekStart"), upd)
	writeResult(w, r, entry, err, http.StatusOK)
}

func (h *Handler) toggleObjective(w http.ResponseWriter, r *http.Request, profileID string) {
	entry, err := h.state.Weekly.ToggleObjective(r.Context(), profileID, chi.URLParam(r, "weekStart"), chi.URLParam(r, "id"))
	writeResult(w, r, entry, err, http.StatusOK)
}
