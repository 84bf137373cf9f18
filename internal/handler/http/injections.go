package http

import (
	"net/http"

	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/go-chi/chi/v5"
)

// listInjections serves either ?date= or ?from=&to=.
func (h *Handler) listInjections(w http.ResponseWriter, r *http.Request, profileID string) {
	q := r.URL.Query()
	if date := q.Get("date"); date != "" {
		writeView(w, r, h.state.Injections.ByDate(r.Context(), profileID, date))
		return
	}

	from, err := requireQuery(r, "from")
	if err != nil {
		writeError(w, r, err)
		return
	}
	to, err := requireQuery(r, "to")
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeView(w, r, h.state.Injections.Range(r.Context(), profileID, from, to))
}

func (h *Handler) createInjection(w http.ResponseWriter, r *http.Request, profileID string) {
	var entry models.InjectionEntry
	if !decodeJSON(w, r, &entry) {
		return
	}
	created, err := h.state.Injections.Create(r.Context(), profileID, entry)
	writeResult(w, r, created, err, http.StatusCreated)
}

func (h *Handler) updateInjection(w http.ResponseWriter, r *http.Request, profileID string) {
	var upd models.InjectionUpdate
	if !decodeJSON(w, r, &upd) {
		return
	}
	entry, err := h.state.Injections.Update(r.Context(), profileID, chi.URLParam(r, "id"), upd)
	writeResult(w, r, entry, err, http.StatusOK)
}

func (h *Handler) deleteInjection(w http.ResponseWriter, r *http.Request, profileID string) {
	err := h.state.Injections.Delete(r.Context(), profileID, chi.URLParam(r, "id"))
	writeResult(w, r, nil, err, http.StatusNoContent)
}
