package http

import (
	"net/http"

	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request, profileID string) {
	writeView(w, r, h.state.Settings.Current(r.Context(), profileID))
}

func (h *Handler) updateTrackerSettings(w http.ResponseWriter, r *http.Request, profileID string) {
	var patch models.JSONMap
	if !decodeJSON(w, r, &patch) {
		return
	}
	st, err := h.state.Settings.UpdateTrackerSettings(r.Context(), profileID, patch)
	writeResult(w, r, st, err, http.StatusOK)
}

func (h *Handler) updateMacroTargets(w http.ResponseWriter, r *http.Request, profileID string) {
	var patch models.JSONMap
	if !decodeJSON(w, r, &patch) {
		return
	}
	st, err := h.state.Settings.UpdateMacroTargets(r.Context(), profileID, patch)
	writeResult(w, r, st, err, http.StatusOK)
}

// ── Lookups ────────────────────────────────────────────────────────────────

func (h *Handler) listCompounds(w http.ResponseWriter, r *http.Request, profileID string) {
	writeView(w, r, h.state.Settings.Compounds(r.Context(), profileID))
}

func (h *Handler) createCompound(w http.ResponseWriter, r *http.Request, profileID string) {
	var c models.Compound
	if !decodeJSON(w, r, &c) {
		return
	}
	created, err := h.state.Settings.CreateCompound(r.Context(), profileID, c)
	writeResult(w, r, created, err, http.StatusCreated)
}

func (h *Handler) deleteCompound(w http.ResponseWriter, r *http.Request, profileID string) {
	err := h.state.Settings.DeleteCompound(r.Context(), profileID, chi.URLParam(r, "id"))
	writeResult(w, r, nil, err, http.StatusNoContent)
}

func (h *Handler) listFoodTemplates(w http.ResponseWriter, r *http.Request, profileID string) {
	writeView(w, r, h.state.Settings.FoodTemplates(r.Context(), profileID))
}

func (h *Handler) createFoodTemplate(w http.ResponseWriter, r *http.Request, profileID string) {
	var f models.FoodTemplate
	if !decodeJSON(w, r, &f) {
		return
	}
	created, err := h.state.Settings.CreateFoodTemplate(r.Context(), profileID, f)
	writeResult(w, r, created, err, http.StatusCreated)
}

func (h *Handler) deleteFoodTemplate(w http.ResponseWriter, r *http.Request, profileID string) {
	err := h.state.Settings.DeleteFoodTemplate(r.Context(), profileID, chi.URLParam(r, "id"))
	writeResult(w, r, nil, err, http.StatusNoContent)
}

func (h *Handler) listNirvanaTypes(w http.ResponseWriter, r *http.Request, profileID string) {
	writeView(w, r, h.state.Settings.NirvanaTypes(r.Context(), profileID))
}

func (h *Handler) createNirvanaType(w http.ResponseWriter, r *http.Request, profileID string) {
	var t models.NirvanaSessionType
	if !decodeJSON(w, r, &t) {
		return
	}
	created, err := h.state.Settings.CreateNirvanaType(r.Context(), profileID, t)
	writeResult(w, r, created, err, http.StatusCreated)
}

func (h *Handler) deleteNirvanaType(w http.ResponseWriter, r *http.Request, profileID string) {
	err := h.state.Settings.DeleteNirvanaType(r.Context(), profileID, chi.URLParam(r, "id"))
	writeResult(w, r, nil, err, http.StatusNoContent)
}
