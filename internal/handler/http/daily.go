package http

import (
	"net/http"

	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getDay(w http.ResponseWriter, r *http.Request, profileID string) {
	writeView(w, r, h.state.Daily.Day(r.Context(), profileID, chi.URLParam(r, "date")))
}

func (h *Handler) getToday(w http.ResponseWriter, r *http.Request, profileID string) {
	writeView(w, r, h.state.Daily.Today(r.Context(), profileID))
}

func (h *Handler) listDailyRange(w http.ResponseWriter, r *http.Request, profileID string) {
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
	writeView(w, r, h.state.Daily.Range(r.Context(), profileID, from, to))
}

// getDaySummary uses the BMR stored on the profile.
func (h *Handler) getDaySummary(w http.ResponseWriter, r *http.Request, profileID string) {
	p := h.state.Profile.Current(r.Context(), profileID)
	if p.Error != nil {
		writeError(w, r, p.Error)
		return
	}
	writeView(w, r, h.state.Daily.Summary(r.Context(), profileID, chi.URLParam(r, "date"), p.Data.BMR))
}

func (h *Handler) upsertDailyEntry(w http.ResponseWriter, r *http.Request, profileID string) {
	var upd models.DailyEntryUpdate
	if !decodeJSON(w, r, &upd) {
		return
	}
	entry, err := h.state.Daily.UpsertEntry(r.Context(), profileID, chi.URLParam(r, "date"), upd)
	writeResult(w, r, entry, err, http.StatusOK)
}

// ── Calories ───────────────────────────────────────────────────────────────

func (h *Handler) listCalories(w http.ResponseWriter, r *http.Request, profileID string) {
	writeView(w, r, h.state.Daily.Calories(r.Context(), profileID, chi.URLParam(r, "date")))
}

func (h *Handler) addCalorie(w http.ResponseWriter, r *http.Request, profileID string) {
	var entry models.CalorieEntry
	if !decodeJSON(w, r, &entry) {
		return
	}
	created, err := h.state.Daily.AddCalorie(r.Context(), profileID, chi.URLParam(r, "date"), entry)
	writeResult(w, r, created, err, http.StatusCreated)
}

func (h *Handler) deleteCalorie(w http.ResponseWriter, r *http.Request, profileID string) {
	err := h.state.Daily.DeleteCalorie(r.Context(), profileID, chi.URLParam(r, "date"), chi.URLParam(r, "id"))
	writeResult(w, r, nil, err, http.StatusNoContent)
}

// ── Exercises ──────────────────────────────────────────────────────────────

func (h *Handler) listExercises(w http.ResponseWriter, r *http.Request, profileID string) {
	writeView(w, r, h.state.Daily.Exercises(r.Context(), profileID, chi.URLParam(r, "date")))
}

func (h *Handler) addExercise(w http.ResponseWriter, r *http.Request, profileID string) {
	var entry models.ExerciseEntry
	if !decodeJSON(w, r, &entry) {
		return
	}
	created, err := h.state.Daily.AddExercise(r.Context(), profileID, chi.URLParam(r, "date"), entry)
	writeResult(w, r, created, err, http.StatusCreated)
}

func (h *Handler) deleteExercise(w http.ResponseWriter, r *http.Request, profileID string) {
	err := h.state.Daily.DeleteExercise(r.Context(), profileID, chi.URLParam(r, "date"), chi.URLParam(r, "id"))
	writeResult(w, r, nil, err, http.StatusNoContent)
}

// ── MITs ───────────────────────────────────────────────────────────────────

func (h *Handler) listMITs(w http.ResponseWriter, r *http.Request, profileID string) {
	writeView(w, r, h.state.Daily.MITs(r.Context(), profileID, chi.URLParam(r, "date")))
}

func (h *Handler) addMIT(w http.ResponseWriter, r *http.Request, profileID string) {
	var mit models.MIT
	if !decodeJSON(w, r, &mit) {
		return
	}
	created, err := h.state.Daily.AddMIT(r.Context(), profileID, chi.URLParam(r, "date"), mit)
	writeResult(w, r, created, err, http.StatusCreated)
}

func (h *Handler) toggleMIT(w http.ResponseWriter, r *http.Request, profileID string) {
	mit, err := h.state.Daily.ToggleMIT(r.Context(), profileID, chi.URLParam(r, "date"), chi.URLParam(r, "id"))
	writeResult(w, r, mit, err, http.StatusOK)
}

func (h *Handler) deleteMIT(w http.ResponseWriter, r *http.Request, profileID string) {
	err := h.state.Daily.DeleteMIT(r.Context(), profileID, chi.URLParam(r, "date"), chi.URLParam(r, "id"))
	writeResult(w, r, nil, err, http.StatusNoContent)
}

// ── Nirvana ────────────────────────────────────────────────────────────────

func (h *Handler) listNirvanaSessions(w http.ResponseWriter, r *http.Request, profileID string) {
	writeView(w, r, h.state.Daily.NirvanaSessions(r.Context(), profileID, chi.URLParam(r, "date")))
}

func (h *Handler) addNirvanaSession(w http.ResponseWriter, r *http.Request, profileID string) {
	var session models.NirvanaSession
	if !decodeJSON(w, r, &session) {
		return
	}
	created, err := h.state.Daily.AddNirvanaSession(r.Context(), profileID, chi.URLParam(r, "date"), session)
	writeResult(w, r, created, err, http.StatusCreated)
}

func (h *Handler) deleteNirvanaSession(w http.ResponseWriter, r *http.Request, profileID string) {
	err := h.state.Daily.DeleteNirvanaSession(r.Context(), profileID, chi.URLParam(r, "date"), chi.URLParam(r, "id"))
	writeResult(w, r, nil, err, http.StatusNoContent)
}
