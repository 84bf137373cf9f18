package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
	"github.com/MKhiriev/go-health-keeper/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request, profileID string) {
	writeView(w, r, h.state.Profile.Current(r.Context(), profileID))
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request, profileID string) {
	var upd models.ProfileUpdate
	if !decodeJSON(w, r, &upd) {
		return
	}

	p, err := h.state.Profile.Update(r.Context(), profileID, upd)
	if err == nil {
		subject, _ := utils.GetSubjectFromContext(r.Context())
		_, err = h.profiles.Refresh(r.Context(), subject)
	}
	writeResult(w, r, p, err, http.StatusOK)
}

func (h *Handler) refreshProfile(w http.ResponseWriter, r *http.Request) {
	subject, _ := utils.GetSubjectFromContext(r.Context())
	p, err := h.profiles.Refresh(r.Context(), subject)
	writeResult(w, r, p, err, http.StatusOK)
}

// resetProfile drops the loaded profile and every cached query of it.
func (h *Handler) resetProfile(w http.ResponseWriter, r *http.Request) {
	subject, _ := utils.GetSubjectFromContext(r.Context())
	h.profiles.Reset(r.Context(), subject)
	w.WriteHeader(http.StatusNoContent)
}

// calculateBMR evaluates the Mifflin-St Jeor equation from query parameters.
func (h *Handler) calculateBMR(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	weight, err1 := strconv.ParseFloat(q.Get("weight_kg"), 64)
	height, err2 := strconv.ParseFloat(q.Get("height_cm"), 64)
	age, err3 := strconv.Atoi(q.Get("age"))
	if err1 != nil || err2 != nil || err3 != nil || weight <= 0 || height <= 0 || age <= 0 {
		writeError(w, r, ErrInvalidQueryParam)
		return
	}

	bmr, err := service.CalculateBMR(models.BMRInput{
		WeightKg: weight,
		HeightCm: height,
		Age:      age,
		Gender:   q.Get("gender"),
	})
	writeResult(w, r, map[string]int{"bmr": bmr}, err, http.StatusOK)
}
