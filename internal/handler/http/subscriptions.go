package http

import (
	"net/http"

	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/go-chi/chi/v5"
)

// listSubscriptions narrows to one category with ?category=.
func (h *Handler) listSubscriptions(w http.ResponseWriter, r *http.Request, profileID string) {
	if category := r.URL.Query().Get("category"); category != "" {
		writeView(w, r, h.state.Subscriptions.ByCategory(r.Context(), profileID, category))
		return
	}
	writeView(w, r, h.state.Subscriptions.List(r.Context(), profileID))
}

func (h *Handler) getSubscriptionTotals(w http.ResponseWriter, r *http.Request, profileID string) {
	writeView(w, r, h.state.Subscriptions.Totals(r.Context(), profileID))
}

func (h *Handler) createSubscription(w http.ResponseWriter, r *http.Request, profileID string) {
	var sub models.Subscription
	if !decodeJSON(w, r, &sub) {
		return
	}
	created, err := h.state.Subscriptions.Create(r.Context(), profileID, sub)
	writeResult(w, r, created, err, http.StatusCreated)
}

func (h *Handler) updateSubscription(w http.ResponseWriter, r *http.Request, profileID string) {
	var upd models.SubscriptionUpdate
	if !decodeJSON(w, r, &upd) {
		return
	}
	sub, err := h.state.Subscriptions.Update(r.Context(), profileID, chi.URLParam(r, "id"), upd)
	writeResult(w, r, sub, err, http.StatusOK)
}

func (h *Handler) deleteSubscription(w http.ResponseWriter, r *http.Request, profileID string) {
	err := h.state.Subscriptions.Delete(r.Context(), profileID, chi.URLParam(r, "id"))
	writeResult(w, r, nil, err, http.StatusNoContent)
}

// ── Categories ─────────────────────────────────────────────────────────────

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request, profileID string) {
	writeView(w, r, h.state.Subscriptions.Categories(r.Context(), profileID))
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request, profileID string) {
	var category models.SubscriptionCategory
	if !decodeJSON(w, r, &category) {
		return
	}
	created, err := h.state.Subscriptions.CreateCategory(r.Context(), profileID, category)
	writeResult(w, r, created, err, http.StatusCreated)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request, profileID string) {
	var category models.SubscriptionCategory
	if !decodeJSON(w, r, &category) {
		return
	}
	category.ID = chi.URLParam(r, "id")
	updated, err := h.state.Subscriptions.UpdateCategory(r.Context(), profileID, category)
	writeResult(w, r, updated, err, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request, profileID string) {
	err := h.state.Subscriptions.DeleteCategory(r.Context(), profileID, chi.URLParam(r, "id"))
	writeResult(w, r, nil, err, http.StatusNoContent)
}
