package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-health-keeper/internal/app"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/go-chi/chi/v5"
)

// maxImageBytes bounds a single Winners Bible upload.
const maxImageBytes = 10 << 20

type reorderRequest struct {
	IDs []string `json:"ids"`
}

func (h *Handler) listImages(w http.ResponseWriter, r *http.Request, profileID string) {
	writeView(w, r, h.state.WinnersBible.List(r.Context(), profileID))
}

// uploadImage accepts a multipart form with the image in the "file" part.
func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request, profileID string) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes+1<<16)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteError(w, nil, app.MsgFileTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		writeError(w, r, fmt.Errorf("%w: %w", ErrNoFile, err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrNoFile, err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(data) > maxImageBytes {
		utils.WriteError(w, nil, app.MsgFileTooLarge, http.StatusRequestEntityTooLarge)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}

	img, err := h.state.WinnersBible.Upload(r.Context(), profileID, models.ImageUpload{
		Name:     header.Filename,
		MimeType: mimeType,
		Data:     data,
	})
	writeResult(w, r, img, err, http.StatusCreated)
}

func (h *Handler) deleteImage(w http.ResponseWriter, r *http.Request, profileID string) {
	err := h.state.WinnersBible.Delete(r.Context(), profileID, chi.URLParam(r, "id"))
	writeResult(w, r, nil, err, http.StatusNoContent)
}

func (h *Handler) reorderImages(w http.ResponseWriter, r *http.Request, profileID string) {
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	err := h.state.WinnersBible.Reorder(r.Context(), profileID, req.IDs)
	writeResult(w, r, nil, err, http.StatusNoContent)
}
