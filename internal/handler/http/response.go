package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-health-keeper/internal/app"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/state"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
	"github.com/MKhiriev/go-health-keeper/models"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// writeView writes v as an envelope. A failed read keeps whatever data the
// view carries next to the error.
func writeView[T any](w http.ResponseWriter, r *http.Request, v state.View[T]) {
	if v.Error != nil {
		status := statusFromError(v.Error)
		logError(r, v.Error, status)
		utils.WriteJSON(w, models.Envelope{
			Data:    v.Data,
			Loading: v.Loading,
			Error:   messageFromError(v.Error, status),
		}, status)
		return
	}
	utils.WriteJSON(w, models.Envelope{Data: v.Data, Loading: v.Loading}, http.StatusOK)
}

// writeResult writes the result of a mutation.
func writeResult(w http.ResponseWriter, r *http.Request, data any, err error, okStatus int) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	if data == nil {
		w.WriteHeader(okStatus)
		return
	}
	utils.WriteData(w, data, okStatus)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logError(r, err, status)
	utils.WriteError(w, nil, messageFromError(err, status), status)
}

func logError(r *http.Request, err error, status int) {
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "http.writeError").Int("status", status).Msg("request failed")
		return
	}
	log.Debug().Err(err).Int("status", status).Msg("request rejected")
}

// decodeJSON decodes the body into dst. On failure it writes the 400
// response itself and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, nil, app.MsgInvalidJSON, http.StatusBadRequest)
		return false
	}
	return true
}

// scopedHandler is a handler that runs for a resolved profile.
type scopedHandler func(w http.ResponseWriter, r *http.Request, profileID string)

// scoped adapts fn to [http.HandlerFunc], reading the profile id stored by
// the profile middleware.
func scoped(fn scopedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := utils.GetProfileIDFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrNoProfileInContext)
			return
		}
		fn(w, r, id)
	}
}

func requireQuery(r *http.Request, name string) (string, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidQueryParam, name)
	}
	return v, nil
}
