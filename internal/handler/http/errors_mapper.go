package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-health-keeper/internal/app"
	"github.com/MKhiriev/go-health-keeper/internal/profile"
	"github.com/MKhiriev/go-health-keeper/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrUnknownGender:         http.StatusBadRequest,
	service.ErrNothingToUpdate:       http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,
	service.ErrInvalidReference:      http.StatusUnprocessableEntity,
	service.ErrNotFound:              http.StatusNotFound,
	service.ErrObjectiveNotFound:     http.StatusNotFound,
	service.ErrConflict:              http.StatusConflict,
	service.ErrNoSubject:             http.StatusUnauthorized,
	service.ErrInvalidToken:          http.StatusUnauthorized,
	service.ErrTokenIsExpired:        http.StatusUnauthorized,
	service.ErrNoTokenVerifier:       http.StatusInternalServerError,
	service.ErrStorage:               http.StatusBadGateway,

	profile.ErrNotAuthenticated: http.StatusUnauthorized,

	ErrInvalidQueryParam:  http.StatusBadRequest,
	ErrNoFile:             http.StatusBadRequest,
	ErrNoProfileInContext: http.StatusInternalServerError,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text put into the envelope. Client errors
// carry the service message; server errors are not exposed.
func messageFromError(err error, status int) string {
	switch {
	case status == http.StatusBadGateway:
		return app.MsgStorageUnavailable
	case status == http.StatusGatewayTimeout:
		return app.MsgRequestTimeout
	case status >= http.StatusInternalServerError:
		return app.MsgInternalServerError
	}
	return err.Error()
}
