package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-health-keeper/internal/app"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/profile"
	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization" header, verifies it via
// [service.AuthService.ParseToken], and stores the token subject in the
// request context under [utils.SubjectCtxKey]. Requests without a valid
// token are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, nil, app.MsgNotAuthenticated, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteError(w, nil, app.MsgNotAuthenticated, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Debug().Err(err).Msg("token expired")
				utils.WriteError(w, nil, app.MsgTokenIsExpired, http.StatusUnauthorized)
			case errors.Is(err, service.ErrNoTokenVerifier):
				log.Err(err).Msg("no token verifier configured")
				utils.WriteError(w, nil, app.MsgInternalServerError, http.StatusInternalServerError)
			default:
				log.Debug().Err(err).Msg("error occurred during parsing token")
				utils.WriteError(w, nil, app.MsgTokenIsInvalid, http.StatusUnauthorized)
			}
			return
		}

		if info := requestInfoFrom(ctx); info != nil {
			info.subject = claims.Subject
		}
		ctx = context.WithValue(ctx, utils.SubjectCtxKey, claims.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withProfile resolves the authenticated subject to its profile through the
// profile context and stores the id under [utils.ProfileIDCtxKey].
func (h *Handler) withProfile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		subject, _ := utils.GetSubjectFromContext(ctx)

		id, err := h.profiles.ProfileID(ctx, subject)
		if err != nil {
			if errors.Is(err, profile.ErrNotAuthenticated) {
				utils.WriteError(w, nil, app.MsgNotAuthenticated, http.StatusUnauthorized)
				return
			}
			logger.FromRequest(r).Err(err).Str("func", "*Handler.withProfile").Msg("error resolving profile")
			utils.WriteError(w, nil, app.MsgProfileUnavailable, statusFromError(err))
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, utils.ProfileIDCtxKey, id)))
	})
}
