package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
)

// requestInfo collects fields that are known only after inner middleware
// ran, such as the authenticated subject.
type requestInfo struct {
	subject string
}

type requestInfoKey struct{}

func requestInfoFrom(ctx context.Context) *requestInfo {
	info, _ := ctx.Value(requestInfoKey{}).(*requestInfo)
	return info
}

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		info := &requestInfo{}
		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r.WithContext(context.WithValue(r.Context(), requestInfoKey{}, info)))

		log := logger.FromRequest(r).Info()
		if info.subject != "" {
			log = log.Str("subject", info.subject)
		}
		log.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
