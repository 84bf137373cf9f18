package http

import (
	"github.com/MKhiriev/go-health-keeper/internal/config"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/profile"
	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/internal/state"
)

type Handler struct {
	services *service.Services
	state    *state.Adapters
	profiles *profile.Context
	limiter  *subjectLimiter

	cfg config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, adapters *state.Adapters, profiles *profile.Context, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		state:    adapters,
		profiles: profiles,
		limiter:  newSubjectLimiter(cfg.RateLimit, cfg.RateBurst),
		cfg:      cfg,
		logger:   logger,
	}
}
