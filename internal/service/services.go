package service

import (
	"fmt"

	"github.com/MKhiriev/go-health-keeper/internal/adapter"
	"github.com/MKhiriev/go-health-keeper/internal/config"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
)

type Services struct {
	AuthService         AuthService
	AppInfoService      AppInfoService
	ProfileService      ProfileService
	DailyService        DailyService
	InjectionService    InjectionService
	WeeklyService       WeeklyService
	SubscriptionService SubscriptionService
	WinnersBibleService WinnersBibleService
	SettingsService     SettingsService
}

func NewServices(repos *store.Repositories, blobs adapter.BlobStorage, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewStructValidator()

	return &Services{
		AuthService:      authService,
		AppInfoService:   appInfoService,
		ProfileService:   NewProfileService(repos.Profiles, validator, logger),
		DailyService:     NewDailyService(repos.Daily, repos.Injections, validator, logger),
		InjectionService: NewInjectionService(repos.Injections, validator, logger),
		WeeklyService:    NewWeeklyService(repos.Weekly, validator, logger),
		SubscriptionService: NewSubscriptionValidationService(validator).
			Wrap(NewSubscriptionService(repos.Subscriptions, logger)),
		WinnersBibleService: NewWinnersBibleService(repos.Images, blobs, utils.NewUUIDGenerator(), validator, logger),
		SettingsService:     NewSettingsService(repos.Profiles, repos.Lookups, validator, logger),
	}, nil
}
