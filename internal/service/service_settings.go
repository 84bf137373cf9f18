package service

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
)

type settingsService struct {
	profiles  store.ProfileRepository
	lookups   store.LookupRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewSettingsService(profiles store.ProfileRepository, lookups store.LookupRepository, validator validators.Validator, logger *logger.Logger) SettingsService {
	return &settingsService{
		profiles:  profiles,
		lookups:   lookups,
		validator: validator,
		logger:    logger,
	}
}

func settingsOf(p models.Profile) models.Settings {
	return models.Settings{TrackerSettings: p.TrackerSettings, MacroTargets: p.MacroTargets}
}

func (s *settingsService) Get(ctx context.Context, profileID string) (models.Settings, error) {
	p, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return models.Settings{}, mapStoreError(err)
	}
	return settingsOf(p), nil
}

func (s *settingsService) UpdateTrackerSettings(ctx context.Context, profileID string, patch models.JSONMap) (models.Settings, error) {
	return s.merge(ctx, profileID, patch, func(p models.Profile, patch models.JSONMap) models.ProfileUpdate {
		return models.ProfileUpdate{TrackerSettings: p.TrackerSettings.Merge(patch)}
	})
}

func (s *settingsService) UpdateMacroTargets(ctx context.Context, profileID string, patch models.JSONMap) (models.Settings, error) {
	return s.merge(ctx, profileID, patch, func(p models.Profile, patch models.JSONMap) models.ProfileUpdate {
		return models.ProfileUpdate{MacroTargets: p.MacroTargets.Merge(patch)}
	})
}

func (s *settingsService) merge(ctx context.Context, profileID string, patch models.JSONMap,
	build func(models.Profile, models.JSONMap) models.ProfileUpdate) (models.Settings, error) {
	if len(patch) == 0 {
		return models.Settings{}, ErrNothingToUpdate
	}

	p, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return models.Settings{}, mapStoreError(err)
	}

	updated, err := s.profiles.Update(ctx, profileID, build(p, patch))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "settingsService.merge").Msg("error saving settings")
		return models.Settings{}, mapStoreError(err)
	}
	return settingsOf(updated), nil
}

// ── Lookups ────────────────────────────────────────────────────────────────

func (s *settingsService) ListCompounds(ctx context.Context, profileID string) ([]models.Compound, error) {
	list, err := s.lookups.ListCompounds(ctx, profileID)
	return list, mapStoreError(err)
}

func (s *settingsService) CreateCompound(ctx context.Context, c models.Compound) (models.Compound, error) {
	if err := s.validator.Validate(ctx, c); err != nil {
		return models.Compound{}, mapValidationError(err)
	}
	created, err := s.lookups.CreateCompound(ctx, c)
	if err != nil {
		return models.Compound{}, mapStoreError(err)
	}
	return created, nil
}

func (s *settingsService) DeleteCompound(ctx context.Context, profileID, id string) error {
	return mapStoreError(s.lookups.DeleteCompound(ctx, profileID, id))
}

func (s *settingsService) ListFoodTemplates(ctx context.Context, profileID string) ([]models.FoodTemplate, error) {
	list, err := s.lookups.ListFoodTemplates(ctx, profileID)
	return list, mapStoreError(err)
}

func (s *settingsService) CreateFoodTemplate(ctx context.Context, f models.FoodTemplate) (models.FoodTemplate, error) {
	if err := s.validator.Validate(ctx, f); err != nil {
		return models.FoodTemplate{}, mapValidationError(err)
	}
	created, err := s.lookups.CreateFoodTemplate(ctx, f)
	if err != nil {
		return models.FoodTemplate{}, mapStoreError(err)
	}
	return created, nil
}

func (s *settingsService) DeleteFoodTemplate(ctx context.Context, profileID, id string) error {
	return mapStoreError(s.lookups.DeleteFoodTemplate(ctx, profileID, id))
}

func (s *settingsService) ListNirvanaTypes(ctx context.Context, profileID string) ([]models.NirvanaSessionType, error) {
	list, err := s.lookups.ListNirvanaTypes(ctx, profileID)
	return list, mapStoreError(err)
}

func (s *settingsService) CreateNirvanaType(ctx context.Context, t models.NirvanaSessionType) (models.NirvanaSessionType, error) {
	if err := s.validator.Validate(ctx, t); err != nil {
		return models.NirvanaSessionType{}, mapValidationError(err)
	}
	created, err := s.lookups.CreateNirvanaType(ctx, t)
	if err != nil {
		return models.NirvanaSessionType{}, mapStoreError(err)
	}
	return created, nil
}

func (s *settingsService) DeleteNirvanaType(ctx context.Context, profileID, id string) error {
	return mapStoreError(s.lookups.DeleteNirvanaType(ctx, profileID, id))
}
