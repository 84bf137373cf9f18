package service

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
)

type injectionService struct {
	injections store.InjectionRepository
	validator  validators.Validator

	logger *logger.Logger
}

func NewInjectionService(injections store.InjectionRepository, validator validators.Validator, logger *logger.Logger) InjectionService {
	return &injectionService{
		injections: injections,
		validator:  validator,
		logger:     logger,
	}
}

func (i *injectionService) ListByDate(ctx context.Context, profileID, date string) ([]models.InjectionEntry, error) {
	if err := validators.ValidateDate(date); err != nil {
		return nil, mapValidationError(err)
	}
	list, err := i.injections.ListByDate(ctx, profileID, date)
	return list, mapStoreError(err)
}

func (i *injectionService) ListRange(ctx context.Context, profileID, from, to string) ([]models.InjectionEntry, error) {
	if err := validators.ValidateDateRange(from, to); err != nil {
		return nil, mapValidationError(err)
	}
	list, err := i.injections.ListRange(ctx, profileID, from, to)
	return list, mapStoreError(err)
}

func (i *injectionService) Create(ctx context.Context, entry models.InjectionEntry) (models.InjectionEntry, error) {
	if err := validators.ValidateDate(entry.Date); err != nil {
		return models.InjectionEntry{}, mapValidationError(err)
	}
	if err := i.validator.Validate(ctx, entry); err != nil {
		return models.InjectionEntry{}, mapValidationError(err)
	}

	created, err := i.injections.Create(ctx, entry)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "injectionService.Create").Msg("error creating injection entry")
		return models.InjectionEntry{}, mapStoreError(err)
	}
	return created, nil
}

func (i *injectionService) Update(ctx context.Context, profileID, id string, update models.InjectionUpdate) (models.InjectionEntry, error) {
	if err := i.validator.Validate(ctx, update); err != nil {
		return models.InjectionEntry{}, mapValidationError(err)
	}

	updated, err := i.injections.Update(ctx, profileID, id, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "injectionService.Update").Str("id", id).Msg("error updating injection entry")
		return models.InjectionEntry{}, mapStoreError(err)
	}
	return updated, nil
}

func (i *injectionService) Delete(ctx context.Context, profileID, id string) error {
	return mapStoreError(i.injections.Delete(ctx, profileID, id))
}
