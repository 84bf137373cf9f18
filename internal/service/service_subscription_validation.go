package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
)

// SubscriptionServiceWrapper defines middleware composition for SubscriptionService.
// Implementations wrap an existing SubscriptionService to add behavior such as
// logging or validating.
type SubscriptionServiceWrapper interface {
	Wrap(SubscriptionService) SubscriptionService // returns a decorated SubscriptionService applying additional behavior
}

// SubscriptionValidationService validates payloads before they reach the
// wrapped SubscriptionService.
type SubscriptionValidationService struct {
	inner     SubscriptionService
	validator validators.Validator
}

func NewSubscriptionValidationService(validator validators.Validator) SubscriptionServiceWrapper {
	return &SubscriptionValidationService{
		validator: validator,
	}
}

func (v *SubscriptionValidationService) Wrap(wrapped SubscriptionService) SubscriptionService {
	v.inner = wrapped
	return v
}

func (v *SubscriptionValidationService) List(ctx context.Context, profileID string) ([]models.Subscription, error) {
	return v.inner.List(ctx, profileID)
}

func (v *SubscriptionValidationService) ListByCategory(ctx context.Context, profileID, categoryID string) ([]models.Subscription, error) {
	if categoryID == "" {
		return nil, fmt.Errorf("%w: empty category id", ErrInvalidDataProvided)
	}
	return v.inner.ListByCategory(ctx, profileID, categoryID)
}

func (v *SubscriptionValidationService) Create(ctx context.Context, sub models.Subscription) (models.Subscription, error) {
	if err := v.validator.Validate(ctx, sub); err != nil {
		return models.Subscription{}, fmt.Errorf("error during subscription validation before saving: %w", mapValidationError(err))
	}
	return v.inner.Create(ctx, sub)
}

func (v *SubscriptionValidationService) Update(ctx context.Context, profileID, id string, update models.SubscriptionUpdate) (models.Subscription, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Subscription{}, fmt.Errorf("error during subscription validation before updating: %w", mapValidationError(err))
	}
	return v.inner.Update(ctx, profileID, id, update)
}

func (v *SubscriptionValidationService) Delete(ctx context.Context, profileID, id string) error {
	return v.inner.Delete(ctx, profileID, id)
}

func (v *SubscriptionValidationService) Totals(ctx context.Context, profileID string) (models.SubscriptionTotals, error) {
	return v.inner.Totals(ctx, profileID)
}

func (v *SubscriptionValidationService) ListCategories(ctx context.Context, profileID string) ([]models.SubscriptionCategory, error) {
	return v.inner.ListCategories(ctx, profileID)
}

func (v *SubscriptionValidationService) CreateCategory(ctx context.Context, category models.SubscriptionCategory) (models.SubscriptionCategory, error) {
	if err := v.validator.Validate(ctx, category); err != nil {
		return models.SubscriptionCategory{}, fmt.Errorf("error during category validation before saving: %w", mapValidationError(err))
	}
	return v.inner.CreateCategory(ctx, category)
}

func (v *SubscriptionValidationService) UpdateCategory(ctx context.Context, category models.SubscriptionCategory) (models.SubscriptionCategory, error) {
	if err := v.validator.Validate(ctx, category); err != nil {
		return models.SubscriptionCategory{}, fmt.Errorf("error during category validation before updating: %w", mapValidationError(err))
	}
	return v.inner.UpdateCategory(ctx, category)
}

func (v *SubscriptionValidationService) DeleteCategory(ctx context.Context, profileID, id string) error {
	return v.inner.DeleteCategory(ctx, profileID, id)
}
