package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
)

type weeklyService struct {
	weekly    store.WeeklyRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewWeeklyService(weekly store.WeeklyRepository, validator validators.Validator, logger *logger.Logger) WeeklyService {
	return &weeklyService{
		weekly:    weekly,
		validator: validator,
		logger:    logger,
	}
}

func (w *weeklyService) Get(ctx context.Context, profileID, weekStart string) (*models.WeeklyEntry, error) {
	ws, err := NormalizeWeekStart(weekStart)
	if err != nil {
		return nil, err
	}

	entry, err := w.weekly.Get(ctx, profileID, ws)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return entry, nil
}

func (w *weeklyService) Upsert(ctx context.Context, profileID, weekStart string, update models.WeeklyEntryUpdate) (models.WeeklyEntry, error) {
	ws, err := NormalizeWeekStart(weekStart)
	if err != nil {
		return models.WeeklyEntry{}, err
	}
	if err = w.validator.Validate(ctx, update); err != nil {
		return models.WeeklyEntry{}, mapValidationError(err)
	}

	entry, err := w.weekly.Upsert(ctx, profileID, ws, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "weeklyService.Upsert").Str("week_start", ws).Msg("error saving weekly entry")
		return models.WeeklyEntry{}, mapStoreError(err)
	}
	return entry, nil
}

func (w *weeklyService) ToggleObjective(ctx context.Context, profileID, weekStart, objectiveID string) (models.WeeklyEntry, error) {
	ws, err := NormalizeWeekStart(weekStart)
	if err != nil {
		return models.WeeklyEntry{}, err
	}
	if objectiveID == "" {
		return models.WeeklyEntry{}, fmt.Errorf("%w: empty objective id", ErrInvalidDataProvided)
	}

	entry, err := w.weekly.ToggleObjective(ctx, profileID, ws, objectiveID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "weeklyService.ToggleObjective").
			Str("week_start", ws).Str("objective_id", objectiveID).Msg("error toggling objective")
		return models.WeeklyEntry{}, mapStoreError(err)
	}
	return entry, nil
}

// NormalizeWeekStart parses a calendar date and returns the Monday of its week.
func NormalizeWeekStart(date string) (string, error) {
	t, err := models.ParseDate(date)
	if err != nil {
		return "", fmt.Errorf("%w: %w: %w", ErrInvalidDataProvided, validators.ErrInvalidDate, err)
	}
	return models.WeekStart(t).Format(models.DateLayout), nil
}

// CurrentWeekStart returns the Monday of the week containing now.
func CurrentWeekStart(now time.Time) string {
	return models.WeekStart(now).Format(models.DateLayout)
}
