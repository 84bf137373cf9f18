package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
)

type profileService struct {
	profiles  store.ProfileRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewProfileService(profiles store.ProfileRepository, validator validators.Validator, logger *logger.Logger) ProfileService {
	return &profileService{
		profiles:  profiles,
		validator: validator,
		logger:    logger,
	}
}

func (p *profileService) Get(ctx context.Context, subjectID string) (*models.Profile, error) {
	if subjectID == "" {
		return nil, ErrNoSubject
	}

	profile, err := p.profiles.GetBySubject(ctx, subjectID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "profileService.Get").Msg("error getting profile by subject")
		return nil, mapStoreError(err)
	}
	return profile, nil
}

func (p *profileService) Create(ctx context.Context, subjectID string) (models.Profile, error) {
	if subjectID == "" {
		return models.Profile{}, ErrNoSubject
	}

	profile, err := p.profiles.Create(ctx, models.NewDefaultProfile(subjectID))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "profileService.Create").Msg("error creating profile")
		return models.Profile{}, mapStoreError(err)
	}
	return profile, nil
}

func (p *profileService) GetOrCreate(ctx context.Context, subjectID string) (models.Profile, error) {
	if subjectID == "" {
		return models.Profile{}, ErrNoSubject
	}

	profile, created, err := p.profiles.GetOrCreate(ctx, models.NewDefaultProfile(subjectID))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "profileService.GetOrCreate").Msg("error loading profile")
		return models.Profile{}, mapStoreError(err)
	}
	if created {
		logger.FromContext(ctx).Info().Str("profile_id", profile.ID).Msg("created default profile")
	}
	return profile, nil
}

func (p *profileService) GetByID(ctx context.Context, profileID string) (models.Profile, error) {
	profile, err := p.profiles.GetByID(ctx, profileID)
	if err != nil {
		return models.Profile{}, mapStoreError(err)
	}
	return profile, nil
}

func (p *profileService) Update(ctx context.Context, profileID string, update models.ProfileUpdate) (models.Profile, error) {
	if update.IsEmpty() {
		return models.Profile{}, ErrNothingToUpdate
	}
	if err := p.validator.Validate(ctx, update); err != nil {
		return models.Profile{}, mapValidationError(err)
	}

	profile, err := p.profiles.Update(ctx, profileID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "profileService.Update").Msg("error updating profile")
		return models.Profile{}, mapStoreError(err)
	}
	return profile, nil
}

// CalculateBMR applies the Mifflin-St Jeor equation and rounds to whole kcal.
func CalculateBMR(in models.BMRInput) (int, error) {
	if in.WeightKg <= 0 || in.HeightCm <= 0 || in.Age <= 0 {
		return 0, fmt.Errorf("%w: weight, height and age must be positive", ErrInvalidDataProvided)
	}

	base := 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.Age)
	switch strings.ToLower(strings.TrimSpace(in.Gender)) {
	case "male", "m":
		base += 5
	case "female", "f":
		base -= 161
	default:
		return 0, fmt.Errorf("%w: %w: %q", ErrInvalidDataProvided, ErrUnknownGender, in.Gender)
	}

	return int(math.Round(base)), nil
}
