// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the entity services of the health tracker. Each
// service scopes every call by a subject or profile id, validates input,
// calls its repository and translates backend failures into the service
// errors declared in errors.go.
package service

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type ProfileService interface {
	// Get returns nil, nil when the subject has no profile yet.
	Get(ctx context.Context, subjectID string) (*models.Profile, error)
	Create(ctx context.Context, subjectID string) (models.Profile, error)
	// GetOrCreate returns the subject's profile, inserting the default one
	// when none exists. Concurrent first loads converge on a single row.
	GetOrCreate(ctx context.Context, subjectID string) (models.Profile, error)
	GetByID(ctx context.Context, profileID string) (models.Profile, error)
	Update(ctx context.Context, profileID string, update models.ProfileUpdate) (models.Profile, error)
}

type DailyService interface {
	GetEntry(ctx context.Context, profileID, date string) (*models.DailyEntry, error)
	// GetDay loads the entry and every child collection of the date concurrently.
	GetDay(ctx context.Context, profileID, date string) (models.Day, error)
	UpsertEntry(ctx context.Context, profileID, date string, update models.DailyEntryUpdate) (models.DailyEntry, error)
	ListRange(ctx context.Context, profileID, from, to string) ([]models.DailyEntry, error)
	Summary(ctx context.Context, profileID, date string, bmr int) (models.DaySummary, error)

	ListCalories(ctx context.Context, profileID, date string) ([]models.CalorieEntry, error)
	AddCalorie(ctx context.Context, entry models.CalorieEntry) (models.CalorieEntry, error)
	DeleteCalorie(ctx context.Context, profileID, id string) error

	ListExercises(ctx context.Context, profileID, date string) ([]models.ExerciseEntry, error)
	AddExercise(ctx context.Context, entry models.ExerciseEntry) (models.ExerciseEntry, error)
	DeleteExercise(ctx context.Context, profileID, id string) error

	ListMITs(ctx context.Context, profileID, date string) ([]models.MIT, error)
	AddMIT(ctx context.Context, mit models.MIT) (models.MIT, error)
	ToggleMIT(ctx context.Context, profileID, id string) (models.MIT, error)
	DeleteMIT(ctx context.Context, profileID, id string) error

	ListNirvanaSessions(ctx context.Context, profileID, date string) ([]models.NirvanaSession, error)
	AddNirvanaSession(ctx context.Context, session models.NirvanaSession) (models.NirvanaSession, error)
	DeleteNirvanaSession(ctx context.Context, profileID, id string) error
}

type InjectionService interface {
	ListByDate(ctx context.Context, profileID, date string) ([]models.InjectionEntry, error)
	ListRange(ctx context.Context, profileID, from, to string) ([]models.InjectionEntry, error)
	Create(ctx context.Context, entry models.InjectionEntry) (models.InjectionEntry, error)
	Update(ctx context.Context, profileID, id string, update models.InjectionUpdate) (models.InjectionEntry, error)
	Delete(ctx context.Context, profileID, id string) error
}

type WeeklyService interface {
	// Get returns nil, nil when the week has no entry.
	Get(ctx context.Context, profileID, weekStart string) (*models.WeeklyEntry, error)
	Upsert(ctx context.Context, profileID, weekStart string, update models.WeeklyEntryUpdate) (models.WeeklyEntry, error)
	ToggleObjective(ctx context.Context, profileID, weekStart, objectiveID string) (models.WeeklyEntry, error)
}

type SubscriptionService interface {
	List(ctx context.Context, profileID string) ([]models.Subscription, error)
	ListByCategory(ctx context.Context, profileID, categoryID string) ([]models.Subscription, error)
	Create(ctx context.Context, sub models.Subscription) (models.Subscription, error)
	Update(ctx context.Context, profileID, id string, update models.SubscriptionUpdate) (models.Subscription, error)
	Delete(ctx context.Context, profileID, id string) error
	Totals(ctx context.Context, profileID string) (models.SubscriptionTotals, error)

	ListCategories(ctx context.Context, profileID string) ([]models.SubscriptionCategory, error)
	CreateCategory(ctx context.Context, category models.SubscriptionCategory) (models.SubscriptionCategory, error)
	UpdateCategory(ctx context.Context, category models.SubscriptionCategory) (models.SubscriptionCategory, error)
	DeleteCategory(ctx context.Context, profileID, id string) error
}

type WinnersBibleService interface {
	// List returns the images in display order with their public URLs set.
	List(ctx context.Context, profileID string) ([]models.WinnersBibleImage, error)
	Upload(ctx context.Context, profileID string, upload models.ImageUpload) (models.WinnersBibleImage, error)
	Delete(ctx context.Context, profileID, id string) error
	Reorder(ctx context.Context, profileID string, ids []string) error
	PublicURL(storagePath string) string
}

type SettingsService interface {
	Get(ctx context.Context, profileID string) (models.Settings, error)
	// UpdateTrackerSettings merges patch onto the stored tracker settings.
	UpdateTrackerSettings(ctx context.Context, profileID string, patch models.JSONMap) (models.Settings, error)
	// UpdateMacroTargets merges patch onto the stored macro targets.
	UpdateMacroTargets(ctx context.Context, profileID string, patch models.JSONMap) (models.Settings, error)

	ListCompounds(ctx context.Context, profileID string) ([]models.Compound, error)
	CreateCompound(ctx context.Context, c models.Compound) (models.Compound, error)
	DeleteCompound(ctx context.Context, profileID, id string) error

	ListFoodTemplates(ctx context.Context, profileID string) ([]models.FoodTemplate, error)
	CreateFoodTemplate(ctx context.Context, f models.FoodTemplate) (models.FoodTemplate, error)
	DeleteFoodTemplate(ctx context.Context, profileID, id string) error

	ListNirvanaTypes(ctx context.Context, profileID string) ([]models.NirvanaSessionType, error)
	CreateNirvanaType(ctx context.Context, t models.NirvanaSessionType) (models.NirvanaSessionType, error)
	DeleteNirvanaType(ctx context.Context, profileID, id string) error
}

type AuthService interface {
	// ParseToken verifies a bearer token and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.AuthClaims, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// GetBuildInfo reports the version, date and commit the binary was built from.
	GetBuildInfo(ctx context.Context) models.VersionResponse
}
