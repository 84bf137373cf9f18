package store

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProfileRepository persists profiles keyed by the external auth subject.
type ProfileRepository interface {
	// GetBySubject returns nil, nil when the subject has no profile.
	GetBySubject(ctx context.Context, subjectID string) (*models.Profile, error)
	GetByID(ctx context.Context, profileID string) (models.Profile, error)
	Create(ctx context.Context, profile models.Profile) (models.Profile, error)
	// GetOrCreate inserts profile unless a row for its subject exists and
	// returns the stored row. created reports whether this call inserted it.
	GetOrCreate(ctx context.Context, profile models.Profile) (stored models.Profile, created bool, err error)
	Update(ctx context.Context, profileID string, update models.ProfileUpdate) (models.Profile, error)
}

// DailyRepository persists daily entries and their child collections.
type DailyRepository interface {
	// GetEntry returns nil, nil when no entry exists for the date.
	GetEntry(ctx context.Context, profileID, date string) (*models.DailyEntry, error)
	UpsertEntry(ctx context.Context, profileID, date string, update models.DailyEntryUpdate) (models.DailyEntry, error)
	ListRange(ctx context.Context, profileID, from, to string) ([]models.DailyEntry, error)

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

// InjectionRepository persists injection log entries.
type InjectionRepository interface {
	ListByDate(ctx context.Context, profileID, date string) ([]models.InjectionEntry, error)
	ListRange(ctx context.Context, profileID, from, to string) ([]models.InjectionEntry, error)
	Create(ctx context.Context, entry models.InjectionEntry) (models.InjectionEntry, error)
	Update(ctx context.Context, profileID, id string, update models.InjectionUpdate) (models.InjectionEntry, error)
	Delete(ctx context.Context, profileID, id string) error
}

// WeeklyRepository persists weekly entries keyed by (profile, week start).
type WeeklyRepository interface {
	// Get returns nil, nil when no entry exists for the week.
	Get(ctx context.Context, profileID, weekStart string) (*models.WeeklyEntry, error)
	Upsert(ctx context.Context, profileID, weekStart string, update models.WeeklyEntryUpdate) (models.WeeklyEntry, error)
	ToggleObjective(ctx context.Context, profileID, weekStart, objectiveID string) (models.WeeklyEntry, error)
}

// SubscriptionRepository persists subscriptions and their categories.
type SubscriptionRepository interface {
	List(ctx context.Context, profileID string) ([]models.Subscription, error)
	ListByCategory(ctx context.Context, profileID, categoryID string) ([]models.Subscription, error)
	Create(ctx context.Context, sub models.Subscription) (models.Subscription, error)
	Update(ctx context.Context, profileID, id string, update models.SubscriptionUpdate) (models.Subscription, error)
	Delete(ctx context.Context, profileID, id string) error

	ListCategories(ctx context.Context, profileID string) ([]models.SubscriptionCategory, error)
	CreateCategory(ctx context.Context, category models.SubscriptionCategory) (models.SubscriptionCategory, error)
	UpdateCategory(ctx context.Context, category models.SubscriptionCategory) (models.SubscriptionCategory, error)
	// DeleteCategory removes the category and its id from every subscription.
	DeleteCategory(ctx context.Context, profileID, id string) error
}

// ImageRepository persists Winners Bible image metadata.
type ImageRepository interface {
	List(ctx context.Context, profileID string) ([]models.WinnersBibleImage, error)
	// Create inserts img with the next display order of the profile.
	Create(ctx context.Context, img models.WinnersBibleImage) (models.WinnersBibleImage, error)
	// Delete removes the row and returns it so the blob can be deleted.
	Delete(ctx context.Context, profileID, id string) (models.WinnersBibleImage, error)
	// Reorder assigns each id its index as display order in one statement.
	Reorder(ctx context.Context, profileID string, ids []string) error
}

// LookupRepository persists the autocompletion lookup lists.
type LookupRepository interface {
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
