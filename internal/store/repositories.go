package store

import (
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
)

// Repositories aggregates every Postgres-backed repository.
type Repositories struct {
	Profiles      ProfileRepository
	Daily         DailyRepository
	Injections    InjectionRepository
	Weekly        WeeklyRepository
	Subscriptions SubscriptionRepository
	Images        ImageRepository
	Lookups       LookupRepository
}

// NewRepositories wires all repositories onto db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	ids := utils.NewUUIDGenerator()
	log.Debug().Str("func", "NewRepositories").Msg("creating repositories")

	return &Repositories{
		Profiles:      NewProfileRepository(db, ids),
		Daily:         NewDailyRepository(db, ids),
		Injections:    NewInjectionRepository(db, ids),
		Weekly:        NewWeeklyRepository(db, ids),
		Subscriptions: NewSubscriptionRepository(db, ids),
		Images:        NewImageRepository(db, ids),
		Lookups:       NewLookupRepository(db, ids),
	}
}
