package state

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/querykey"
	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/models"
)

// Injections derives the injection log. Entries also appear in the day
// aggregate, so every mutation touches Daily.ByDate of the entry date.
type Injections struct {
	svc   service.InjectionService
	cache *cache.Cache
}

func NewInjections(svc service.InjectionService, c *cache.Cache) *Injections {
	return &Injections{svc: svc, cache: c}
}

func (a *Injections) ByDate(ctx context.Context, profileID, date string) View[[]models.InjectionEntry] {
	return read(ctx, a.cache.Scope(profileID), querykey.Injections.ByDate(date),
		func(ctx context.Context) ([]models.InjectionEntry, error) {
			return a.svc.ListByDate(ctx, profileID, date)
		})
}

func (a *Injections) Range(ctx context.Context, profileID, from, to string) View[[]models.InjectionEntry] {
	return read(ctx, a.cache.Scope(profileID), querykey.Injections.Range(from, to),
		func(ctx context.Context) ([]models.InjectionEntry, error) {
			return a.svc.ListRange(ctx, profileID, from, to)
		})
}

// Create is direct. Range lists are invalidated rather than spliced since
// their order depends on the injection time.
func (a *Injections) Create(ctx context.Context, profileID string, entry models.InjectionEntry) (models.InjectionEntry, error) {
	entry.ProfileID = profileID
	return Run(ctx, a.cache.Scope(profileID), Mutation[models.InjectionEntry]{
		Name:     "injections.create",
		Strategy: Direct,
		Lock:     querykey.Injections.All(),
		Affects:  []querykey.Key{querykey.Injections.Ranges()},
		Remote: func(ctx context.Context) (models.InjectionEntry, error) {
			return a.svc.Create(ctx, entry)
		},
		Splice: func(s *cache.Scope, created models.InjectionEntry) {
			cache.Update(s, querykey.Injections.ByDate(created.Date), func(list []models.InjectionEntry) []models.InjectionEntry {
				return appendCopy(list, created)
			})
			cache.Update(s, querykey.Daily.ByDate(created.Date), func(day models.Day) models.Day {
				day.Injections = appendCopy(day.Injections, created)
				return day
			})
		},
	})
}

func (a *Injections) Update(ctx context.Context, profileID, id string, upd models.InjectionUpdate) (models.InjectionEntry, error) {
	match := func(e models.InjectionEntry) bool { return e.ID == id }
	return Run(ctx, a.cache.Scope(profileID), Mutation[models.InjectionEntry]{
		Name:     "injections.update",
		Strategy: Optimistic,
		Lock:     querykey.Injections.All(),
		Affects:  []querykey.Key{querykey.Injections.All(), querykey.Daily.All()},
		Apply: func(s *cache.Scope) {
			cache.UpdateAll(s, querykey.Injections.All(), func(_ querykey.Key, list []models.InjectionEntry) []models.InjectionEntry {
				return replaceWhere(list, match, upd.Apply)
			})
			cache.UpdateAll(s, querykey.Daily.All(), func(_ querykey.Key, day models.Day) models.Day {
				day.Injections = replaceWhere(day.Injections, match, upd.Apply)
				return day
			})
		},
		Remote: func(ctx context.Context) (models.InjectionEntry, error) {
			return a.svc.Update(ctx, profileID, id, upd)
		},
	})
}

func (a *Injections) Delete(ctx context.Context, profileID, id string) error {
	match := func(e models.InjectionEntry) bool { return e.ID == id }
	_, err := Run(ctx, a.cache.Scope(profileID), Mutation[none]{
		Name:     "injections.delete",
		Strategy: Optimistic,
		Lock:     querykey.Injections.All(),
		Affects:  []querykey.Key{querykey.Injections.All(), querykey.Daily.All()},
		Apply: func(s *cache.Scope) {
			cache.UpdateAll(s, querykey.Injections.All(), func(_ querykey.Key, list []models.InjectionEntry) []models.InjectionEntry {
				return removeWhere(list, match)
			})
			cache.UpdateAll(s, querykey.Daily.All(), func(_ querykey.Key, day models.Day) models.Day {
				day.Injections = removeWhere(day.Injections, match)
				return day
			})
		},
		Remote: noResult(func(ctx context.Context) error {
			return a.svc.Delete(ctx, profileID, id)
		}),
	})
	return err
}
