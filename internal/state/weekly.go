package state

import (
	"context"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/querykey"
	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/models"
)

// Weekly derives the weekly entry. Week starts are normalized to Monday
// before they are used as keys.
type Weekly struct {
	svc   service.WeeklyService
	cache *cache.Cache
	now   func() time.Time
}

func NewWeekly(svc service.WeeklyService, c *cache.Cache) *Weekly {
	return &Weekly{svc: svc, cache: c, now: time.Now}
}

// Get returns a nil entry when the week has none yet.
func (a *Weekly) Get(ctx context.Context, profileID, weekStart string) View[*models.WeeklyEntry] {
	ws, err := service.NormalizeWeekStart(weekStart)
	if err != nil {
		return View[*models.WeeklyEntry]{Error: err}
	}
	return read(ctx, a.cache.Scope(profileID), querykey.Weekly.ByWeek(ws),
		func(ctx context.Context) (*models.WeeklyEntry, error) {
			return a.svc.Get(ctx, profileID, ws)
		})
}

// Current returns the entry of the week containing today.
func (a *Weekly) Current(ctx context.Context, profileID string) View[*models.WeeklyEntry] {
	return a.Get(ctx, profileID, service.CurrentWeekStart(a.now()))
}

func (a *Weekly) Upsert(ctx context.Context, profileID, weekStart string, upd models.WeeklyEntryUpdate) (models.WeeklyEntry, error) {
	ws, err := service.NormalizeWeekStart(weekStart)
	if err != nil {
		return models.WeeklyEntry{}, err
	}
	key := querykey.Weekly.ByWeek(ws)

	return Run(ctx, a.cache.Scope(profileID), Mutation[models.WeeklyEntry]{
		Name:     "weekly.upsert",
		Strategy: Optimistic,
		Lock:     key,
		Affects:  []querykey.Key{key},
		Apply: func(s *cache.Scope) {
			cache.Update(s, key, func(e *models.WeeklyEntry) *models.WeeklyEntry {
				next := models.WeeklyEntry{ProfileID: profileID, WeekStart: ws, Objectives: models.Objectives{}}
				if e != nil {
					next = *e
				}
				next = upd.Apply(next)
				return &next
			})
		},
		Remote: func(ctx context.Context) (models.WeeklyEntry, error) {
			return a.svc.Upsert(ctx, profileID, ws, upd)
		},
	})
}

// ToggleObjective flips the completed flag of one objective and leaves every
// other field of the entry unchanged.
func (a *Weekly) ToggleObjective(ctx context.Context, profileID, weekStart, objectiveID string) (models.WeeklyEntry, error) {
	ws, err := service.NormalizeWeekStart(weekStart)
	if err != nil {
		return models.WeeklyEntry{}, err
	}
	key := querykey.Weekly.ByWeek(ws)

	return Run(ctx, a.cache.Scope(profileID), Mutation[models.WeeklyEntry]{
		Name:     "weekly.toggleObjective",
		Strategy: Optimistic,
		Lock:     key,
		Affects:  []querykey.Key{key},
		Apply: func(s *cache.Scope) {
			cache.Update(s, key, func(e *models.WeeklyEntry) *models.WeeklyEntry {
				if e == nil {
					return nil
				}
				next := *e
				next.Objectives, _ = e.Objectives.Toggle(objectiveID)
				return &next
			})
		},
		Remote: func(ctx context.Context) (models.WeeklyEntry, error) {
			return a.svc.ToggleObjective(ctx, profileID, ws, objectiveID)
		},
	})
}
