package state

import (
	"context"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/querykey"
	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/models"
)

// Daily derives the day aggregate, its child collections and the energy
// balance of a date.
//
// The aggregate lives at Daily.ByDate(date) and every child list at
// Daily.Sub(date, sub), so invalidating the date covers both.
type Daily struct {
	svc   service.DailyService
	cache *cache.Cache
	now   func() time.Time
}

func NewDaily(svc service.DailyService, c *cache.Cache) *Daily {
	return &Daily{svc: svc, cache: c, now: time.Now}
}

func (a *Daily) Day(ctx context.Context, profileID, date string) View[models.Day] {
	return read(ctx, a.cache.Scope(profileID), querykey.Daily.ByDate(date),
		func(ctx context.Context) (models.Day, error) {
			return a.svc.GetDay(ctx, profileID, date)
		})
}

// Today is the day aggregate of the current local date.
func (a *Daily) Today(ctx context.Context, profileID string) View[models.Day] {
	return a.Day(ctx, profileID, a.now().Format(models.DateLayout))
}

func (a *Daily) Range(ctx context.Context, profileID, from, to string) View[[]models.DailyEntry] {
	return read(ctx, a.cache.Scope(profileID), querykey.Daily.Range(from, to),
		func(ctx context.Context) ([]models.DailyEntry, error) {
			return a.svc.ListRange(ctx, profileID, from, to)
		})
}

// Summary derives the energy balance from the cached day aggregate.
func (a *Daily) Summary(ctx context.Context, profileID, date string, bmr int) View[models.DaySummary] {
	day := a.Day(ctx, profileID, date)
	if day.Error != nil {
		return View[models.DaySummary]{Loading: day.Loading, Error: day.Error}
	}
	return View[models.DaySummary]{Data: service.SummarizeDay(day.Data, bmr)}
}

func (a *Daily) Calories(ctx context.Context, profileID, date string) View[[]models.CalorieEntry] {
	return read(ctx, a.cache.Scope(profileID), querykey.Daily.Sub(date, querykey.SubCalories),
		func(ctx context.Context) ([]models.CalorieEntry, error) {
			return a.svc.ListCalories(ctx, profileID, date)
		})
}

func (a *Daily) Exercises(ctx context.Context, profileID, date string) View[[]models.ExerciseEntry] {
	return read(ctx, a.cache.Scope(profileID), querykey.Daily.Sub(date, querykey.SubExercise),
		func(ctx context.Context) ([]models.ExerciseEntry, error) {
			return a.svc.ListExercises(ctx, profileID, date)
		})
}

func (a *Daily) MITs(ctx context.Context, profileID, date string) View[[]models.MIT] {
	return read(ctx, a.cache.Scope(profileID), querykey.Daily.Sub(date, querykey.SubMITs),
		func(ctx context.Context) ([]models.MIT, error) {
			return a.svc.ListMITs(ctx, profileID, date)
		})
}

func (a *Daily) NirvanaSessions(ctx context.Context, profileID, date string) View[[]models.NirvanaSession] {
	return read(ctx, a.cache.Scope(profileID), querykey.Daily.Sub(date, querykey.SubNirvana),
		func(ctx context.Context) ([]models.NirvanaSession, error) {
			return a.svc.ListNirvanaSessions(ctx, profileID, date)
		})
}

// UpsertEntry is optimistic: the entry of the cached day is created or
// patched locally, then the upsert runs.
func (a *Daily) UpsertEntry(ctx context.Context, profileID, date string, upd models.DailyEntryUpdate) (models.DailyEntry, error) {
	return Run(ctx, a.cache.Scope(profileID), Mutation[models.DailyEntry]{
		Name:     "daily.upsertEntry",
		Strategy: Optimistic,
		Lock:     querykey.Daily.ByDate(date),
		Affects:  []querykey.Key{querykey.Daily.ByDate(date), querykey.Daily.Ranges()},
		Apply: func(s *cache.Scope) {
			cache.Update(s, querykey.Daily.ByDate(date), func(day models.Day) models.Day {
				entry := models.DailyEntry{ProfileID: profileID, Date: date}
				if day.Entry != nil {
					entry = *day.Entry
				}
				entry = upd.Apply(entry)
				day.Entry = &entry
				return day
			})
			cache.UpdateAll(s, querykey.Daily.Ranges(), func(_ querykey.Key, list []models.DailyEntry) []models.DailyEntry {
				return replaceWhere(list, func(e models.DailyEntry) bool { return e.Date == date }, upd.Apply)
			})
		},
		Remote: func(ctx context.Context) (models.DailyEntry, error) {
			return a.svc.UpsertEntry(ctx, profileID, date, upd)
		},
	})
}

// ── Child collections ──────────────────────────────────────────────────────
// Additions are direct and appended to both the child list and the day
// aggregate. Deletions and toggles are optimistic.

func (a *Daily) AddCalorie(ctx context.Context, profileID, date string, entry models.CalorieEntry) (models.CalorieEntry, error) {
	entry.ProfileID, entry.Date = profileID, date
	return Run(ctx, a.cache.Scope(profileID), Mutation[models.CalorieEntry]{
		Name:     "daily.addCalorie",
		Strategy: Direct,
		Lock:     querykey.Daily.ByDate(date),
		Remote: func(ctx context.Context) (models.CalorieEntry, error) {
			return a.svc.AddCalorie(ctx, entry)
		},
		Splice: func(s *cache.Scope, created models.CalorieEntry) {
			cache.Update(s, querykey.Daily.Sub(date, querykey.SubCalories), func(list []models.CalorieEntry) []models.CalorieEntry {
				return appendCopy(list, created)
			})
			cache.Update(s, querykey.Daily.ByDate(date), func(day models.Day) models.Day {
				day.Calories = appendCopy(day.Calories, created)
				return day
			})
		},
	})
}

func (a *Daily) DeleteCalorie(ctx context.Context, profileID, date, id string) error {
	match := func(e models.CalorieEntry) bool { return e.ID == id }
	return a.deleteChild(ctx, profileID, date, "daily.deleteCalorie",
		func(s *cache.Scope) {
			cache.Update(s, querykey.Daily.Sub(date, querykey.SubCalories), func(list []models.CalorieEntry) []models.CalorieEntry {
				return removeWhere(list, match)
			})
			cache.Update(s, querykey.Daily.ByDate(date), func(day models.Day) models.Day {
				day.Calories = removeWhere(day.Calories, match)
				return day
			})
		},
		func(ctx context.Context) error { return a.svc.DeleteCalorie(ctx, profileID, id) })
}

func (a *Daily) AddExercise(ctx context.Context, profileID, date string, entry models.ExerciseEntry) (models.ExerciseEntry, error) {
	entry.ProfileID, entry.Date = profileID, date
	return Run(ctx, a.cache.Scope(profileID), Mutation[models.ExerciseEntry]{
		Name:     "daily.addExercise",
		Strategy: Direct,
		Lock:     querykey.Daily.ByDate(date),
		Remote: func(ctx context.Context) (models.ExerciseEntry, error) {
			return a.svc.AddExercise(ctx, entry)
		},
		Splice: func(s *cache.Scope, created models.ExerciseEntry) {
			cache.Update(s, querykey.Daily.Sub(date, querykey.SubExercise), func(list []models.ExerciseEntry) []models.ExerciseEntry {
				return appendCopy(list, created)
			})
			cache.Update(s, querykey.Daily.ByDate(date), func(day models.Day) models.Day {
				day.Exercises = appendCopy(day.Exercises, created)
				return day
			})
		},
	})
}

func (a *Daily) DeleteExercise(ctx context.Context, profileID, date, id string) error {
	match := func(e models.ExerciseEntry) bool { return e.ID == id }
	return a.deleteChild(ctx, profileID, date, "daily.deleteExercise",
		func(s *cache.Scope) {
			cache.Update(s, querykey.Daily.Sub(date, querykey.SubExercise), func(list []models.ExerciseEntry) []models.ExerciseEntry {
				return removeWhere(list, match)
			})
			cache.Update(s, querykey.Daily.ByDate(date), func(day models.Day) models.Day {
				day.Exercises = removeWhere(day.Exercises, match)
				return day
			})
		},
		func(ctx context.Context) error { return a.svc.DeleteExercise(ctx, profileID, id) })
}

func (a *Daily) AddMIT(ctx context.Context, profileID, date string, mit models.MIT) (models.MIT, error) {
	mit.ProfileID, mit.Date = profileID, date
	return Run(ctx, a.cache.Scope(profileID), Mutation[models.MIT]{
		Name:     "daily.addMIT",
		Strategy: Direct,
		Lock:     querykey.Daily.ByDate(date),
		Remote: func(ctx context.Context) (models.MIT, error) {
			return a.svc.AddMIT(ctx, mit)
		},
		Splice: func(s *cache.Scope, created models.MIT) {
			cache.Update(s, querykey.Daily.Sub(date, querykey.SubMITs), func(list []models.MIT) []models.MIT {
				return appendCopy(list, created)
			})
			cache.Update(s, querykey.Daily.ByDate(date), func(day models.Day) models.Day {
				day.MITs = appendCopy(day.MITs, created)
				return day
			})
		},
	})
}

func (a *Daily) ToggleMIT(ctx context.Context, profileID, date, id string) (models.MIT, error) {
	match := func(m models.MIT) bool { return m.ID == id }
	flip := func(m models.MIT) models.MIT {
		m.Completed = !m.Completed
		return m
	}
	return Run(ctx, a.cache.Scope(profileID), Mutation[models.MIT]{
		Name:     "daily.toggleMIT",
		Strategy: Optimistic,
		Lock:     querykey.Daily.ByDate(date),
		Affects:  []querykey.Key{querykey.Daily.ByDate(date)},
		Apply: func(s *cache.Scope) {
			cache.Update(s, querykey.Daily.Sub(date, querykey.SubMITs), func(list []models.MIT) []models.MIT {
				return replaceWhere(list, match, flip)
			})
			cache.Update(s, querykey.Daily.ByDate(date), func(day models.Day) models.Day {
				day.MITs = replaceWhere(day.MITs, match, flip)
				return day
			})
		},
		Remote: func(ctx context.Context) (models.MIT, error) {
			return a.svc.ToggleMIT(ctx, profileID, id)
		},
	})
}

func (a *Daily) DeleteMIT(ctx context.Context, profileID, date, id string) error {
	match := func(m models.MIT) bool { return m.ID == id }
	return a.deleteChild(ctx, profileID, date, "daily.deleteMIT",
		func(s *cache.Scope) {
			cache.Update(s, querykey.Daily.Sub(date, querykey.SubMITs), func(list []models.MIT) []models.MIT {
				return removeWhere(list, match)
			})
			cache.Update(s, querykey.Daily.ByDate(date), func(day models.Day) models.Day {
				day.MITs = removeWhere(day.MITs, match)
				return day
			})
		},
		func(ctx context.Context) error { return a.svc.DeleteMIT(ctx, profileID, id) })
}

func (a *Daily) AddNirvanaSession(ctx context.Context, profileID, date string, session models.NirvanaSession) (models.NirvanaSession, error) {
	session.ProfileID, session.Date = profileID, date
	return Run(ctx, a.cache.Scope(profileID), Mutation[models.NirvanaSession]{
		Name:     "daily.addNirvanaSession",
		Strategy: Direct,
		Lock:     querykey.Daily.ByDate(date),
		Remote: func(ctx context.Context) (models.NirvanaSession, error) {
			return a.svc.AddNirvanaSession(ctx, session)
		},
		Splice: func(s *cache.Scope, created models.NirvanaSession) {
			cache.Update(s, querykey.Daily.Sub(date, querykey.SubNirvana), func(list []models.NirvanaSession) []models.NirvanaSession {
				return appendCopy(list, created)
			})
			cache.Update(s, querykey.Daily.ByDate(date), func(day models.Day) models.Day {
				day.Nirvana = appendCopy(day.Nirvana, created)
				return day
			})
		},
	})
}

func (a *Daily) DeleteNirvanaSession(ctx context.Context, profileID, date, id string) error {
	match := func(n models.NirvanaSession) bool { return n.ID == id }
	return a.deleteChild(ctx, profileID, date, "daily.deleteNirvanaSession",
		func(s *cache.Scope) {
			cache.Update(s, querykey.Daily.Sub(date, querykey.SubNirvana), func(list []models.NirvanaSession) []models.NirvanaSession {
				return removeWhere(list, match)
			})
			cache.Update(s, querykey.Daily.ByDate(date), func(day models.Day) models.Day {
				day.Nirvana = removeWhere(day.Nirvana, match)
				return day
			})
		},
		func(ctx context.Context) error { return a.svc.DeleteNirvanaSession(ctx, profileID, id) })
}

func (a *Daily) deleteChild(ctx context.Context, profileID, date, name string, apply func(*cache.Scope), remote func(context.Context) error) error {
	_, err := Run(ctx, a.cache.Scope(profileID), Mutation[none]{
		Name:     name,
		Strategy: Optimistic,
		Lock:     querykey.Daily.ByDate(date),
		Affects:  []querykey.Key{querykey.Daily.ByDate(date)},
		Apply:    apply,
		Remote:   noResult(remote),
	})
	return err
}
