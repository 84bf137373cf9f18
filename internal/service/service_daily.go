package service

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
	"golang.org/x/sync/errgroup"
)

type dailyService struct {
	daily      store.DailyRepository
	injections store.InjectionRepository
	validator  validators.Validator

	logger *logger.Logger
}

func NewDailyService(daily store.DailyRepository, injections store.InjectionRepository, validator validators.Validator, logger *logger.Logger) DailyService {
	return &dailyService{
		daily:      daily,
		injections: injections,
		validator:  validator,
		logger:     logger,
	}
}

func (d *dailyService) GetEntry(ctx context.Context, profileID, date string) (*models.DailyEntry, error) {
	if err := validators.ValidateDate(date); err != nil {
		return nil, mapValidationError(err)
	}

	entry, err := d.daily.GetEntry(ctx, profileID, date)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return entry, nil
}

func (d *dailyService) GetDay(ctx context.Context, profileID, date string) (models.Day, error) {
	if err := validators.ValidateDate(date); err != nil {
		return models.Day{}, mapValidationError(err)
	}

	day := models.Day{Date: date}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		day.Entry, err = d.daily.GetEntry(gctx, profileID, date)
		return err
	})
	g.Go(func() (err error) {
		day.Calories, err = d.daily.ListCalories(gctx, profileID, date)
		return err
	})
	g.Go(func() (err error) {
		day.Exercises, err = d.daily.ListExercises(gctx, profileID, date)
		return err
	})
	g.Go(func() (err error) {
		day.Injections, err = d.injections.ListByDate(gctx, profileID, date)
		return err
	})
	g.Go(func() (err error) {
		day.MITs, err = d.daily.ListMITs(gctx, profileID, date)
		return err
	})
	g.Go(func() (err error) {
		day.Nirvana, err = d.daily.ListNirvanaSessions(gctx, profileID, date)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "dailyService.GetDay").Str("date", date).Msg("error loading day")
		return models.Day{}, mapStoreError(err)
	}
	return day, nil
}

func (d *dailyService) UpsertEntry(ctx context.Context, profileID, date string, update models.DailyEntryUpdate) (models.DailyEntry, error) {
	if err := validators.ValidateDate(date); err != nil {
		return models.DailyEntry{}, mapValidationError(err)
	}
	if err := d.validator.Validate(ctx, update); err != nil {
		return models.DailyEntry{}, mapValidationError(err)
	}

	entry, err := d.daily.UpsertEntry(ctx, profileID, date, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "dailyService.UpsertEntry").Str("date", date).Msg("error saving daily entry")
		return models.DailyEntry{}, mapStoreError(err)
	}
	return entry, nil
}

func (d *dailyService) ListRange(ctx context.Context, profileID, from, to string) ([]models.DailyEntry, error) {
	if err := validators.ValidateDateRange(from, to); err != nil {
		return nil, mapValidationError(err)
	}

	entries, err := d.daily.ListRange(ctx, profileID, from, to)
	return entries, mapStoreError(err)
}

func (d *dailyService) Summary(ctx context.Context, profileID, date string, bmr int) (models.DaySummary, error) {
	day, err := d.GetDay(ctx, profileID, date)
	if err != nil {
		return models.DaySummary{}, err
	}
	return SummarizeDay(day, bmr), nil
}

// SummarizeDay derives the energy balance of day. Net is intake minus
// exercise minus bmr.
func SummarizeDay(day models.Day, bmr int) models.DaySummary {
	s := models.DaySummary{Date: day.Date, BMR: bmr, MITsTotal: len(day.MITs)}
	for _, c := range day.Calories {
		s.CaloriesIn += c.Calories
		s.Protein += c.Protein
		s.Carbs += c.Carbs
		s.Fat += c.Fat
	}
	for _, e := range day.Exercises {
		s.CaloriesBurned += e.CaloriesBurned
	}
	for _, m := range day.MITs {
		if m.Completed {
			s.MITsCompleted++
		}
	}
	s.Net = s.CaloriesIn - s.CaloriesBurned - bmr
	return s
}

// ── Calories ───────────────────────────────────────────────────────────────

func (d *dailyService) ListCalories(ctx context.Context, profileID, date string) ([]models.CalorieEntry, error) {
	if err := validators.ValidateDate(date); err != nil {
		return nil, mapValidationError(err)
	}
	list, err := d.daily.ListCalories(ctx, profileID, date)
	return list, mapStoreError(err)
}

func (d *dailyService) AddCalorie(ctx context.Context, entry models.CalorieEntry) (models.CalorieEntry, error) {
	if err := d.validateChild(ctx, entry.Date, entry); err != nil {
		return models.CalorieEntry{}, err
	}
	created, err := d.daily.AddCalorie(ctx, entry)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "dailyService.AddCalorie").Msg("error adding calorie entry")
		return models.CalorieEntry{}, mapStoreError(err)
	}
	return created, nil
}

func (d *dailyService) DeleteCalorie(ctx context.Context, profileID, id string) error {
	return mapStoreError(d.daily.DeleteCalorie(ctx, profileID, id))
}

// ── Exercises ──────────────────────────────────────────────────────────────

func (d *dailyService) ListExercises(ctx context.Context, profileID, date string) ([]models.ExerciseEntry, error) {
	if err := validators.ValidateDate(date); err != nil {
		return nil, mapValidationError(err)
	}
	list, err := d.daily.ListExercises(ctx, profileID, date)
	return list, mapStoreError(err)
}

func (d *dailyService) AddExercise(ctx context.Context, entry models.ExerciseEntry) (models.ExerciseEntry, error) {
	if err := d.validateChild(ctx, entry.Date, entry); err != nil {
		return models.ExerciseEntry{}, err
	}
	created, err := d.daily.AddExercise(ctx, entry)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "dailyService.AddExercise").Msg("error adding exercise entry")
		return models.ExerciseEntry{}, mapStoreError(err)
	}
	return created, nil
}

func (d *dailyService) DeleteExercise(ctx context.Context, profileID, id string) error {
	return mapStoreError(d.daily.DeleteExercise(ctx, profileID, id))
}

// ── MITs ───────────────────────────────────────────────────────────────────

func (d *dailyService) ListMITs(ctx context.Context, profileID, date string) ([]models.MIT, error) {
	if err := validators.ValidateDate(date); err != nil {
		return nil, mapValidationError(err)
	}
	list, err := d.daily.ListMITs(ctx, profileID, date)
	return list, mapStoreError(err)
}

func (d *dailyService) AddMIT(ctx context.Context, mit models.MIT) (models.MIT, error) {
	if err := d.validateChild(ctx, mit.Date, mit); err != nil {
		return models.MIT{}, err
	}
	created, err := d.daily.AddMIT(ctx, mit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "dailyService.AddMIT").Msg("error adding MIT")
		return models.MIT{}, mapStoreError(err)
	}
	return created, nil
}

func (d *dailyService) ToggleMIT(ctx context.Context, profileID, id string) (models.MIT, error) {
	mit, err := d.daily.ToggleMIT(ctx, profileID, id)
	if err != nil {
		return models.MIT{}, mapStoreError(err)
	}
	return mit, nil
}

func (d *dailyService) DeleteMIT(ctx context.Context, profileID, id string) error {
	return mapStoreError(d.daily.DeleteMIT(ctx, profileID, id))
}

// ── Nirvana ────────────────────────────────────────────────────────────────

func (d *dailyService) ListNirvanaSessions(ctx context.Context, profileID, date string) ([]models.NirvanaSession, error) {
	if err := validators.ValidateDate(date); err != nil {
		return nil, mapValidationError(err)
	}
	list, err := d.daily.ListNirvanaSessions(ctx, profileID, date)
	return list, mapStoreError(err)
}

func (d *dailyService) AddNirvanaSession(ctx context.Context, session models.NirvanaSession) (models.NirvanaSession, error) {
	if err := d.validateChild(ctx, session.Date, session); err != nil {
		return models.NirvanaSession{}, err
	}
	created, err := d.daily.AddNirvanaSession(ctx, session)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "dailyService.AddNirvanaSession").Msg("error adding nirvana session")
		return models.NirvanaSession{}, mapStoreError(err)
	}
	return created, nil
}

func (d *dailyService) DeleteNirvanaSession(ctx context.Context, profileID, id string) error {
	return mapStoreError(d.daily.DeleteNirvanaSession(ctx, profileID, id))
}

func (d *dailyService) validateChild(ctx context.Context, date string, child any) error {
	if err := validators.ValidateDate(date); err != nil {
		return mapValidationError(err)
	}
	return mapValidationError(d.validator.Validate(ctx, child))
}
