package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-health-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	dailyEntriesTable    = "daily_entries"
	calorieEntriesTable  = "calorie_entries"
	exerciseEntriesTable = "exercise_entries"
	mitsTable            = "mits"
	nirvanaTable         = "nirvana_sessions"
)

var (
	dailyColumns = []string{
		"id", "profile_id", dateColumn("date"), "weight", "deep_work_completed",
		"winners_bible_morning", "winners_bible_night", "created_at", "updated_at",
	}
	calorieColumns = []string{
		"id", "profile_id", dateColumn("date"), "description", "calories", "protein", "carbs", "fat", "created_at",
	}
	exerciseColumns = []string{
		"id", "profile_id", dateColumn("date"), "activity", "duration_minutes", "calories_burned", "created_at",
	}
	mitColumns = []string{
		"id", "profile_id", dateColumn("date"), "task", "completed", "display_order",
	}
	nirvanaColumns = []string{
		"id", "profile_id", dateColumn("date"), "session_type", "duration_minutes", "notes", "created_at",
	}
)

// dailyRepository is the Postgres-backed implementation of [DailyRepository].
type dailyRepository struct {
	*DB
	ids idGenerator
}

func NewDailyRepository(db *DB, ids idGenerator) DailyRepository {
	return &dailyRepository{DB: db, ids: ids}
}

func scanDailyEntry(r rowScanner) (models.DailyEntry, error) {
	var e models.DailyEntry
	err := r.Scan(&e.ID, &e.ProfileID, &e.Date, &e.Weight, &e.DeepWorkCompleted,
		&e.WinnersBibleMorning, &e.WinnersBibleNight, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func scanCalorie(r rowScanner) (models.CalorieEntry, error) {
	var c models.CalorieEntry
	err := r.Scan(&c.ID, &c.ProfileID, &c.Date, &c.Description, &c.Calories, &c.Protein, &c.Carbs, &c.Fat, &c.CreatedAt)
	return c, err
}

func scanExercise(r rowScanner) (models.ExerciseEntry, error) {
	var e models.ExerciseEntry
	err := r.Scan(&e.ID, &e.ProfileID, &e.Date, &e.Activity, &e.DurationMinutes, &e.CaloriesBurned, &e.CreatedAt)
	return e, err
}

func scanMIT(r rowScanner) (models.MIT, error) {
	var m models.MIT
	err := r.Scan(&m.ID, &m.ProfileID, &m.Date, &m.Task, &m.Completed, &m.DisplayOrder)
	return m, err
}

func scanNirvana(r rowScanner) (models.NirvanaSession, error) {
	var n models.NirvanaSession
	err := r.Scan(&n.ID, &n.ProfileID, &n.Date, &n.SessionType, &n.DurationMinutes, &n.Notes, &n.CreatedAt)
	return n, err
}

func byDate(profileID, date string) sq.Eq {
	return sq.Eq{"profile_id": profileID, "date": date}
}

func (r *dailyRepository) GetEntry(ctx context.Context, profileID, date string) (*models.DailyEntry, error) {
	return nullable(queryOne(ctx, r.DB, "dailyRepository.GetEntry",
		psql.Select(dailyColumns...).From(dailyEntriesTable).Where(byDate(profileID, date)),
		scanDailyEntry))
}

// UpsertEntry merges the provided fields onto the (profile, date) row in a
// single conditional insert. Fields absent from update keep their stored
// value, or the column default when the row is new.
func (r *dailyRepository) UpsertEntry(ctx context.Context, profileID, date string, update models.DailyEntryUpdate) (models.DailyEntry, error) {
	inserted := update.Apply(models.DailyEntry{})

	sets := []string{"updated_at = now()"}
	if update.Weight != nil {
		sets = append(sets, "weight = EXCLUDED.weight")
	}
	if update.DeepWorkCompleted != nil {
		sets = append(sets, "deep_work_completed = EXCLUDED.deep_work_completed")
	}
	if update.WinnersBibleMorning != nil {
		sets = append(sets, "winners_bible_morning = EXCLUDED.winners_bible_morning")
	}
	if update.WinnersBibleNight != nil {
		sets = append(sets, "winners_bible_night = EXCLUDED.winners_bible_night")
	}

	return queryOne(ctx, r.DB, "dailyRepository.UpsertEntry",
		psql.Insert(dailyEntriesTable).
			Columns("id", "profile_id", "date", "weight", "deep_work_completed", "winners_bible_morning", "winners_bible_night").
			Values(r.ids.Generate(), profileID, date, inserted.Weight, inserted.DeepWorkCompleted,
				inserted.WinnersBibleMorning, inserted.WinnersBibleNight).
			Suffix("ON CONFLICT (profile_id, date) DO UPDATE SET "+strings.Join(sets, ", ")+
				" RETURNING "+joinColumns(dailyColumns)),
		scanDailyEntry)
}

func (r *dailyRepository) ListRange(ctx context.Context, profileID, from, to string) ([]models.DailyEntry, error) {
	return queryMany(ctx, r.DB, "dailyRepository.ListRange",
		psql.Select(dailyColumns...).From(dailyEntriesTable).
			Where(sq.Eq{"profile_id": profileID}).
			Where(sq.GtOrEq{"date": from}).
			Where(sq.LtOrEq{"date": to}).
			OrderBy("date"),
		scanDailyEntry)
}

// ── Calories ────────────────────────────────────────────────────────────────

func (r *dailyRepository) ListCalories(ctx context.Context, profileID, date string) ([]models.CalorieEntry, error) {
	return queryMany(ctx, r.DB, "dailyRepository.ListCalories",
		psql.Select(calorieColumns...).From(calorieEntriesTable).Where(byDate(profileID, date)).OrderBy("created_at", "id"),
		scanCalorie)
}

func (r *dailyRepository) AddCalorie(ctx context.Context, e models.CalorieEntry) (models.CalorieEntry, error) {
	return queryOne(ctx, r.DB, "dailyRepository.AddCalorie",
		psql.Insert(calorieEntriesTable).
			Columns("id", "profile_id", "date", "description", "calories", "protein", "carbs", "fat").
			Values(r.ids.Generate(), e.ProfileID, e.Date, e.Description, e.Calories, e.Protein, e.Carbs, e.Fat).
			Suffix("RETURNING "+joinColumns(calorieColumns)),
		scanCalorie)
}

func (r *dailyRepository) DeleteCalorie(ctx context.Context, profileID, id string) error {
	return deleteOwned(ctx, r.DB, "dailyRepository.DeleteCalorie", calorieEntriesTable, profileID, id)
}

// ── Exercises ───────────────────────────────────────────────────────────────

func (r *dailyRepository) ListExercises(ctx context.Context, profileID, date string) ([]models.ExerciseEntry, error) {
	return queryMany(ctx, r.DB, "dailyRepository.ListExercises",
		psql.Select(exerciseColumns...).From(exerciseEntriesTable).Where(byDate(profileID, date)).OrderBy("created_at", "id"),
		scanExercise)
}

func (r *dailyRepository) AddExercise(ctx context.Context, e models.ExerciseEntry) (models.ExerciseEntry, error) {
	return queryOne(ctx, r.DB, "dailyRepository.AddExercise",
		psql.Insert(exerciseEntriesTable).
			Columns("id", "profile_id", "date", "activity", "duration_minutes", "calories_burned").
			Values(r.ids.Generate(), e.ProfileID, e.Date, e.Activity, e.DurationMinutes, e.CaloriesBurned).
			Suffix("RETURNING "+joinColumns(exerciseColumns)),
		scanExercise)
}

func (r *dailyRepository) DeleteExercise(ctx context.Context, profileID, id string) error {
	return deleteOwned(ctx, r.DB, "dailyRepository.DeleteExercise", exerciseEntriesTable, profileID, id)
}

// ── MITs ────────────────────────────────────────────────────────────────────

func (r *dailyRepository) ListMITs(ctx context.Context, profileID, date string) ([]models.MIT, error) {
	return queryMany(ctx, r.DB, "dailyRepository.ListMITs",
		psql.Select(mitColumns...).From(mitsTable).Where(byDate(profileID, date)).OrderBy("display_order", "id"),
		scanMIT)
}

// AddMIT appends the task after the last MIT of the day.
func (r *dailyRepository) AddMIT(ctx context.Context, m models.MIT) (models.MIT, error) {
	nextOrder := sq.Expr("COALESCE((SELECT MAX(display_order) + 1 FROM mits WHERE profile_id = ? AND date = ?), 0)",
		m.ProfileID, m.Date)

	return queryOne(ctx, r.DB, "dailyRepository.AddMIT",
		psql.Insert(mitsTable).
			Columns("id", "profile_id", "date", "task", "completed", "display_order").
			Values(r.ids.Generate(), m.ProfileID, m.Date, m.Task, m.Completed, nextOrder).
			Suffix("RETURNING "+joinColumns(mitColumns)),
		scanMIT)
}

func (r *dailyRepository) ToggleMIT(ctx context.Context, profileID, id string) (models.MIT, error) {
	return queryOne(ctx, r.DB, "dailyRepository.ToggleMIT",
		psql.Update(mitsTable).
			Set("completed", sq.Expr("NOT completed")).
			Where(sq.Eq{"id": id, "profile_id": profileID}).
			Suffix("RETURNING "+joinColumns(mitColumns)),
		scanMIT)
}

func (r *dailyRepository) DeleteMIT(ctx context.Context, profileID, id string) error {
	return deleteOwned(ctx, r.DB, "dailyRepository.DeleteMIT", mitsTable, profileID, id)
}

// ── Nirvana sessions ────────────────────────────────────────────────────────

func (r *dailyRepository) ListNirvanaSessions(ctx context.Context, profileID, date string) ([]models.NirvanaSession, error) {
	return queryMany(ctx, r.DB, "dailyRepository.ListNirvanaSessions",
		psql.Select(nirvanaColumns...).From(nirvanaTable).Where(byDate(profileID, date)).OrderBy("created_at", "id"),
		scanNirvana)
}

func (r *dailyRepository) AddNirvanaSession(ctx context.Context, n models.NirvanaSession) (models.NirvanaSession, error) {
	return queryOne(ctx, r.DB, "dailyRepository.AddNirvanaSession",
		psql.Insert(nirvanaTable).
			Columns("id", "profile_id", "date", "session_type", "duration_minutes", "notes").
			Values(r.ids.Generate(), n.ProfileID, n.Date, n.SessionType, n.DurationMinutes, n.Notes).
			Suffix("RETURNING "+joinColumns(nirvanaColumns)),
		scanNirvana)
}

func (r *dailyRepository) DeleteNirvanaSession(ctx context.Context, profileID, id string) error {
	return deleteOwned(ctx, r.DB, "dailyRepository.DeleteNirvanaSession", nirvanaTable, profileID, id)
}
