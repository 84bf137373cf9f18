package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const weeklyEntriesTable = "weekly_entries"

var weeklyColumns = []string{
	"id", "profile_id", dateColumn("week_start"), "objectives", "why_important",
	"friday_review", "review_completed", "updated_at",
}

// weeklyRepository is the Postgres-backed implementation of [WeeklyRepository].
type weeklyRepository struct {
	*DB
	ids idGenerator
}

func NewWeeklyRepository(db *DB, ids idGenerator) WeeklyRepository {
	return &weeklyRepository{DB: db, ids: ids}
}

func scanWeekly(r rowScanner) (models.WeeklyEntry, error) {
	var w models.WeeklyEntry
	err := r.Scan(&w.ID, &w.ProfileID, &w.WeekStart, &w.Objectives, &w.WhyImportant,
		&w.FridayReview, &w.ReviewCompleted, &w.UpdatedAt)
	return w, err
}

func byWeek(profileID, weekStart string) sq.Eq {
	return sq.Eq{"profile_id": profileID, "week_start": weekStart}
}

func (r *weeklyRepository) Get(ctx context.Context, profileID, weekStart string) (*models.WeeklyEntry, error) {
	return nullable(queryOne(ctx, r.DB, "weeklyRepository.Get",
		psql.Select(weeklyColumns...).From(weeklyEntriesTable).Where(byWeek(profileID, weekStart)),
		scanWeekly))
}

// Upsert merges the provided fields onto the (profile, week_start) row with a
// single conditional insert. Concurrent writers resolve last-write-wins.
func (r *weeklyRepository) Upsert(ctx context.Context, profileID, weekStart string, update models.WeeklyEntryUpdate) (models.WeeklyEntry, error) {
	inserted := update.Apply(models.WeeklyEntry{Objectives: models.Objectives{}})

	sets := []string{"updated_at = now()"}
	if update.Objectives != nil {
		sets = append(sets, "objectives = EXCLUDED.objectives")
	}
	if update.WhyImportant != nil {
		sets = append(sets, "why_important = EXCLUDED.why_important")
	}
	if update.FridayReview != nil {
		sets = append(sets, "friday_review = EXCLUDED.friday_review")
	}
	if update.ReviewCompleted != nil {
		sets = append(sets, "review_completed = EXCLUDED.review_completed")
	}

	return queryOne(ctx, r.DB, "weeklyRepository.Upsert",
		psql.Insert(weeklyEntriesTable).
			Columns("id", "profile_id", "week_start", "objectives", "why_important", "friday_review", "review_completed").
			Values(r.ids.Generate(), profileID, weekStart, inserted.Objectives, inserted.WhyImportant,
				inserted.FridayReview, inserted.ReviewCompleted).
			Suffix("ON CONFLICT (profile_id, week_start) DO UPDATE SET "+strings.Join(sets, ", ")+
				" RETURNING "+joinColumns(weeklyColumns)),
		scanWeekly)
}

// ToggleObjective flips the completed flag of one objective. The row is
// locked for the read-modify-write so concurrent toggles do not lose updates.
func (r *weeklyRepository) ToggleObjective(ctx context.Context, profileID, weekStart, objectiveID string) (models.WeeklyEntry, error) {
	log := logger.FromContext(ctx)
	const op = "weeklyRepository.ToggleObjective"

	var out models.WeeklyEntry
	err := r.inTx(ctx, op, func(tx *sql.Tx) error {
		current, err := scanOne(ctx, tx, op,
			psql.Select(weeklyColumns...).From(weeklyEntriesTable).
				Where(byWeek(profileID, weekStart)).
				Suffix("FOR UPDATE"),
			scanWeekly)
		if err != nil {
			return err
		}

		toggled, ok := current.Objectives.Toggle(objectiveID)
		if !ok {
			log.Warn().Str("func", op).
				Str("week_start", weekStart).
				Str("objective_id", objectiveID).
				Msg("objective not found in weekly entry")
			return ErrObjectiveNotFound
		}

		out, err = scanOne(ctx, tx, op,
			psql.Update(weeklyEntriesTable).
				Set("objectives", toggled).
				Set("updated_at", sq.Expr("now()")).
				Where(sq.Eq{"id": current.ID}).
				Suffix("RETURNING "+joinColumns(weeklyColumns)),
			scanWeekly)
		return err
	})
	if err != nil {
		return models.WeeklyEntry{}, translateError(err)
	}
	return out, nil
}
