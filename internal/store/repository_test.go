package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIDs struct{ id string }

func (f fixedIDs) Generate() string { return f.id }

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewDB(conn, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code, Message: "backend says " + code}
}

var profileRowColumns = []string{
	"id", "subject_id", "bmr", "height", "weight", "gender",
	"tracker_settings", "macro_targets", "created_at", "updated_at",
}

func profileRow(id, subject string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(profileRowColumns).
		AddRow(id, subject, 2000, nil, nil, nil, []byte(`{}`), []byte(`{"protein":150}`), now, now)
}

// ── Profiles ────────────────────────────────────────────────────────────────

func TestProfileGetOrCreate_Inserts(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(db, fixedIDs{"p1"})

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profiles")).
		WithArgs("p1", "sub-1", models.DefaultBMR, nil, nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(profileRow("p1", "sub-1"))

	p, created, err := repo.GetOrCreate(context.Background(), models.NewDefaultProfile("sub-1"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, float64(150), p.MacroTargets["protein"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileGetOrCreate_ReturnsExisting(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(db, fixedIDs{"p-new"})

	mock.ExpectQuery("INSERT INTO profiles .* ON CONFLICT \\(subject_id\\) DO NOTHING").
		WillReturnRows(sqlmock.NewRows(profileRowColumns))
	mock.ExpectQuery("SELECT .* FROM profiles WHERE subject_id = \\$1").
		WithArgs("sub-1").
		WillReturnRows(profileRow("p-old", "sub-1"))

	p, created, err := repo.GetOrCreate(context.Background(), models.NewDefaultProfile("sub-1"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "p-old", p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileGetBySubject_Missing(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(db, fixedIDs{"x"})

	mock.ExpectQuery("SELECT .* FROM profiles").WillReturnRows(sqlmock.NewRows(profileRowColumns))

	p, err := repo.GetBySubject(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProfileUpdate_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(db, fixedIDs{"x"})

	_, err := repo.Update(context.Background(), "p1", models.ProfileUpdate{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileUpdate_OnlyProvidedFields(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(db, fixedIDs{"x"})
	bmr := 2100

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE profiles SET bmr = $1, updated_at = now() WHERE id = $2 RETURNING")).
		WithArgs(bmr, "p1").
		WillReturnRows(profileRow("p1", "sub-1"))

	_, err := repo.Update(context.Background(), "p1", models.ProfileUpdate{BMR: &bmr})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Retry and error translation ─────────────────────────────────────────────

func TestQueryOne_RetriesOnceOnSerializationFailure(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(db, fixedIDs{"x"})

	mock.ExpectQuery("SELECT .* FROM profiles").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("SELECT .* FROM profiles").WillReturnRows(profileRow("p1", "sub-1"))

	p, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryOne_GivesUpAfterSecondFailure(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(db, fixedIDs{"x"})

	mock.ExpectQuery("SELECT .* FROM profiles").WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectQuery("SELECT .* FROM profiles").WillReturnError(pgError(pgerrcode.DeadlockDetected))

	_, err := repo.GetByID(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryOne_NoRetryOnConstraintViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(db, fixedIDs{"p1"})

	mock.ExpectQuery("INSERT INTO profiles").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), models.NewDefaultProfile("sub-1"))
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"no rows", sql.ErrNoRows, ErrNotFound},
		{"unique", pgError(pgerrcode.UniqueViolation), ErrConflict},
		{"foreign key", pgError(pgerrcode.ForeignKeyViolation), ErrInvalidReference},
		{"check", pgError(pgerrcode.CheckViolation), ErrInvalidData},
		{"not null", pgError(pgerrcode.NotNullViolation), ErrInvalidData},
		{"bad text", pgError(pgerrcode.InvalidTextRepresentation), ErrInvalidData},
		{"other pg", pgError(pgerrcode.UndefinedTable), ErrExecutingQuery},
		{"plain", errors.New("network down"), ErrExecutingQuery},
		{"already translated", ErrObjectiveNotFound, ErrObjectiveNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateError(tt.in), tt.want)
		})
	}
	assert.NoError(t, translateError(nil))
}

func TestTranslateError_KeepsBackendMessage(t *testing.T) {
	err := translateError(pgError(pgerrcode.CheckViolation))
	assert.Contains(t, err.Error(), "backend says "+pgerrcode.CheckViolation)
}

// ── Daily ───────────────────────────────────────────────────────────────────

func TestDailyUpsertEntry_UpdatesOnlyProvided(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDailyRepository(db, fixedIDs{"d1"})
	done := true
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"ON CONFLICT (profile_id, date) DO UPDATE SET updated_at = now(), deep_work_completed = EXCLUDED.deep_work_completed RETURNING")).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "profile_id", "date", "weight", "deep_work_completed",
			"winners_bible_morning", "winners_bible_night", "created_at", "updated_at",
		}).AddRow("d1", "p1", "2026-10-16", nil, true, false, false, now, now))

	e, err := repo.UpsertEntry(context.Background(), "p1", "2026-10-16", models.DailyEntryUpdate{DeepWorkCompleted: &done})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-16", e.Date)
	assert.True(t, e.DeepWorkCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyDeleteCalorie_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDailyRepository(db, fixedIDs{"x"})

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM calorie_entries WHERE id = $1 AND profile_id = $2")).
		WithArgs("c1", "p1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteCalorie(context.Background(), "p1", "c1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDailyListCalories_EmptyIsNotNil(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDailyRepository(db, fixedIDs{"x"})

	mock.ExpectQuery("SELECT .* FROM calorie_entries").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	list, err := repo.ListCalories(context.Background(), "p1", "2026-10-16")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

// ── Weekly ──────────────────────────────────────────────────────────────────

var weeklyRowColumns = []string{
	"id", "profile_id", "week_start", "objectives", "why_important",
	"friday_review", "review_completed", "updated_at",
}

func weeklyRow(objectives string) *sqlmock.Rows {
	return sqlmock.NewRows(weeklyRowColumns).
		AddRow("w1", "p1", "2026-10-12", []byte(objectives), "", "", false, time.Now())
}

func TestWeeklyToggleObjective(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWeeklyRepository(db, fixedIDs{"x"})

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM weekly_entries WHERE .* FOR UPDATE").
		WillReturnRows(weeklyRow(`[{"id":"o1","text":"ship","completed":false,"order":0},{"id":"o2","text":"rest","completed":false,"order":1}]`))
	mock.ExpectQuery("UPDATE weekly_entries SET objectives = \\$1").
		WithArgs([]byte(`[{"id":"o1","text":"ship","completed":true,"order":0},{"id":"o2","text":"rest","completed":false,"order":1}]`), "w1").
		WillReturnRows(weeklyRow(`[{"id":"o1","text":"ship","completed":true,"order":0},{"id":"o2","text":"rest","completed":false,"order":1}]`))
	mock.ExpectCommit()

	w, err := repo.ToggleObjective(context.Background(), "p1", "2026-10-12", "o1")
	require.NoError(t, err)
	require.Len(t, w.Objectives, 2)
	assert.True(t, w.Objectives[0].Completed)
	assert.False(t, w.Objectives[1].Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWeeklyToggleObjective_UnknownObjective(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWeeklyRepository(db, fixedIDs{"x"})

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FOR UPDATE").
		WillReturnRows(weeklyRow(`[{"id":"o1","text":"ship","completed":false,"order":0}]`))
	mock.ExpectRollback()

	_, err := repo.ToggleObjective(context.Background(), "p1", "2026-10-12", "missing")
	assert.ErrorIs(t, err, ErrObjectiveNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWeeklyToggleObjective_NoEntry(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWeeklyRepository(db, fixedIDs{"x"})

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FOR UPDATE").WillReturnRows(sqlmock.NewRows(weeklyRowColumns))
	mock.ExpectRollback()

	_, err := repo.ToggleObjective(context.Background(), "p1", "2026-10-12", "o1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrObjectiveNotFound)
}

func TestWeeklyGet_Missing(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWeeklyRepository(db, fixedIDs{"x"})

	mock.ExpectQuery("SELECT .* FROM weekly_entries").WillReturnRows(sqlmock.NewRows(weeklyRowColumns))

	w, err := repo.Get(context.Background(), "p1", "2026-10-12")
	require.NoError(t, err)
	assert.Nil(t, w)
}

// ── Subscriptions ───────────────────────────────────────────────────────────

func TestSubscriptionListByCategory_UsesContainment(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSubscriptionRepository(db, fixedIDs{"x"})
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("category_ids @> $2::jsonb")).
		WithArgs("p1", `["cat-1"]`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "profile_id", "name", "price", "currency", "billing_frequency", "category_ids",
			"active", "next_billing_date", "notes", "created_at", "updated_at",
		}).AddRow("s1", "p1", "Gym", "49.99", "USD", "monthly", []byte(`["cat-1"]`), nil, nil, nil, now, now))

	subs, err := repo.ListByCategory(context.Background(), "p1", "cat-1")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, models.BillingMonthly, subs[0].BillingFrequency)
	assert.Equal(t, "49.99", subs[0].Price.String())
	assert.True(t, subs[0].IsActive())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionDeleteCategory_StripsIDs(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSubscriptionRepository(db, fixedIDs{"x"})

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE subscriptions SET category_ids = category_ids - $1::text")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM subscription_categories")).
		WithArgs("cat-1", "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteCategory(context.Background(), "p1", "cat-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionDeleteCategory_Missing(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSubscriptionRepository(db, fixedIDs{"x"})

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE subscriptions").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM subscription_categories").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteCategory(context.Background(), "p1", "cat-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Images ──────────────────────────────────────────────────────────────────

func TestBuildReorderQuery(t *testing.T) {
	query, args := buildReorderQuery("p1", []string{"c", "a", "b"})

	assert.Equal(t,
		"UPDATE winners_bible_images AS w SET display_order = v.ord FROM (VALUES "+
			"($1::uuid, $2::int), ($3::uuid, $4::int), ($5::uuid, $6::int)) AS v(id, ord) "+
			"WHERE w.id = v.id AND w.profile_id = $7",
		query)
	assert.Equal(t, []any{"c", 0, "a", 1, "b", 2, "p1"}, args)
}

func TestImageReorder_SingleStatement(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewImageRepository(db, fixedIDs{"x"})

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE winners_bible_images AS w").
		WithArgs("c", 0, "a", 1, "b", 2, "p1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, repo.Reorder(context.Background(), "p1", []string{"c", "a", "b"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageReorder_ForeignIDRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewImageRepository(db, fixedIDs{"x"})

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE winners_bible_images AS w").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectRollback()

	err := repo.Reorder(context.Background(), "p1", []string{"c", "a", "b"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageReorder_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewImageRepository(db, fixedIDs{"x"})

	require.NoError(t, repo.Reorder(context.Background(), "p1", nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageDelete_ReturnsRow(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewImageRepository(db, fixedIDs{"x"})

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM winners_bible_images WHERE id = $1 AND profile_id = $2 RETURNING")).
		WithArgs("i1", "p1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "profile_id", "name", "storage_path", "mime_type", "size_bytes", "display_order", "created_at",
		}).AddRow("i1", "p1", "goal.png", "p1/i1.png", "image/png", 42, 0, time.Now()))

	img, err := repo.Delete(context.Background(), "p1", "i1")
	require.NoError(t, err)
	assert.Equal(t, "p1/i1.png", img.StoragePath)
}

// ── Lookups ─────────────────────────────────────────────────────────────────

func TestLookupCreateCompound_Duplicate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLookupRepository(db, fixedIDs{"c1"})

	mock.ExpectQuery("INSERT INTO compounds").
		WithArgs("c1", "p1", "BPC-157").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateCompound(context.Background(), models.Compound{ProfileID: "p1", Name: "BPC-157"})
	assert.ErrorIs(t, err, ErrConflict)
}
