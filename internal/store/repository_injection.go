package store

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const injectionEntriesTable = "injection_entries"

var injectionColumns = []string{
	"id", "profile_id", dateColumn("date"), "compound", "dosage", "unit", "notes", "injected_at",
}

// injectionRepository is the Postgres-backed implementation of [InjectionRepository].
type injectionRepository struct {
	*DB
	ids idGenerator
}

func NewInjectionRepository(db *DB, ids idGenerator) InjectionRepository {
	return &injectionRepository{DB: db, ids: ids}
}

func scanInjection(r rowScanner) (models.InjectionEntry, error) {
	var e models.InjectionEntry
	err := r.Scan(&e.ID, &e.ProfileID, &e.Date, &e.Compound, &e.Dosage, &e.Unit, &e.Notes, &e.InjectedAt)
	return e, err
}

func (r *injectionRepository) ListByDate(ctx context.Context, profileID, date string) ([]models.InjectionEntry, error) {
	return queryMany(ctx, r.DB, "injectionRepository.ListByDate",
		psql.Select(injectionColumns...).From(injectionEntriesTable).
			Where(byDate(profileID, date)).
			OrderBy("injected_at DESC", "id"),
		scanInjection)
}

func (r *injectionRepository) ListRange(ctx context.Context, profileID, from, to string) ([]models.InjectionEntry, error) {
	return queryMany(ctx, r.DB, "injectionRepository.ListRange",
		psql.Select(injectionColumns...).From(injectionEntriesTable).
			Where(sq.Eq{"profile_id": profileID}).
			Where(sq.GtOrEq{"date": from}).
			Where(sq.LtOrEq{"date": to}).
			OrderBy("date", "injected_at DESC"),
		scanInjection)
}

func (r *injectionRepository) Create(ctx context.Context, e models.InjectionEntry) (models.InjectionEntry, error) {
	injectedAt := any(sq.Expr("now()"))
	if !e.InjectedAt.IsZero() {
		injectedAt = e.InjectedAt
	}

	return queryOne(ctx, r.DB, "injectionRepository.Create",
		psql.Insert(injectionEntriesTable).
			Columns("id", "profile_id", "date", "compound", "dosage", "unit", "notes", "injected_at").
			Values(r.ids.Generate(), e.ProfileID, e.Date, e.Compound, e.Dosage, e.Unit, e.Notes, injectedAt).
			Suffix("RETURNING "+joinColumns(injectionColumns)),
		scanInjection)
}

func (r *injectionRepository) Update(ctx context.Context, profileID, id string, update models.InjectionUpdate) (models.InjectionEntry, error) {
	set := map[string]any{}
	if update.Compound != nil {
		set["compound"] = *update.Compound
	}
	if update.Dosage != nil {
		set["dosage"] = *update.Dosage
	}
	if update.Unit != nil {
		set["unit"] = *update.Unit
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if update.InjectedAt != nil {
		set["injected_at"] = *update.InjectedAt
	}
	if len(set) == 0 {
		return models.InjectionEntry{}, ErrNothingToUpdate
	}

	return queryOne(ctx, r.DB, "injectionRepository.Update",
		psql.Update(injectionEntriesTable).SetMap(set).
			Where(sq.Eq{"id": id, "profile_id": profileID}).
			Suffix("RETURNING "+joinColumns(injectionColumns)),
		scanInjection)
}

func (r *injectionRepository) Delete(ctx context.Context, profileID, id string) error {
	return deleteOwned(ctx, r.DB, "injectionRepository.Delete", injectionEntriesTable, profileID, id)
}
