package store

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	compoundsTable    = "compounds"
	foodTemplateTable = "food_templates"
	nirvanaTypesTable = "nirvana_session_types"
)

var (
	namedColumns        = []string{"id", "profile_id", "name"}
	foodTemplateColumns = []string{"id", "profile_id", "name", "calories", "protein", "carbs", "fat"}
)

// lookupRepository is the Postgres-backed implementation of [LookupRepository].
type lookupRepository struct {
	*DB
	ids idGenerator
}

func NewLookupRepository(db *DB, ids idGenerator) LookupRepository {
	return &lookupRepository{DB: db, ids: ids}
}

func scanCompound(r rowScanner) (models.Compound, error) {
	var c models.Compound
	err := r.Scan(&c.ID, &c.ProfileID, &c.Name)
	return c, err
}

func scanNirvanaType(r rowScanner) (models.NirvanaSessionType, error) {
	var t models.NirvanaSessionType
	err := r.Scan(&t.ID, &t.ProfileID, &t.Name)
	return t, err
}

func scanFoodTemplate(r rowScanner) (models.FoodTemplate, error) {
	var f models.FoodTemplate
	err := r.Scan(&f.ID, &f.ProfileID, &f.Name, &f.Calories, &f.Protein, &f.Carbs, &f.Fat)
	return f, err
}

func listNamed(table, profileID string) sq.SelectBuilder {
	return psql.Select(namedColumns...).From(table).Where(sq.Eq{"profile_id": profileID}).OrderBy("name")
}

func (r *lookupRepository) insertNamed(table, profileID, name string) sq.InsertBuilder {
	return psql.Insert(table).
		Columns(namedColumns...).
		Values(r.ids.Generate(), profileID, name).
		Suffix("RETURNING " + joinColumns(namedColumns))
}

func (r *lookupRepository) ListCompounds(ctx context.Context, profileID string) ([]models.Compound, error) {
	return queryMany(ctx, r.DB, "lookupRepository.ListCompounds", listNamed(compoundsTable, profileID), scanCompound)
}

func (r *lookupRepository) CreateCompound(ctx context.Context, c models.Compound) (models.Compound, error) {
	return queryOne(ctx, r.DB, "lookupRepository.CreateCompound", r.insertNamed(compoundsTable, c.ProfileID, c.Name), scanCompound)
}

func (r *lookupRepository) DeleteCompound(ctx context.Context, profileID, id string) error {
	return deleteOwned(ctx, r.DB, "lookupRepository.DeleteCompound", compoundsTable, profileID, id)
}

func (r *lookupRepository) ListNirvanaTypes(ctx context.Context, profileID string) ([]models.NirvanaSessionType, error) {
	return queryMany(ctx, r.DB, "lookupRepository.ListNirvanaTypes", listNamed(nirvanaTypesTable, profileID), scanNirvanaType)
}

func (r *lookupRepository) CreateNirvanaType(ctx context.Context, t models.NirvanaSessionType) (models.NirvanaSessionType, error) {
	return queryOne(ctx, r.DB, "lookupRepository.CreateNirvanaType", r.insertNamed(nirvanaTypesTable, t.ProfileID, t.Name), scanNirvanaType)
}

func (r *lookupRepository) DeleteNirvanaType(ctx context.Context, profileID, id string) error {
	return deleteOwned(ctx, r.DB, "lookupRepository.DeleteNirvanaType", nirvanaTypesTable, profileID, id)
}

func (r *lookupRepository) ListFoodTemplates(ctx context.Context, profileID string) ([]models.FoodTemplate, error) {
	return queryMany(ctx, r.DB, "lookupRepository.ListFoodTemplates",
		psql.Select(foodTemplateColumns...).From(foodTemplateTable).Where(sq.Eq{"profile_id": profileID}).OrderBy("name"),
		scanFoodTemplate)
}

func (r *lookupRepository) CreateFoodTemplate(ctx context.Context, f models.FoodTemplate) (models.FoodTemplate, error) {
	return queryOne(ctx, r.DB, "lookupRepository.CreateFoodTemplate",
		psql.Insert(foodTemplateTable).
			Columns(foodTemplateColumns...).
			Values(r.ids.Generate(), f.ProfileID, f.Name, f.Calories, f.Protein, f.Carbs, f.Fat).
			Suffix("RETURNING "+joinColumns(foodTemplateColumns)),
		scanFoodTemplate)
}

func (r *lookupRepository) DeleteFoodTemplate(ctx context.Context, profileID, id string) error {
	return deleteOwned(ctx, r.DB, "lookupRepository.DeleteFoodTemplate", foodTemplateTable, profileID, id)
}
