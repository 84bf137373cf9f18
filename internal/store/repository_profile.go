package store

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const profilesTable = "profiles"

var profileColumns = []string{
	"id", "subject_id", "bmr", "height", "weight", "gender",
	"tracker_settings", "macro_targets", "created_at", "updated_at",
}

// profileRepository is the Postgres-backed implementation of [ProfileRepository].
type profileRepository struct {
	*DB
	ids idGenerator
}

func NewProfileRepository(db *DB, ids idGenerator) ProfileRepository {
	return &profileRepository{DB: db, ids: ids}
}

func scanProfile(r rowScanner) (models.Profile, error) {
	var p models.Profile
	err := r.Scan(&p.ID, &p.SubjectID, &p.BMR, &p.Height, &p.Weight, &p.Gender,
		&p.TrackerSettings, &p.MacroTargets, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *profileRepository) GetBySubject(ctx context.Context, subjectID string) (*models.Profile, error) {
	return nullable(queryOne(ctx, r.DB, "profileRepository.GetBySubject",
		psql.Select(profileColumns...).From(profilesTable).Where(sq.Eq{"subject_id": subjectID}),
		scanProfile))
}

func (r *profileRepository) GetByID(ctx context.Context, profileID string) (models.Profile, error) {
	return queryOne(ctx, r.DB, "profileRepository.GetByID",
		psql.Select(profileColumns...).From(profilesTable).Where(sq.Eq{"id": profileID}),
		scanProfile)
}

func (r *profileRepository) insert(profile models.Profile) sq.InsertBuilder {
	if profile.ID == "" {
		profile.ID = r.ids.Generate()
	}
	return psql.Insert(profilesTable).
		Columns("id", "subject_id", "bmr", "height", "weight", "gender", "tracker_settings", "macro_targets").
		Values(profile.ID, profile.SubjectID, profile.BMR, profile.Height, profile.Weight, profile.Gender,
			profile.TrackerSettings, profile.MacroTargets)
}

func (r *profileRepository) Create(ctx context.Context, profile models.Profile) (models.Profile, error) {
	return queryOne(ctx, r.DB, "profileRepository.Create",
		r.insert(profile).Suffix("RETURNING "+joinColumns(profileColumns)),
		scanProfile)
}

// GetOrCreate issues a single conditional insert guarded by the UNIQUE
// (subject_id) constraint. When the insert is skipped, the existing row is
// selected.
func (r *profileRepository) GetOrCreate(ctx context.Context, profile models.Profile) (models.Profile, bool, error) {
	log := logger.FromContext(ctx)

	created, err := nullable(queryOne(ctx, r.DB, "profileRepository.GetOrCreate",
		r.insert(profile).Suffix("ON CONFLICT (subject_id) DO NOTHING RETURNING "+joinColumns(profileColumns)),
		scanProfile))
	if err != nil {
		return models.Profile{}, false, err
	}
	if created != nil {
		log.Info().Str("func", "profileRepository.GetOrCreate").
			Str("profile_id", created.ID).
			Msg("created profile for subject")
		return *created, true, nil
	}

	existing, err := queryOne(ctx, r.DB, "profileRepository.GetOrCreate",
		psql.Select(profileColumns...).From(profilesTable).Where(sq.Eq{"subject_id": profile.SubjectID}),
		scanProfile)
	if err != nil {
		return models.Profile{}, false, err
	}
	return existing, false, nil
}

func (r *profileRepository) Update(ctx context.Context, profileID string, update models.ProfileUpdate) (models.Profile, error) {
	if update.IsEmpty() {
		return models.Profile{}, ErrNothingToUpdate
	}

	set := map[string]any{"updated_at": sq.Expr("now()")}
	if update.BMR != nil {
		set["bmr"] = *update.BMR
	}
	if update.Height != nil {
		set["height"] = *update.Height
	}
	if update.Weight != nil {
		set["weight"] = *update.Weight
	}
	if update.Gender != nil {
		set["gender"] = *update.Gender
	}
	if update.TrackerSettings != nil {
		set["tracker_settings"] = update.TrackerSettings
	}
	if update.MacroTargets != nil {
		set["macro_targets"] = update.MacroTargets
	}

	return queryOne(ctx, r.DB, "profileRepository.Update",
		psql.Update(profilesTable).SetMap(set).Where(sq.Eq{"id": profileID}).
			Suffix("RETURNING "+joinColumns(profileColumns)),
		scanProfile)
}
