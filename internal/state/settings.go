package state

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/querykey"
	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/models"
)

// Settings derives the profile settings and the lookup lists. Settings
// mutations lock the profile key because both maps are stored on the profile.
type Settings struct {
	svc   service.SettingsService
	cache *cache.Cache
}

func NewSettings(svc service.SettingsService, c *cache.Cache) *Settings {
	return &Settings{svc: svc, cache: c}
}

func (a *Settings) Current(ctx context.Context, profileID string) View[models.Settings] {
	return read(ctx, a.cache.Scope(profileID), querykey.Settings.Current(),
		func(ctx context.Context) (models.Settings, error) {
			return a.svc.Get(ctx, profileID)
		})
}

func (a *Settings) UpdateTrackerSettings(ctx context.Context, profileID string, patch models.JSONMap) (models.Settings, error) {
	return a.merge(ctx, profileID, "settings.updateTrackerSettings",
		func(st models.Settings) models.Settings {
			st.TrackerSettings = st.TrackerSettings.Merge(patch)
			return st
		},
		func(ctx context.Context) (models.Settings, error) {
			return a.svc.UpdateTrackerSettings(ctx, profileID, patch)
		})
}

func (a *Settings) UpdateMacroTargets(ctx context.Context, profileID string, patch models.JSONMap) (models.Settings, error) {
	return a.merge(ctx, profileID, "settings.updateMacroTargets",
		func(st models.Settings) models.Settings {
			st.MacroTargets = st.MacroTargets.Merge(patch)
			return st
		},
		func(ctx context.Context) (models.Settings, error) {
			return a.svc.UpdateMacroTargets(ctx, profileID, patch)
		})
}

func (a *Settings) merge(ctx context.Context, profileID, name string, apply func(models.Settings) models.Settings, remote func(context.Context) (models.Settings, error)) (models.Settings, error) {
	return Run(ctx, a.cache.Scope(profileID), Mutation[models.Settings]{
		Name:     name,
		Strategy: Optimistic,
		Lock:     querykey.Profile.Current(),
		Affects:  []querykey.Key{querykey.Settings.Current(), querykey.Profile.Current()},
		Apply: func(s *cache.Scope) {
			cache.Update(s, querykey.Settings.Current(), apply)
			cache.Update(s, querykey.Profile.Current(), func(p models.Profile) models.Profile {
				st := apply(models.Settings{TrackerSettings: p.TrackerSettings, MacroTargets: p.MacroTargets})
				p.TrackerSettings, p.MacroTargets = st.TrackerSettings, st.MacroTargets
				return p
			})
		},
		Remote: remote,
	})
}

// ── Lookups ────────────────────────────────────────────────────────────────

func (a *Settings) Compounds(ctx context.Context, profileID string) View[[]models.Compound] {
	return read(ctx, a.cache.Scope(profileID), querykey.Lookups.Compounds(),
		func(ctx context.Context) ([]models.Compound, error) {
			return a.svc.ListCompounds(ctx, profileID)
		})
}

func (a *Settings) CreateCompound(ctx context.Context, profileID string, c models.Compound) (models.Compound, error) {
	c.ProfileID = profileID
	return createLookup(ctx, a.cache.Scope(profileID), "lookups.createCompound", querykey.Lookups.Compounds(),
		func(ctx context.Context) (models.Compound, error) { return a.svc.CreateCompound(ctx, c) })
}

func (a *Settings) DeleteCompound(ctx context.Context, profileID, id string) error {
	return deleteLookup(ctx, a.cache.Scope(profileID), "lookups.deleteCompound", querykey.Lookups.Compounds(),
		func(c models.Compound) bool { return c.ID == id },
		func(ctx context.Context) error { return a.svc.DeleteCompound(ctx, profileID, id) })
}

func (a *Settings) FoodTemplates(ctx context.Context, profileID string) View[[]models.FoodTemplate] {
	return read(ctx, a.cache.Scope(profileID), querykey.Lookups.FoodTemplates(),
		func(ctx context.Context) ([]models.FoodTemplate, error) {
			return a.svc.ListFoodTemplates(ctx, profileID)
		})
}

func (a *Settings) CreateFoodTemplate(ctx context.Context, profileID string, f models.FoodTemplate) (models.FoodTemplate, error) {
	f.ProfileID = profileID
	return createLookup(ctx, a.cache.Scope(profileID), "lookups.createFoodTemplate", querykey.Lookups.FoodTemplates(),
		func(ctx context.Context) (models.FoodTemplate, error) { return a.svc.CreateFoodTemplate(ctx, f) })
}

func (a *Settings) DeleteFoodTemplate(ctx context.Context, profileID, id string) error {
	return deleteLookup(ctx, a.cache.Scope(profileID), "lookups.deleteFoodTemplate", querykey.Lookups.FoodTemplates(),
		func(f models.FoodTemplate) bool { return f.ID == id },
		func(ctx context.Context) error { return a.svc.DeleteFoodTemplate(ctx, profileID, id) })
}

func (a *Settings) NirvanaTypes(ctx context.Context, profileID string) View[[]models.NirvanaSessionType] {
	return read(ctx, a.cache.Scope(profileID), querykey.Lookups.NirvanaTypes(),
		func(ctx context.Context) ([]models.NirvanaSessionType, error) {
			return a.svc.ListNirvanaTypes(ctx, profileID)
		})
}

func (a *Settings) CreateNirvanaType(ctx context.Context, profileID string, t models.NirvanaSessionType) (models.NirvanaSessionType, error) {
	t.ProfileID = profileID
	return createLookup(ctx, a.cache.Scope(profileID), "lookups.createNirvanaType", querykey.Lookups.NirvanaTypes(),
		func(ctx context.Context) (models.NirvanaSessionType, error) { return a.svc.CreateNirvanaType(ctx, t) })
}

func (a *Settings) DeleteNirvanaType(ctx context.Context, profileID, id string) error {
	return deleteLookup(ctx, a.cache.Scope(profileID), "lookups.deleteNirvanaType", querykey.Lookups.NirvanaTypes(),
		func(t models.NirvanaSessionType) bool { return t.ID == id },
		func(ctx context.Context) error { return a.svc.DeleteNirvanaType(ctx, profileID, id) })
}

func createLookup[T any](ctx context.Context, s *cache.Scope, name string, key querykey.Key, remote func(context.Context) (T, error)) (T, error) {
	return Run(ctx, s, Mutation[T]{
		Name:     name,
		Strategy: Direct,
		Lock:     key,
		Remote:   remote,
		Splice: func(s *cache.Scope, created T) {
			cache.Update(s, key, func(list []T) []T { return appendCopy(list, created) })
		},
	})
}

func deleteLookup[T any](ctx context.Context, s *cache.Scope, name string, key querykey.Key, match func(T) bool, remote func(context.Context) error) error {
	_, err := Run(ctx, s, Mutation[none]{
		Name:     name,
		Strategy: Optimistic,
		Lock:     key,
		Affects:  []querykey.Key{key},
		Apply: func(s *cache.Scope) {
			cache.Update(s, key, func(list []T) []T { return removeWhere(list, match) })
		},
		Remote: noResult(remote),
	})
	return err
}
