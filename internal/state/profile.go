package state

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/querykey"
	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/models"
)

type Profile struct {
	svc   service.ProfileService
	cache *cache.Cache
}

func NewProfile(svc service.ProfileService, c *cache.Cache) *Profile {
	return &Profile{svc: svc, cache: c}
}

func (a *Profile) Current(ctx context.Context, profileID string) View[models.Profile] {
	return read(ctx, a.cache.Scope(profileID), querykey.Profile.Current(),
		func(ctx context.Context) (models.Profile, error) {
			return a.svc.GetByID(ctx, profileID)
		})
}

// Update touches the settings key too, since both maps live on the profile row.
func (a *Profile) Update(ctx context.Context, profileID string, upd models.ProfileUpdate) (models.Profile, error) {
	return Run(ctx, a.cache.Scope(profileID), Mutation[models.Profile]{
		Name:     "profile.update",
		Strategy: Optimistic,
		Lock:     querykey.Profile.Current(),
		Affects:  []querykey.Key{querykey.Profile.Current(), querykey.Settings.Current()},
		Apply: func(s *cache.Scope) {
			cache.Update(s, querykey.Profile.Current(), upd.Apply)
			if upd.TrackerSettings != nil || upd.MacroTargets != nil {
				s.Remove(querykey.Settings.Current())
			}
		},
		Remote: func(ctx context.Context) (models.Profile, error) {
			return a.svc.Update(ctx, profileID, upd)
		},
	})
}
