package state

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/querykey"
	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/models"
)

type WinnersBible struct {
	svc   service.WinnersBibleService
	cache *cache.Cache
}

func NewWinnersBible(svc service.WinnersBibleService, c *cache.Cache) *WinnersBible {
	return &WinnersBible{svc: svc, cache: c}
}

func (a *WinnersBible) List(ctx context.Context, profileID string) View[[]models.WinnersBibleImage] {
	return read(ctx, a.cache.Scope(profileID), querykey.WinnersBible.All(),
		func(ctx context.Context) ([]models.WinnersBibleImage, error) {
			return a.svc.List(ctx, profileID)
		})
}

// Upload is direct: the stored image takes the last display order, so it is
// appended.
func (a *WinnersBible) Upload(ctx context.Context, profileID string, upload models.ImageUpload) (models.WinnersBibleImage, error) {
	return Run(ctx, a.cache.Scope(profileID), Mutation[models.WinnersBibleImage]{
		Name:     "winnersBible.upload",
		Strategy: Direct,
		Lock:     querykey.WinnersBible.All(),
		Remote: func(ctx context.Context) (models.WinnersBibleImage, error) {
			return a.svc.Upload(ctx, profileID, upload)
		},
		Splice: func(s *cache.Scope, img models.WinnersBibleImage) {
			cache.Update(s, querykey.WinnersBible.All(), func(list []models.WinnersBibleImage) []models.WinnersBibleImage {
				return appendCopy(list, img)
			})
		},
	})
}

func (a *WinnersBible) Delete(ctx context.Context, profileID, id string) error {
	_, err := Run(ctx, a.cache.Scope(profileID), Mutation[none]{
		Name:     "winnersBible.delete",
		Strategy: Optimistic,
		Lock:     querykey.WinnersBible.All(),
		Affects:  []querykey.Key{querykey.WinnersBible.All()},
		Apply: func(s *cache.Scope) {
			cache.Update(s, querykey.WinnersBible.All(), func(list []models.WinnersBibleImage) []models.WinnersBibleImage {
				return removeWhere(list, func(img models.WinnersBibleImage) bool { return img.ID == id })
			})
		},
		Remote: noResult(func(ctx context.Context) error {
			return a.svc.Delete(ctx, profileID, id)
		}),
	})
	return err
}

// Reorder assigns each id its index as display order, locally first.
func (a *WinnersBible) Reorder(ctx context.Context, profileID string, ids []string) error {
	_, err := Run(ctx, a.cache.Scope(profileID), Mutation[none]{
		Name:     "winnersBible.reorder",
		Strategy: Optimistic,
		Lock:     querykey.WinnersBible.All(),
		Affects:  []querykey.Key{querykey.WinnersBible.All()},
		Apply: func(s *cache.Scope) {
			cache.Update(s, querykey.WinnersBible.All(), func(list []models.WinnersBibleImage) []models.WinnersBibleImage {
				return models.ReorderImages(list, ids)
			})
		},
		Remote: noResult(func(ctx context.Context) error {
			return a.svc.Reorder(ctx, profileID, ids)
		}),
	})
	return err
}
