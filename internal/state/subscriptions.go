package state

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/querykey"
	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/models"
)

// Subscriptions derives subscription lists, categories and cost totals.
type Subscriptions struct {
	svc   service.SubscriptionService
	cache *cache.Cache
}

func NewSubscriptions(svc service.SubscriptionService, c *cache.Cache) *Subscriptions {
	return &Subscriptions{svc: svc, cache: c}
}

func (a *Subscriptions) List(ctx context.Context, profileID string) View[[]models.Subscription] {
	return read(ctx, a.cache.Scope(profileID), querykey.Subscriptions.List(),
		func(ctx context.Context) ([]models.Subscription, error) {
			return a.svc.List(ctx, profileID)
		})
}

func (a *Subscriptions) ByCategory(ctx context.Context, profileID, categoryID string) View[[]models.Subscription] {
	return read(ctx, a.cache.Scope(profileID), querykey.Subscriptions.ByCategory(categoryID),
		func(ctx context.Context) ([]models.Subscription, error) {
			return a.svc.ListByCategory(ctx, profileID, categoryID)
		})
}

func (a *Subscriptions) Categories(ctx context.Context, profileID string) View[[]models.SubscriptionCategory] {
	return read(ctx, a.cache.Scope(profileID), querykey.Subscriptions.Categories(),
		func(ctx context.Context) ([]models.SubscriptionCategory, error) {
			return a.svc.ListCategories(ctx, profileID)
		})
}

// Totals is computed from the cached subscription list, so an optimistic
// change of the list is reflected without another backend call.
func (a *Subscriptions) Totals(ctx context.Context, profileID string) View[models.SubscriptionTotals] {
	return read(ctx, a.cache.Scope(profileID), querykey.Subscriptions.Totals(),
		func(ctx context.Context) (models.SubscriptionTotals, error) {
			list := a.List(ctx, profileID)
			if list.Error != nil {
				return models.SubscriptionTotals{}, list.Error
			}
			return service.CalculateTotals(list.Data), nil
		})
}

// Create is direct: the new row is appended to the full list and to the
// cached category lists it belongs to.
func (a *Subscriptions) Create(ctx context.Context, profileID string, sub models.Subscription) (models.Subscription, error) {
	sub.ProfileID = profileID
	return Run(ctx, a.cache.Scope(profileID), Mutation[models.Subscription]{
		Name:     "subscriptions.create",
		Strategy: Direct,
		Lock:     querykey.Subscriptions.All(),
		Affects:  []querykey.Key{querykey.Subscriptions.Totals()},
		Remote: func(ctx context.Context) (models.Subscription, error) {
			return a.svc.Create(ctx, sub)
		},
		Splice: func(s *cache.Scope, created models.Subscription) {
			cache.Update(s, querykey.Subscriptions.List(), func(list []models.Subscription) []models.Subscription {
				return appendCopy(list, created)
			})
			for _, id := range created.CategoryIDs {
				cache.Update(s, querykey.Subscriptions.ByCategory(id), func(list []models.Subscription) []models.Subscription {
					return appendCopy(list, created)
				})
			}
		},
	})
}

func (a *Subscriptions) Update(ctx context.Context, profileID, id string, upd models.SubscriptionUpdate) (models.Subscription, error) {
	return Run(ctx, a.cache.Scope(profileID), Mutation[models.Subscription]{
		Name:     "subscriptions.update",
		Strategy: Optimistic,
		Lock:     querykey.Subscriptions.All(),
		Affects:  []querykey.Key{querykey.Subscriptions.All()},
		Apply: func(s *cache.Scope) {
			cache.UpdateAll(s, querykey.Subscriptions.All(), func(_ querykey.Key, list []models.Subscription) []models.Subscription {
				return replaceWhere(list, subscriptionID(id), upd.Apply)
			})
			s.Remove(querykey.Subscriptions.Totals())
		},
		Remote: func(ctx context.Context) (models.Subscription, error) {
			return a.svc.Update(ctx, profileID, id, upd)
		},
	})
}

func (a *Subscriptions) Delete(ctx context.Context, profileID, id string) error {
	_, err := Run(ctx, a.cache.Scope(profileID), Mutation[none]{
		Name:     "subscriptions.delete",
		Strategy: Optimistic,
		Lock:     querykey.Subscriptions.All(),
		Affects:  []querykey.Key{querykey.Subscriptions.All()},
		Apply: func(s *cache.Scope) {
			cache.UpdateAll(s, querykey.Subscriptions.All(), func(_ querykey.Key, list []models.Subscription) []models.Subscription {
				return removeWhere(list, subscriptionID(id))
			})
			s.Remove(querykey.Subscriptions.Totals())
		},
		Remote: noResult(func(ctx context.Context) error {
			return a.svc.Delete(ctx, profileID, id)
		}),
	})
	return err
}

func (a *Subscriptions) CreateCategory(ctx context.Context, profileID string, category models.SubscriptionCategory) (models.SubscriptionCategory, error) {
	category.ProfileID = profileID
	return Run(ctx, a.cache.Scope(profileID), Mutation[models.SubscriptionCategory]{
		Name:     "subscriptions.createCategory",
		Strategy: Direct,
		Lock:     querykey.Subscriptions.All(),
		Remote: func(ctx context.Context) (models.SubscriptionCategory, error) {
			return a.svc.CreateCategory(ctx, category)
		},
		Splice: func(s *cache.Scope, created models.SubscriptionCategory) {
			cache.Update(s, querykey.Subscriptions.Categories(), func(list []models.SubscriptionCategory) []models.SubscriptionCategory {
				return appendCopy(list, created)
			})
		},
	})
}

func (a *Subscriptions) UpdateCategory(ctx context.Context, profileID string, category models.SubscriptionCategory) (models.SubscriptionCategory, error) {
	category.ProfileID = profileID
	return Run(ctx, a.cache.Scope(profileID), Mutation[models.SubscriptionCategory]{
		Name:     "subscriptions.updateCategory",
		Strategy: Optimistic,
		Lock:     querykey.Subscriptions.All(),
		Affects:  []querykey.Key{querykey.Subscriptions.Categories()},
		Apply: func(s *cache.Scope) {
			cache.Update(s, querykey.Subscriptions.Categories(), func(list []models.SubscriptionCategory) []models.SubscriptionCategory {
				return replaceWhere(list, categoryID(category.ID), func(models.SubscriptionCategory) models.SubscriptionCategory {
					return category
				})
			})
		},
		Remote: func(ctx context.Context) (models.SubscriptionCategory, error) {
			return a.svc.UpdateCategory(ctx, category)
		},
	})
}

// DeleteCategory removes the category and strips its id from every cached
// subscription.
func (a *Subscriptions) DeleteCategory(ctx context.Context, profileID, id string) error {
	_, err := Run(ctx, a.cache.Scope(profileID), Mutation[none]{
		Name:     "subscriptions.deleteCategory",
		Strategy: Optimistic,
		Lock:     querykey.Subscriptions.All(),
		Affects:  []querykey.Key{querykey.Subscriptions.All()},
		Apply: func(s *cache.Scope) {
			cache.Update(s, querykey.Subscriptions.Categories(), func(list []models.SubscriptionCategory) []models.SubscriptionCategory {
				return removeWhere(list, categoryID(id))
			})
			s.Remove(querykey.Subscriptions.ByCategory(id))
			cache.UpdateAll(s, querykey.Subscriptions.All(), func(_ querykey.Key, list []models.Subscription) []models.Subscription {
				return replaceWhere(list,
					func(sub models.Subscription) bool { return sub.CategoryIDs.Contains(id) },
					func(sub models.Subscription) models.Subscription {
						sub.CategoryIDs = removeWhere(sub.CategoryIDs, func(c string) bool { return c == id })
						return sub
					})
			})
		},
		Remote: noResult(func(ctx context.Context) error {
			return a.svc.DeleteCategory(ctx, profileID, id)
		}),
	})
	return err
}

func subscriptionID(id string) func(models.Subscription) bool {
	return func(s models.Subscription) bool { return s.ID == id }
}

func categoryID(id string) func(models.SubscriptionCategory) bool {
	return func(c models.SubscriptionCategory) bool { return c.ID == id }
}
