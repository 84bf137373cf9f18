package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/MKhiriev/go-health-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	subscriptionsTable          = "subscriptions"
	subscriptionCategoriesTable = "subscription_categories"
)

var (
	subscriptionColumns = []string{
		"id", "profile_id", "name", "price", "currency", "billing_frequency", "category_ids",
		"active", dateColumn("next_billing_date"), "notes", "created_at", "updated_at",
	}
	categoryColumns = []string{"id", "profile_id", "name", "color"}
)

// subscriptionRepository is the Postgres-backed implementation of [SubscriptionRepository].
type subscriptionRepository struct {
	*DB
	ids idGenerator
}

func NewSubscriptionRepository(db *DB, ids idGenerator) SubscriptionRepository {
	return &subscriptionRepository{DB: db, ids: ids}
}

func scanSubscription(r rowScanner) (models.Subscription, error) {
	var s models.Subscription
	var frequency string
	err := r.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Price, &s.Currency, &frequency, &s.CategoryIDs,
		&s.Active, &s.NextBillingDate, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	s.BillingFrequency = models.BillingFrequency(frequency)
	return s, err
}

func scanCategory(r rowScanner) (models.SubscriptionCategory, error) {
	var c models.SubscriptionCategory
	err := r.Scan(&c.ID, &c.ProfileID, &c.Name, &c.Color)
	return c, err
}

// containsID builds a jsonb containment predicate for category_ids.
func containsID(categoryID string) sq.Sqlizer {
	raw, _ := json.Marshal([]string{categoryID})
	return sq.Expr("category_ids @> ?::jsonb", string(raw))
}

func (r *subscriptionRepository) List(ctx context.Context, profileID string) ([]models.Subscription, error) {
	return queryMany(ctx, r.DB, "subscriptionRepository.List",
		psql.Select(subscriptionColumns...).From(subscriptionsTable).
			Where(sq.Eq{"profile_id": profileID}).
			OrderBy("created_at DESC", "id"),
		scanSubscription)
}

func (r *subscriptionRepository) ListByCategory(ctx context.Context, profileID, categoryID string) ([]models.Subscription, error) {
	return queryMany(ctx, r.DB, "subscriptionRepository.ListByCategory",
		psql.Select(subscriptionColumns...).From(subscriptionsTable).
			Where(sq.Eq{"profile_id": profileID}).
			Where(containsID(categoryID)).
			OrderBy("created_at DESC", "id"),
		scanSubscription)
}

func (r *subscriptionRepository) Create(ctx context.Context, s models.Subscription) (models.Subscription, error) {
	if s.CategoryIDs == nil {
		s.CategoryIDs = models.StringList{}
	}

	return queryOne(ctx, r.DB, "subscriptionRepository.Create",
		psql.Insert(subscriptionsTable).
			Columns("id", "profile_id", "name", "price", "currency", "billing_frequency",
				"category_ids", "active", "next_billing_date", "notes").
			Values(r.ids.Generate(), s.ProfileID, s.Name, s.Price, s.Currency, string(s.BillingFrequency),
				s.CategoryIDs, s.Active, s.NextBillingDate, s.Notes).
			Suffix("RETURNING "+joinColumns(subscriptionColumns)),
		scanSubscription)
}

func (r *subscriptionRepository) Update(ctx context.Context, profileID, id string, update models.SubscriptionUpdate) (models.Subscription, error) {
	set := map[string]any{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Currency != nil {
		set["currency"] = *update.Currency
	}
	if update.BillingFrequency != nil {
		set["billing_frequency"] = string(*update.BillingFrequency)
	}
	if update.CategoryIDs != nil {
		set["category_ids"] = update.CategoryIDs
	}
	if update.Active != nil {
		set["active"] = *update.Active
	}
	if update.NextBillingDate != nil {
		set["next_billing_date"] = *update.NextBillingDate
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if len(set) == 0 {
		return models.Subscription{}, ErrNothingToUpdate
	}
	set["updated_at"] = sq.Expr("now()")

	return queryOne(ctx, r.DB, "subscriptionRepository.Update",
		psql.Update(subscriptionsTable).SetMap(set).
			Where(sq.Eq{"id": id, "profile_id": profileID}).
			Suffix("RETURNING "+joinColumns(subscriptionColumns)),
		scanSubscription)
}

func (r *subscriptionRepository) Delete(ctx context.Context, profileID, id string) error {
	return deleteOwned(ctx, r.DB, "subscriptionRepository.Delete", subscriptionsTable, profileID, id)
}

// ── Categories ──────────────────────────────────────────────────────────────

func (r *subscriptionRepository) ListCategories(ctx context.Context, profileID string) ([]models.SubscriptionCategory, error) {
	return queryMany(ctx, r.DB, "subscriptionRepository.ListCategories",
		psql.Select(categoryColumns...).From(subscriptionCategoriesTable).
			Where(sq.Eq{"profile_id": profileID}).
			OrderBy("name"),
		scanCategory)
}

func (r *subscriptionRepository) CreateCategory(ctx context.Context, c models.SubscriptionCategory) (models.SubscriptionCategory, error) {
	return queryOne(ctx, r.DB, "subscriptionRepository.CreateCategory",
		psql.Insert(subscriptionCategoriesTable).
			Columns("id", "profile_id", "name", "color").
			Values(r.ids.Generate(), c.ProfileID, c.Name, c.Color).
			Suffix("RETURNING "+joinColumns(categoryColumns)),
		scanCategory)
}

func (r *subscriptionRepository) UpdateCategory(ctx context.Context, c models.SubscriptionCategory) (models.SubscriptionCategory, error) {
	return queryOne(ctx, r.DB, "subscriptionRepository.UpdateCategory",
		psql.Update(subscriptionCategoriesTable).
			Set("name", c.Name).
			Set("color", c.Color).
			Where(sq.Eq{"id": c.ID, "profile_id": c.ProfileID}).
			Suffix("RETURNING "+joinColumns(categoryColumns)),
		scanCategory)
}

// DeleteCategory removes the category and strips its id from every
// subscription of the profile in one transaction.
func (r *subscriptionRepository) DeleteCategory(ctx context.Context, profileID, id string) error {
	const op = "subscriptionRepository.DeleteCategory"

	err := r.inTx(ctx, op, func(tx *sql.Tx) error {
		query, args, err := buildQuery(ctx, op,
			psql.Update(subscriptionsTable).
				Set("category_ids", sq.Expr("category_ids - ?::text", id)).
				Set("updated_at", sq.Expr("now()")).
				Where(sq.Eq{"profile_id": profileID}).
				Where(containsID(id)))
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}

		query, args, err = buildQuery(ctx, op,
			psql.Delete(subscriptionCategoriesTable).Where(sq.Eq{"id": id, "profile_id": profileID}))
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrNotFound
		}
		return nil
	})
	return translateError(err)
}
