package service

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/shopspring/decimal"
)

type subscriptionService struct {
	subscriptions store.SubscriptionRepository

	logger *logger.Logger
}

// NewSubscriptionService returns the repository-backed service. Input
// validation is added by wrapping it with [NewSubscriptionValidationService].
func NewSubscriptionService(subscriptions store.SubscriptionRepository, logger *logger.Logger) SubscriptionService {
	return &subscriptionService{
		subscriptions: subscriptions,
		logger:        logger,
	}
}

func (s *subscriptionService) List(ctx context.Context, profileID string) ([]models.Subscription, error) {
	list, err := s.subscriptions.List(ctx, profileID)
	return list, mapStoreError(err)
}

func (s *subscriptionService) ListByCategory(ctx context.Context, profileID, categoryID string) ([]models.Subscription, error) {
	list, err := s.subscriptions.ListByCategory(ctx, profileID, categoryID)
	return list, mapStoreError(err)
}

func (s *subscriptionService) Create(ctx context.Context, sub models.Subscription) (models.Subscription, error) {
	created, err := s.subscriptions.Create(ctx, sub)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "subscriptionService.Create").Msg("error creating subscription")
		return models.Subscription{}, mapStoreError(err)
	}
	return created, nil
}

func (s *subscriptionService) Update(ctx context.Context, profileID, id string, update models.SubscriptionUpdate) (models.Subscription, error) {
	updated, err := s.subscriptions.Update(ctx, profileID, id, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "subscriptionService.Update").Str("id", id).Msg("error updating subscription")
		return models.Subscription{}, mapStoreError(err)
	}
	return updated, nil
}

func (s *subscriptionService) Delete(ctx context.Context, profileID, id string) error {
	return mapStoreError(s.subscriptions.Delete(ctx, profileID, id))
}

func (s *subscriptionService) Totals(ctx context.Context, profileID string) (models.SubscriptionTotals, error) {
	list, err := s.subscriptions.List(ctx, profileID)
	if err != nil {
		return models.SubscriptionTotals{}, mapStoreError(err)
	}
	return CalculateTotals(list), nil
}

func (s *subscriptionService) ListCategories(ctx context.Context, profileID string) ([]models.SubscriptionCategory, error) {
	list, err := s.subscriptions.ListCategories(ctx, profileID)
	return list, mapStoreError(err)
}

func (s *subscriptionService) CreateCategory(ctx context.Context, category models.SubscriptionCategory) (models.SubscriptionCategory, error) {
	created, err := s.subscriptions.CreateCategory(ctx, category)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "subscriptionService.CreateCategory").Msg("error creating category")
		return models.SubscriptionCategory{}, mapStoreError(err)
	}
	return created, nil
}

func (s *subscriptionService) UpdateCategory(ctx context.Context, category models.SubscriptionCategory) (models.SubscriptionCategory, error) {
	updated, err := s.subscriptions.UpdateCategory(ctx, category)
	if err != nil {
		return models.SubscriptionCategory{}, mapStoreError(err)
	}
	return updated, nil
}

func (s *subscriptionService) DeleteCategory(ctx context.Context, profileID, id string) error {
	if err := s.subscriptions.DeleteCategory(ctx, profileID, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "subscriptionService.DeleteCategory").Str("id", id).Msg("error deleting category")
		return mapStoreError(err)
	}
	return nil
}

// ── Totals ─────────────────────────────────────────────────────────────────

var (
	weeksPerMonth = decimal.RequireFromString("4.33")
	weeksPerYear  = decimal.NewFromInt(52)
	monthsPerYear = decimal.NewFromInt(12)
	quarters      = decimal.NewFromInt(4)
	three         = decimal.NewFromInt(3)
)

// monthlyAmount normalises a price to one month. Unknown frequencies are
// taken as monthly.
func monthlyAmount(price decimal.Decimal, f models.BillingFrequency) decimal.Decimal {
	switch f {
	case models.BillingWeekly:
		return price.Mul(weeksPerMonth)
	case models.BillingQuarterly:
		return price.Div(three)
	case models.BillingYearly:
		return price.Div(monthsPerYear)
	default:
		return price
	}
}

func yearlyAmount(price decimal.Decimal, f models.BillingFrequency) decimal.Decimal {
	switch f {
	case models.BillingWeekly:
		return price.Mul(weeksPerYear)
	case models.BillingQuarterly:
		return price.Mul(quarters)
	case models.BillingYearly:
		return price
	default:
		return price.Mul(monthsPerYear)
	}
}

// CalculateMonthlyTotal sums the monthly cost of every subscription whose
// active flag is not explicitly false.
func CalculateMonthlyTotal(subs []models.Subscription) decimal.Decimal {
	total := decimal.Zero
	for _, s := range subs {
		if s.IsActive() {
			total = total.Add(monthlyAmount(s.Price, s.BillingFrequency))
		}
	}
	return total
}

// CalculateYearlyTotal sums the yearly cost of every subscription whose
// active flag is not explicitly false.
func CalculateYearlyTotal(subs []models.Subscription) decimal.Decimal {
	total := decimal.Zero
	for _, s := range subs {
		if s.IsActive() {
			total = total.Add(yearlyAmount(s.Price, s.BillingFrequency))
		}
	}
	return total
}

// CalculateTotals returns both totals rounded to cents.
func CalculateTotals(subs []models.Subscription) models.SubscriptionTotals {
	return models.SubscriptionTotals{
		Monthly: CalculateMonthlyTotal(subs).Round(2),
		Yearly:  CalculateYearlyTotal(subs).Round(2),
	}
}
