package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/mock"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSubscriptionSvc(t *testing.T) (SubscriptionService, *mock.MockSubscriptionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSubscriptionRepository(ctrl)

	svc := NewSubscriptionValidationService(validators.NewStructValidator()).
		Wrap(NewSubscriptionService(repo, logger.Nop()))
	return svc, repo
}

func sub(price string, f models.BillingFrequency, active *bool) models.Subscription {
	return models.Subscription{
		Name:             "sub",
		Price:            decimal.RequireFromString(price),
		BillingFrequency: f,
		Active:           active,
	}
}

func boolPtr(b bool) *bool { return &b }

// ── Totals ─────────────────────────────────────────────────────────────────

func TestCalculateTotals_MonthlyAndYearly(t *testing.T) {
	subs := []models.Subscription{
		sub("10", models.BillingMonthly, boolPtr(true)),
		sub("120", models.BillingYearly, boolPtr(true)),
	}

	assert.True(t, decimal.NewFromInt(20).Equal(CalculateMonthlyTotal(subs)), CalculateMonthlyTotal(subs).String())
	assert.True(t, decimal.NewFromInt(240).Equal(CalculateYearlyTotal(subs)), CalculateYearlyTotal(subs).String())
}

func TestCalculateTotals_ActiveFlag(t *testing.T) {
	subs := []models.Subscription{
		sub("10", models.BillingMonthly, nil),
		sub("5", models.BillingMonthly, boolPtr(true)),
		sub("1000", models.BillingMonthly, boolPtr(false)),
	}

	assert.Equal(t, "15", CalculateMonthlyTotal(subs).String())
	assert.Equal(t, "180", CalculateYearlyTotal(subs).String())
}

func TestCalculateTotals_FrequencyFactors(t *testing.T) {
	tests := []struct {
		name    string
		freq    models.BillingFrequency
		price   string
		monthly string
		yearly  string
	}{
		{name: "weekly", freq: models.BillingWeekly, price: "10", monthly: "43.3", yearly: "520"},
		{name: "monthly", freq: models.BillingMonthly, price: "10", monthly: "10", yearly: "120"},
		{name: "quarterly", freq: models.BillingQuarterly, price: "30", monthly: "10", yearly: "120"},
		{name: "yearly", freq: models.BillingYearly, price: "120", monthly: "10", yearly: "120"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs := []models.Subscription{sub(tt.price, tt.freq, nil)}
			assert.True(t, decimal.RequireFromString(tt.monthly).Equal(CalculateMonthlyTotal(subs)),
				"monthly: got %s", CalculateMonthlyTotal(subs))
			assert.True(t, decimal.RequireFromString(tt.yearly).Equal(CalculateYearlyTotal(subs)),
				"yearly: got %s", CalculateYearlyTotal(subs))
		})
	}
}

func TestCalculateTotals_WeeklyIsNotTwelveMonths(t *testing.T) {
	subs := []models.Subscription{sub("10", models.BillingWeekly, nil)}

	monthlyTimesTwelve := CalculateMonthlyTotal(subs).Mul(decimal.NewFromInt(12))
	assert.False(t, monthlyTimesTwelve.Equal(CalculateYearlyTotal(subs)))
}

func TestCalculateTotals_RoundsToCents(t *testing.T) {
	totals := CalculateTotals([]models.Subscription{sub("10", models.BillingQuarterly, nil)})

	assert.Equal(t, "3.33", totals.Monthly.String())
	assert.Equal(t, "40", totals.Yearly.String())
}

func TestCalculateTotals_Empty(t *testing.T) {
	assert.True(t, CalculateMonthlyTotal(nil).IsZero())
	assert.True(t, CalculateYearlyTotal(nil).IsZero())
}

func TestSubscriptionService_Totals(t *testing.T) {
	svc, repo := newTestSubscriptionSvc(t)
	ctx := context.Background()

	repo.EXPECT().List(ctx, "p1").Return([]models.Subscription{
		sub("10", models.BillingMonthly, nil),
		sub("120", models.BillingYearly, nil),
	}, nil)

	totals, err := svc.Totals(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "20", totals.Monthly.String())
	assert.Equal(t, "240", totals.Yearly.String())
}

// ── Validation wrapper ─────────────────────────────────────────────────────

func TestSubscriptionService_Create_InvalidFrequency(t *testing.T) {
	svc, _ := newTestSubscriptionSvc(t)

	_, err := svc.Create(context.Background(), sub("10", "daily", nil))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDataProvided))
}

func TestSubscriptionService_Create_NegativePrice(t *testing.T) {
	svc, _ := newTestSubscriptionSvc(t)

	_, err := svc.Create(context.Background(), sub("-1", models.BillingMonthly, nil))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDataProvided))
	assert.Contains(t, err.Error(), "price")
}

func TestSubscriptionService_Create_PassesThrough(t *testing.T) {
	svc, repo := newTestSubscriptionSvc(t)
	ctx := context.Background()
	in := sub("9.99", models.BillingMonthly, nil)
	in.ProfileID = "p1"

	repo.EXPECT().Create(ctx, in).Return(models.Subscription{ID: "s1", ProfileID: "p1"}, nil)

	created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "s1", created.ID)
}

func TestSubscriptionService_ListByCategory_EmptyID(t *testing.T) {
	svc, _ := newTestSubscriptionSvc(t)

	_, err := svc.ListByCategory(context.Background(), "p1", "")
	assert.True(t, errors.Is(err, ErrInvalidDataProvided))
}

func TestSubscriptionService_CreateCategory_BadColor(t *testing.T) {
	svc, _ := newTestSubscriptionSvc(t)

	_, err := svc.CreateCategory(context.Background(), models.SubscriptionCategory{Name: "Media", Color: "blue"})
	assert.True(t, errors.Is(err, ErrInvalidDataProvided))
}

// ── Error translation ──────────────────────────────────────────────────────

func TestSubscriptionService_Delete_NotFound(t *testing.T) {
	svc, repo := newTestSubscriptionSvc(t)
	ctx := context.Background()

	backend := errors.Join(store.ErrNotFound, errors.New("no rows in result set"))
	repo.EXPECT().Delete(ctx, "p1", "s1").Return(backend)

	err := svc.Delete(ctx, "p1", "s1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, store.ErrNotFound))
	assert.Contains(t, err.Error(), "no rows in result set")
}

func TestSubscriptionService_CreateCategory_Conflict(t *testing.T) {
	svc, repo := newTestSubscriptionSvc(t)
	ctx := context.Background()
	cat := models.SubscriptionCategory{ProfileID: "p1", Name: "Media"}

	repo.EXPECT().CreateCategory(ctx, cat).Return(models.SubscriptionCategory{}, store.ErrConflict)

	_, err := svc.CreateCategory(ctx, cat)
	assert.True(t, errors.Is(err, ErrConflict))
}
