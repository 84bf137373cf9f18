package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructValidator_Subscription(t *testing.T) {
	v := NewStructValidator()
	ctx := context.Background()

	valid := models.Subscription{
		Name:             "Gym",
		Price:            decimal.RequireFromString("49.99"),
		BillingFrequency: models.BillingMonthly,
	}
	require.NoError(t, v.Validate(ctx, valid))

	negative := valid
	negative.Price = decimal.RequireFromString("-1")
	err := v.Validate(ctx, negative)
	assert.ErrorIs(t, err, ErrInvalidField)
	assert.Contains(t, err.Error(), "price")

	badFrequency := valid
	badFrequency.BillingFrequency = "daily"
	err = v.Validate(ctx, &badFrequency)
	assert.ErrorIs(t, err, ErrInvalidField)
	assert.Contains(t, err.Error(), "billing_frequency")

	badDate := valid
	date := "16/10/2026"
	badDate.NextBillingDate = &date
	assert.ErrorIs(t, v.Validate(ctx, badDate), ErrInvalidField)
}

func TestStructValidator_PartialUpdate(t *testing.T) {
	v := NewStructValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.SubscriptionUpdate{}))

	price := decimal.RequireFromString("-5")
	assert.ErrorIs(t, v.Validate(ctx, models.SubscriptionUpdate{Price: &price}), ErrInvalidField)

	bmr := -1
	assert.ErrorIs(t, v.Validate(ctx, models.ProfileUpdate{BMR: &bmr}), ErrInvalidField)
}

func TestStructValidator_Fields(t *testing.T) {
	v := NewStructValidator()
	entry := models.CalorieEntry{Description: "", Calories: 100}

	assert.ErrorIs(t, v.Validate(context.Background(), entry), ErrInvalidField)
	assert.NoError(t, v.Validate(context.Background(), entry, "Calories"))
}

func TestStructValidator_Objectives(t *testing.T) {
	v := NewStructValidator()
	update := models.WeeklyEntryUpdate{Objectives: models.Objectives{{ID: "o1", Text: ""}}}

	err := v.Validate(context.Background(), update)
	assert.ErrorIs(t, err, ErrInvalidField)
	assert.Contains(t, err.Error(), "text")
}

func TestStructValidator_Unsupported(t *testing.T) {
	v := NewStructValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), nil), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidateDateRange(t *testing.T) {
	assert.NoError(t, ValidateDateRange("2026-10-01", "2026-10-16"))
	assert.NoError(t, ValidateDateRange("2026-10-16", "2026-10-16"))
	assert.ErrorIs(t, ValidateDateRange("2026-10-17", "2026-10-16"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDateRange("2026-13-01", "2026-10-16"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate("yesterday"), ErrInvalidDate)
}

func TestValidateIDs(t *testing.T) {
	assert.NoError(t, ValidateIDs([]string{"a", "b"}))
	assert.ErrorIs(t, ValidateIDs(nil), ErrEmptyIDs)
	assert.ErrorIs(t, ValidateIDs([]string{"a", "a"}), ErrDuplicateIDs)
}
