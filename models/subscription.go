package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingFrequency is the recurrence period of a subscription price.
type BillingFrequency string

const (
	BillingWeekly    BillingFrequency = "weekly"
	BillingMonthly   BillingFrequency = "monthly"
	BillingQuarterly BillingFrequency = "quarterly"
	BillingYearly    BillingFrequency = "yearly"
)

// Valid reports whether f is one of the known frequencies.
func (f BillingFrequency) Valid() bool {
	switch f {
	case BillingWeekly, BillingMonthly, BillingQuarterly, BillingYearly:
		return true
	}
	return false
}

// Subscription is a recurring-cost record. Active is nullable: only an
// explicit false excludes the subscription from totals.
type Subscription struct {
	ID               string           `json:"id"`
	ProfileID        string           `json:"profile_id"`
	Name             string           `json:"name" validate:"required,max=128"`
	Price            decimal.Decimal  `json:"price" validate:"gte=0"`
	Currency         string           `json:"currency" validate:"omitempty,len=3"`
	BillingFrequency BillingFrequency `json:"billing_frequency" validate:"required,oneof=weekly monthly quarterly yearly"`
	CategoryIDs      StringList       `json:"category_ids" validate:"omitempty,dive,required"`
	Active           *bool            `json:"active"`
	NextBillingDate  *string          `json:"next_billing_date" validate:"omitempty,datetime=2006-01-02"`
	Notes            *string          `json:"notes"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// IsActive reports whether the subscription counts toward totals.
func (s Subscription) IsActive() bool {
	return s.Active == nil || *s.Active
}

// SubscriptionUpdate is a partial subscription update.
type SubscriptionUpdate struct {
	Name             *string           `json:"name,omitempty" validate:"omitempty,min=1,max=128"`
	Price            *decimal.Decimal  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency         *string           `json:"currency,omitempty" validate:"omitempty,len=3"`
	BillingFrequency *BillingFrequency `json:"billing_frequency,omitempty" validate:"omitempty,oneof=weekly monthly quarterly yearly"`
	CategoryIDs      StringList        `json:"category_ids,omitempty" validate:"omitempty,dive,required"`
	Active           *bool             `json:"active,omitempty"`
	NextBillingDate  *string           `json:"next_billing_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes            *string           `json:"notes,omitempty"`
}

// Apply returns s with the update applied.
func (u SubscriptionUpdate) Apply(s Subscription) Subscription {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Price != nil {
		s.Price = *u.Price
	}
	if u.Currency != nil {
		s.Currency = *u.Currency
	}
	if u.BillingFrequency != nil {
		s.BillingFrequency = *u.BillingFrequency
	}
	if u.CategoryIDs != nil {
		s.CategoryIDs = u.CategoryIDs
	}
	if u.Active != nil {
		s.Active = u.Active
	}
	if u.NextBillingDate != nil {
		s.NextBillingDate = u.NextBillingDate
	}
	if u.Notes != nil {
		s.Notes = u.Notes
	}
	return s
}

// SubscriptionCategory groups subscriptions. Membership lives on the
// subscription as an id list.
type SubscriptionCategory struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	Name      string `json:"name" validate:"required,max=64"`
	Color     string `json:"color" validate:"omitempty,hexcolor"`
}

// SubscriptionTotals is the derived monthly and yearly cost of active subscriptions.
type SubscriptionTotals struct {
	Monthly decimal.Decimal `json:"monthly"`
	Yearly  decimal.Decimal `json:"yearly"`
}
