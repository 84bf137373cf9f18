package state

import (
	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/service"
)

// Adapters groups the derived-state adapters sharing one cache.
type Adapters struct {
	Cache *cache.Cache

	Profile       *Profile
	Daily         *Daily
	Injections    *Injections
	Weekly        *Weekly
	Subscriptions *Subscriptions
	WinnersBible  *WinnersBible
	Settings      *Settings
}

func NewAdapters(services *service.Services, c *cache.Cache) *Adapters {
	return &Adapters{
		Cache:         c,
		Profile:       NewProfile(services.ProfileService, c),
		Daily:         NewDaily(services.DailyService, c),
		Injections:    NewInjections(services.InjectionService, c),
		Weekly:        NewWeekly(services.WeeklyService, c),
		Subscriptions: NewSubscriptions(services.SubscriptionService, c),
		WinnersBible:  NewWinnersBible(services.WinnersBibleService, c),
		Settings:      NewSettings(services.SettingsService, c),
	}
}
