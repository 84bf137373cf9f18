package state

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/mock"
	"github.com/MKhiriev/go-health-keeper/internal/querykey"
	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettings_MergePatchesProfileToo(t *testing.T) {
	ctrl := gomock.NewController(t)
	settingsSvc := mock.NewMockSettingsService(ctrl)
	profileSvc := mock.NewMockProfileService(ctrl)
	c := newTestCache()
	settings := NewSettings(settingsSvc, c)
	profile := NewProfile(profileSvc, c)
	ctx := context.Background()
	s := c.Scope(testProfile)

	profileSvc.EXPECT().GetByID(gomock.Any(), testProfile).Return(models.Profile{
		ID:              testProfile,
		TrackerSettings: models.JSONMap{"water": true},
	}, nil)
	settingsSvc.EXPECT().Get(gomock.Any(), testProfile).Return(models.Settings{
		TrackerSettings: models.JSONMap{"water": true},
	}, nil)
	profile.Current(ctx, testProfile)
	settings.Current(ctx, testProfile)

	patch := models.JSONMap{"sleep": true}
	settingsSvc.EXPECT().UpdateTrackerSettings(gomock.Any(), testProfile, patch).
		DoAndReturn(func(context.Context, string, models.JSONMap) (models.Settings, error) {
			st, _ := cache.Get[models.Settings](s, querykey.Settings.Current())
			assert.Equal(t, models.JSONMap{"water": true, "sleep": true}, st.TrackerSettings)
			p, _ := cache.Get[models.Profile](s, querykey.Profile.Current())
			assert.Equal(t, models.JSONMap{"water": true, "sleep": true}, p.TrackerSettings)
			return models.Settings{}, errRemote
		})

	_, err := settings.UpdateTrackerSettings(ctx, testProfile, patch)
	require.ErrorIs(t, err, errRemote)

	p, _ := cache.Get[models.Profile](s, querykey.Profile.Current())
	assert.Equal(t, models.JSONMap{"water": true}, p.TrackerSettings)
}

func TestSettings_LookupCreateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockSettingsService(ctrl)
	c := newTestCache()
	a := NewSettings(svc, c)
	ctx := context.Background()

	svc.EXPECT().ListCompounds(gomock.Any(), testProfile).Return([]models.Compound{{ID: "k1", Name: "BPC"}}, nil).Times(1)
	a.Compounds(ctx, testProfile)

	svc.EXPECT().CreateCompound(gomock.Any(), models.Compound{ProfileID: testProfile, Name: "TB"}).
		Return(models.Compound{ID: "k2", ProfileID: testProfile, Name: "TB"}, nil)
	_, err := a.CreateCompound(ctx, testProfile, models.Compound{Name: "TB"})
	require.NoError(t, err)
	assert.Len(t, a.Compounds(ctx, testProfile).Data, 2)

	svc.EXPECT().DeleteCompound(gomock.Any(), testProfile, "k1").Return(errRemote)
	require.ErrorIs(t, a.DeleteCompound(ctx, testProfile, "k1"), errRemote)
	assert.Len(t, a.Compounds(ctx, testProfile).Data, 2)
}

func TestProfile_UpdateOptimistic(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockProfileService(ctrl)
	c := newTestCache()
	a := NewProfile(svc, c)
	ctx := context.Background()
	s := c.Scope(testProfile)

	svc.EXPECT().GetByID(gomock.Any(), testProfile).Return(models.Profile{ID: testProfile, BMR: 2000}, nil)
	a.Current(ctx, testProfile)

	bmr := 1850
	upd := models.ProfileUpdate{BMR: &bmr}
	svc.EXPECT().Update(gomock.Any(), testProfile, upd).DoAndReturn(func(context.Context, string, models.ProfileUpdate) (models.Profile, error) {
		p, _ := cache.Get[models.Profile](s, querykey.Profile.Current())
		assert.Equal(t, 1850, p.BMR)
		return p, nil
	})

	got, err := a.Update(ctx, testProfile, upd)
	require.NoError(t, err)
	assert.Equal(t, 1850, got.BMR)
	assert.True(t, s.IsStale(querykey.Profile.Current()))
}
