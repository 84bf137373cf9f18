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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProfileSvc(t *testing.T) (*profileService, *mock.MockProfileRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProfileRepository(ctrl)

	svc := NewProfileService(repo, validators.NewStructValidator(), logger.Nop()).(*profileService)
	return svc, repo
}

// ── GetOrCreate ────────────────────────────────────────────────────────────

func TestProfileService_GetOrCreate_FirstCallCreatesDefaults(t *testing.T) {
	svc, repo := newTestProfileSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetOrCreate(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Profile) (models.Profile, bool, error) {
			assert.Equal(t, "user_1", p.SubjectID)
			assert.Equal(t, models.DefaultBMR, p.BMR)
			assert.Nil(t, p.Height)
			assert.Nil(t, p.Weight)
			assert.Nil(t, p.Gender)
			p.ID = "p1"
			return p, true, nil
		})

	got, err := svc.GetOrCreate(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
	assert.Equal(t, 2000, got.BMR)
}

func TestProfileService_GetOrCreate_SecondCallReturnsSameRow(t *testing.T) {
	svc, repo := newTestProfileSvc(t)
	ctx := context.Background()
	stored := models.Profile{ID: "p1", SubjectID: "user_1", BMR: 2000}

	gomock.InOrder(
		repo.EXPECT().GetOrCreate(ctx, gomock.Any()).Return(stored, true, nil),
		repo.EXPECT().GetOrCreate(ctx, gomock.Any()).Return(stored, false, nil),
	)

	first, err := svc.GetOrCreate(ctx, "user_1")
	require.NoError(t, err)
	second, err := svc.GetOrCreate(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProfileService_GetOrCreate_EmptySubject(t *testing.T) {
	svc, _ := newTestProfileSvc(t)

	_, err := svc.GetOrCreate(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoSubject)
}

// ── Get / Update ───────────────────────────────────────────────────────────

func TestProfileService_Get_Absent(t *testing.T) {
	svc, repo := newTestProfileSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetBySubject(ctx, "user_1").Return(nil, nil)

	got, err := svc.Get(ctx, "user_1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProfileService_Update_Empty(t *testing.T) {
	svc, _ := newTestProfileSvc(t)

	_, err := svc.Update(context.Background(), "p1", models.ProfileUpdate{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestProfileService_Update_Invalid(t *testing.T) {
	svc, _ := newTestProfileSvc(t)
	bmr := -5

	_, err := svc.Update(context.Background(), "p1", models.ProfileUpdate{BMR: &bmr})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProfileService_Update_NotFound(t *testing.T) {
	svc, repo := newTestProfileSvc(t)
	ctx := context.Background()
	bmr := 1800
	upd := models.ProfileUpdate{BMR: &bmr}

	repo.EXPECT().Update(ctx, "p1", upd).Return(models.Profile{}, store.ErrNotFound)

	_, err := svc.Update(ctx, "p1", upd)
	assert.True(t, errors.Is(err, ErrNotFound))
}

// ── CalculateBMR ───────────────────────────────────────────────────────────

func TestCalculateBMR(t *testing.T) {
	tests := []struct {
		name string
		in   models.BMRInput
		want int
	}{
		// 10*80 + 6.25*180 - 5*30 + 5 = 1780
		{name: "male", in: models.BMRInput{WeightKg: 80, HeightCm: 180, Age: 30, Gender: "male"}, want: 1780},
		// 10*60 + 6.25*165 - 5*25 - 161 = 1345.25
		{name: "female", in: models.BMRInput{WeightKg: 60, HeightCm: 165, Age: 25, Gender: "Female"}, want: 1345},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateBMR(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateBMR_Invalid(t *testing.T) {
	_, err := CalculateBMR(models.BMRInput{WeightKg: 80, HeightCm: 180, Age: 30, Gender: "other"})
	assert.ErrorIs(t, err, ErrUnknownGender)

	_, err = CalculateBMR(models.BMRInput{WeightKg: 0, HeightCm: 180, Age: 30, Gender: "male"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
