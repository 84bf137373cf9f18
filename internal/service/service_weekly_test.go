package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/mock"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestWeeklySvc(t *testing.T) (WeeklyService, *mock.MockWeeklyRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockWeeklyRepository(ctrl)
	return NewWeeklyService(repo, validators.NewStructValidator(), logger.Nop()), repo
}

func TestNormalizeWeekStart(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "2024-01-01", want: "2024-01-01"}, // Monday
		{in: "2024-01-03", want: "2024-01-01"},
		{in: "2024-01-07", want: "2024-01-01"}, // Sunday
		{in: "2024-01-08", want: "2024-01-08"},
	}
	for _, tt := range tests {
		got, err := NormalizeWeekStart(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := NormalizeWeekStart("yesterday")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCurrentWeekStart(t *testing.T) {
	assert.Equal(t, "2024-03-04", CurrentWeekStart(time.Date(2024, 3, 6, 15, 0, 0, 0, time.UTC)))
}

func TestWeeklyService_Upsert_NormalizesWeek(t *testing.T) {
	svc, repo := newTestWeeklySvc(t)
	ctx := context.Background()
	why := "focus"
	upd := models.WeeklyEntryUpdate{WhyImportant: &why}

	repo.EXPECT().Upsert(ctx, "p1", "2024-01-01", upd).Return(models.WeeklyEntry{WeekStart: "2024-01-01", WhyImportant: why}, nil)

	got, err := svc.Upsert(ctx, "p1", "2024-01-04", upd)
	require.NoError(t, err)
	assert.Equal(t, "focus", got.WhyImportant)
}

func TestWeeklyService_Upsert_InvalidObjective(t *testing.T) {
	svc, _ := newTestWeeklySvc(t)

	_, err := svc.Upsert(context.Background(), "p1", "2024-01-01", models.WeeklyEntryUpdate{
		Objectives: models.Objectives{{ID: "", Text: "ship"}},
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestWeeklyService_ToggleObjective(t *testing.T) {
	svc, repo := newTestWeeklySvc(t)
	ctx := context.Background()

	toggled := models.WeeklyEntry{
		WeekStart:  "2024-01-01",
		Objectives: models.Objectives{{ID: "X", Completed: true}, {ID: "Y", Completed: true}},
	}
	repo.EXPECT().ToggleObjective(ctx, "p1", "2024-01-01", "X").Return(toggled, nil)

	got, err := svc.ToggleObjective(ctx, "p1", "2024-01-01", "X")
	require.NoError(t, err)
	assert.Equal(t, toggled, got)
}

func TestWeeklyService_ToggleObjective_Missing(t *testing.T) {
	svc, repo := newTestWeeklySvc(t)
	ctx := context.Background()

	repo.EXPECT().ToggleObjective(ctx, "p1", "2024-01-01", "Z").Return(models.WeeklyEntry{}, store.ErrObjectiveNotFound)

	_, err := svc.ToggleObjective(ctx, "p1", "2024-01-01", "Z")
	assert.ErrorIs(t, err, ErrObjectiveNotFound)
	assert.NotErrorIs(t, err, ErrNotFound)
}
