package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Objectives ──────────────────────────────────────────────────────────────

func TestObjectives_Toggle(t *testing.T) {
	in := Objectives{
		{ID: "X", Text: "ship", Completed: false, Order: 0},
		{ID: "Y", Text: "rest", Completed: true, Order: 1},
	}

	out, ok := in.Toggle("X")
	require.True(t, ok)
	assert.Equal(t, Objectives{
		{ID: "X", Text: "ship", Completed: true, Order: 0},
		{ID: "Y", Text: "rest", Completed: true, Order: 1},
	}, out)
	assert.False(t, in[0].Completed, "input must not be mutated")

	_, ok = in.Toggle("missing")
	assert.False(t, ok)
}

func TestObjectives_ScanValue(t *testing.T) {
	var o Objectives
	require.NoError(t, o.Scan([]byte(`[{"id":"a","text":"t","completed":true,"order":2}]`)))
	assert.Equal(t, Objectives{{ID: "a", Text: "t", Completed: true, Order: 2}}, o)

	require.NoError(t, o.Scan(nil))
	assert.Empty(t, o)

	v, err := Objectives(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)

	assert.Error(t, o.Scan(42))
}

// ── WeekStart ───────────────────────────────────────────────────────────────

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"monday", "2024-01-01", "2024-01-01"},
		{"wednesday", "2024-01-03", "2024-01-01"},
		{"sunday", "2024-01-07", "2024-01-01"},
		{"across month", "2024-03-02", "2024-02-26"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, WeekStart(d).Format(DateLayout))
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("2024-13-01")
	assert.Error(t, err)
}

// ── ReorderImages ───────────────────────────────────────────────────────────

func TestReorderImages(t *testing.T) {
	images := []WinnersBibleImage{
		{ID: "A", DisplayOrder: 0},
		{ID: "B", DisplayOrder: 1},
		{ID: "C", DisplayOrder: 2},
	}

	out := ReorderImages(images, []string{"C", "A", "B"})

	require.Len(t, out, 3)
	assert.Equal(t, "C", out[0].ID)
	assert.Equal(t, 0, out[0].DisplayOrder)
	assert.Equal(t, "A", out[1].ID)
	assert.Equal(t, 1, out[1].DisplayOrder)
	assert.Equal(t, "B", out[2].ID)
	assert.Equal(t, 2, out[2].DisplayOrder)
	assert.Equal(t, 0, images[0].DisplayOrder)
}

func TestReorderImages_UnlistedKeepTheirOrder(t *testing.T) {
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	images := []WinnersBibleImage{
		{ID: "A", DisplayOrder: 0, CreatedAt: created},
		{ID: "B", DisplayOrder: 1, CreatedAt: created.Add(time.Minute)},
		{ID: "C", DisplayOrder: 2, CreatedAt: created.Add(2 * time.Minute)},
	}

	// only B is sent, as the backend only rewrites listed rows
	out := ReorderImages(images, []string{"B"})

	require.Len(t, out, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{out[0].ID, out[1].ID, out[2].ID})
	assert.Equal(t, []int{0, 0, 2}, []int{out[0].DisplayOrder, out[1].DisplayOrder, out[2].DisplayOrder})
}

// ── JSON columns ────────────────────────────────────────────────────────────

func TestJSONMap(t *testing.T) {
	var m JSONMap
	require.NoError(t, m.Scan(`{"protein":180}`))
	assert.Equal(t, JSONMap{"protein": float64(180)}, m)

	merged := m.Merge(JSONMap{"fat": 60})
	assert.Len(t, merged, 2)
	assert.Len(t, m, 1)

	v, err := JSONMap(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), v)
}

func TestStringList(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte(`["a","b"]`)))
	assert.True(t, l.Contains("b"))
	assert.False(t, l.Contains("c"))
}

// ── Partial updates ─────────────────────────────────────────────────────────

func TestProfileUpdate_Apply(t *testing.T) {
	p := NewDefaultProfile("user_1")
	bmr := 1800
	h := 180.5

	got := ProfileUpdate{BMR: &bmr, Height: &h}.Apply(p)

	assert.Equal(t, 1800, got.BMR)
	assert.Equal(t, &h, got.Height)
	assert.Nil(t, got.Weight)
	assert.Nil(t, got.Gender)
	assert.Equal(t, DefaultBMR, p.BMR)
	assert.True(t, ProfileUpdate{}.IsEmpty())
}

func TestSubscription_IsActive(t *testing.T) {
	f, tr := false, true
	assert.True(t, Subscription{}.IsActive())
	assert.True(t, Subscription{Active: &tr}.IsActive())
	assert.False(t, Subscription{Active: &f}.IsActive())
}

func TestAppBuildInfo_Response(t *testing.T) {
	r := NewAppBuildInfo("1.0.0", "", "abc").Response()
	assert.Equal(t, VersionResponse{Version: "1.0.0", Date: "N/A", Commit: "abc"}, r)
}
