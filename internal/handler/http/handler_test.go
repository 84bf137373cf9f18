package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/config"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/mock"
	"github.com/MKhiriev/go-health-keeper/internal/profile"
	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/internal/state"
	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testToken     = "good-token"
	testSubject   = "user_1"
	testProfileID = "p-1"
)

type testDeps struct {
	auth          *mock.MockAuthService
	appInfo       *mock.MockAppInfoService
	profiles      *mock.MockProfileService
	daily         *mock.MockDailyService
	injections    *mock.MockInjectionService
	weekly        *mock.MockWeeklyService
	subscriptions *mock.MockSubscriptionService
	images        *mock.MockWinnersBibleService
	settings      *mock.MockSettingsService
	cache         *cache.Cache
}

func newTestHandlerWithConfig(t *testing.T, cfg config.Server) (*Handler, *testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := &testDeps{
		auth:          mock.NewMockAuthService(ctrl),
		appInfo:       mock.NewMockAppInfoService(ctrl),
		profiles:      mock.NewMockProfileService(ctrl),
		daily:         mock.NewMockDailyService(ctrl),
		injections:    mock.NewMockInjectionService(ctrl),
		weekly:        mock.NewMockWeeklyService(ctrl),
		subscriptions: mock.NewMockSubscriptionService(ctrl),
		images:        mock.NewMockWinnersBibleService(ctrl),
		settings:      mock.NewMockSettingsService(ctrl),
		cache:         cache.New(time.Minute, logger.Nop()),
	}
	services := &service.Services{
		AuthService:         d.auth,
		AppInfoService:      d.appInfo,
		ProfileService:      d.profiles,
		DailyService:        d.daily,
		InjectionService:    d.injections,
		WeeklyService:       d.weekly,
		SubscriptionService: d.subscriptions,
		WinnersBibleService: d.images,
		SettingsService:     d.settings,
	}
	h := NewHandler(services, state.NewAdapters(services, d.cache), profile.NewContext(d.profiles, d.cache), cfg, logger.Nop())
	return h, d
}

func newTestHandler(t *testing.T) (*Handler, *testDeps) {
	return newTestHandlerWithConfig(t, config.Server{})
}

// signedIn makes every request with testToken resolve to testProfileID.
func (d *testDeps) signedIn() {
	d.auth.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.AuthClaims{Subject: testSubject}, nil).AnyTimes()
	d.profiles.EXPECT().GetOrCreate(gomock.Any(), testSubject).
		Return(models.Profile{ID: testProfileID, SubjectID: testSubject, BMR: 1800}, nil).AnyTimes()
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Loading bool            `json:"loading"`
	Error   string          `json:"error"`
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		require.NoError(t, json.NewEncoder(buf).Encode(body))
		r = buf
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}
