package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"UMS_TALENTA_BACK-END/internal/config"
	"UMS_TALENTA_BACK-END/internal/dto"
	"UMS_TALENTA_BACK-END/internal/handlers"
	"UMS_TALENTA_BACK-END/internal/middleware"
	"UMS_TALENTA_BACK-END/internal/models"
	"UMS_TALENTA_BACK-END/internal/routes"
	"UMS_TALENTA_BACK-END/internal/store"
)

const testPassword = "Kopi-Susu-99"

// today as seen by date checks
var testToday = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	t      *testing.T
	db     *fakeDB
	cache  *fakeCache
	cfg    *config.Config
	router http.Handler
	google *handlers.GoogleAuthHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:          "handler-test-secret",
			Issuer:          "ums-talenta-test",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: time.Hour,
		},
		RateLimit: config.RateLimitConfig{AuthLimit: 100, AuthWindow: time.Minute, AuthBlock: time.Minute},
		GoogleOAuth: config.GoogleOAuthConfig{
			ClientID:            "client",
			ClientSecret:        "secret",
			RedirectURL:         "http://localhost:8080/api/auth/google/callback",
			FrontendCallbackURL: "http://frontend.test/callback",
		},
		Media: config.MediaConfig{Root: t.TempDir(), URLPrefix: "/media/", MaxUploadBytes: 64 << 10},
	}
	return buildEnv(t, cfg)
}

func buildEnv(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()
	logger := zap.NewNop()
	db := newFakeDB()
	cache := newFakeCache()

	google := handlers.NewGoogleAuthHandler(db, cache, cfg, logger)
	h := routes.Handlers{
		Auth:         handlers.NewAuthHandler(db, cache, &cfg.JWT, logger),
		Google:       google,
		Health:       handlers.NewHealthHandler(pinger{}, pinger{}, logger),
		Profile:      handlers.NewProfileHandler(db, cfg.Media, logger),
		MyTalent:     handlers.NewMyTalentHandler(db, db, logger).WithClock(func() time.Time { return testToday }),
		Talents:      handlers.NewTalentHandler(db, db, cfg.Media.URLPrefix, logger),
		Endorsements: handlers.NewEndorsementHandler(db, db, logger),
		Admin:        handlers.NewAdminHandler(db, db, cfg.Media, logger),
	}
	proxies, err := middleware.ParseTrustedProxies(cfg.Server.TrustedProxies)
	require.NoError(t, err)
	router := routes.NewRouter(h, routes.Options{
		JWT:            &cfg.JWT,
		RateLimit:      cfg.RateLimit,
		Media:          cfg.Media,
		Limiter:        cache,
		Logger:         logger,
		TrustedProxies: proxies,
	})
	return &testEnv{t: t, db: db, cache: cache, cfg: cfg, router: router, google: google}
}

// student registers a student directly in the store and returns the user
func (e *testEnv) student(nim, name string) *models.User {
	e.t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(e.t, err)
	u, err := e.db.CreateStudent(context.Background(), store.NewStudent{
		Email:        lower(nim) + "@student.ums.ac.id",
		PasswordHash: string(hash),
		FullName:     name,
		NIM:          nim,
		Prodi:        "Informatika",
		Angkatan:     "2023",
	})
	require.NoError(e.t, err)
	return u
}

func (e *testEnv) admin() *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	return e.db.addAdmin("admin@ums.ac.id", string(hash))
}

func (e *testEnv) profileOf(u *models.User) *models.ProfileDetail {
	e.t.Helper()
	p, err := e.db.GetDetailByUserID(context.Background(), u.ID)
	require.NoError(e.t, err)
	return p
}

func (e *testEnv) token(u *models.User) string {
	e.t.Helper()
	access, _, err := middleware.GenerateTokenPair(*u, &e.cfg.JWT)
	require.NoError(e.t, err)
	return access
}

// do sends body (marshalled unless already a reader) through the router
func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(e.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func fieldErrors(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	return decode[map[string]string](t, rec)
}

func profileResponse(t *testing.T, rec *httptest.ResponseRecorder) dto.ProfileResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[dto.ProfileResponse](t, rec)
}

func lower(s string) string {
	return string(bytes.ToLower([]byte(s)))
}
