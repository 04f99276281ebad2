package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"UMS_TALENTA_BACK-END/internal/dto"
	"UMS_TALENTA_BACK-END/internal/handlers"
	"UMS_TALENTA_BACK-END/internal/store"
	"UMS_TALENTA_BACK-END/internal/validation"
)

func registerBody() map[string]string {
	return map[string]string{
		"email":     "L200230277@student.ums.ac.id",
		"full_name": "Budi Santoso",
		"password":  testPassword,
		"nim":       "l200230277",
		"prodi":     "Informatika",
		"angkatan":  "2023",
	}
}

func TestRegister_CreatesStudentAndProfile(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/auth/register", "", registerBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	user := decode[dto.UserResponse](t, rec)
	assert.Equal(t, "l200230277@student.ums.ac.id", user.Email)
	assert.Equal(t, "student", user.Role)

	login := env.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "l200230277@student.ums.ac.id", "password": testPassword,
	})
	require.Equal(t, http.StatusOK, login.Code)
	tokens := decode[dto.TokenPairResponse](t, login)

	profile := profileResponse(t, env.do(http.MethodGet, "/api/talents/me/profile", tokens.Access, nil))
	assert.Equal(t, "L200230277", profile.NIM)
	assert.Equal(t, "Budi Santoso", profile.UserFullName)
	assert.True(t, profile.IsPublic)
}

func TestRegister_ReportsConflicts(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/api/auth/register", "", registerBody()).Code)

	errs := fieldErrors(t, env.do(http.MethodPost, "/api/auth/register", "", registerBody()))
	assert.Equal(t, validation.MsgAlreadyRegistered, errs["email"])
	assert.Equal(t, validation.MsgAlreadyRegistered, errs["nim"])
}

func TestRegister_UniqueViolationAfterChecks(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"nim", fmt.Errorf("insert profile: %w", store.ErrDuplicateNIM)},
		{"email", fmt.Errorf("insert user: %w", store.ErrDuplicateEmail)},
		{"other constraint", fmt.Errorf("commit tx: %w", store.ErrConflict)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.db.createErr = tc.err

			rec := env.do(http.MethodPost, "/api/auth/register", "", registerBody())
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			errs := fieldErrors(t, rec)
			assert.Equal(t, map[string]string{
				"email": validation.MsgRaceConflict,
				"nim":   validation.MsgRaceConflict,
			}, errs)
		})
	}

	t.Run("other failures stay internal", func(t *testing.T) {
		env := newTestEnv(t)
		env.db.createErr = errors.New("insert user: connection reset")
		rec := env.do(http.MethodPost, "/api/auth/register", "", registerBody())
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRegister_FieldErrors(t *testing.T) {
	env := newTestEnv(t)
	body := registerBody()
	body["nim"] = "L200230278"
	body["angkatan"] = "23"
	body["password"] = "12345678"

	errs := fieldErrors(t, env.do(http.MethodPost, "/api/auth/register", "", body))
	assert.Contains(t, errs, "nim")
	assert.Contains(t, errs, "angkatan")
	assert.Contains(t, errs, "password")
}

func TestRegister_MalformedBody(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(http.MethodPost, "/api/auth/register", "", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	u := env.student("L200230277", "Budi Santoso")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", u.Email, "not-the-password"},
		{"unknown email", "l200239999@student.ums.ac.id", testPassword},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": tc.email, "password": tc.password})
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	t.Run("inactive account", func(t *testing.T) {
		env.db.users[u.ID].IsActive = false
		rec := env.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": u.Email, "password": testPassword})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogin_NormalizesEmail(t *testing.T) {
	env := newTestEnv(t)
	env.student("L200230277", "Budi Santoso")

	rec := env.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "  L200230277@STUDENT.UMS.AC.ID ", "password": testPassword,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_RateLimited(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.RateLimit.AuthLimit = 2
	env = buildEnv(t, env.cfg)

	body := map[string]string{"email": "nobody@student.ums.ac.id", "password": "whatever1"}
	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodPost, "/api/auth/login", "", body).Code)
	}
	rec := env.do(http.MethodPost, "/api/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func loginFrom(env *testEnv, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"nobody@student.ums.ac.id","password":"whatever1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", forwardedFor)
	req.Header.Set("X-Real-IP", forwardedFor)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec.Code
}

func TestLogin_RateLimitIgnoresForwardedHeadersFromClients(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.RateLimit.AuthLimit = 2
	env = buildEnv(t, env.cfg)

	var codes []int
	for i := 0; i < 4; i++ {
		codes = append(codes, loginFrom(env, fmt.Sprintf("198.51.100.%d", i+1)))
	}
	assert.Equal(t, []int{
		http.StatusUnauthorized, http.StatusUnauthorized,
		http.StatusTooManyRequests, http.StatusTooManyRequests,
	}, codes)
}

func TestLogin_RateLimitBehindTrustedProxy(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.RateLimit.AuthLimit = 2
	// httptest requests arrive from 192.0.2.1
	env.cfg.Server.TrustedProxies = []string{"192.0.2.0/24"}
	env = buildEnv(t, env.cfg)

	assert.Equal(t, http.StatusUnauthorized, loginFrom(env, "203.0.113.5"))
	assert.Equal(t, http.StatusUnauthorized, loginFrom(env, "203.0.113.5"))
	assert.Equal(t, http.StatusTooManyRequests, loginFrom(env, "203.0.113.5"))
	assert.Equal(t, http.StatusUnauthorized, loginFrom(env, "203.0.113.6"), "each forwarded client has its own window")
}

func TestRefreshAndLogout(t *testing.T) {
	env := newTestEnv(t)
	u := env.student("L200230277", "Budi Santoso")

	login := env.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": u.Email, "password": testPassword})
	require.Equal(t, http.StatusOK, login.Code)
	tokens := decode[dto.TokenPairResponse](t, login)

	t.Run("access token is not a refresh token", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/auth/refresh", "", map[string]string{"refresh": tokens.Access})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	refreshed := env.do(http.MethodPost, "/api/auth/refresh", "", map[string]string{"refresh": tokens.Refresh})
	require.Equal(t, http.StatusOK, refreshed.Code)
	access := decode[dto.AccessTokenResponse](t, refreshed).Access
	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/me", access, nil).Code)

	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/auth/logout", "", map[string]string{"refresh": tokens.Refresh}).Code)
	rec := env.do(http.MethodPost, "/api/auth/refresh", "", map[string]string{"refresh": tokens.Refresh})
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "revoked refresh token")
}

func TestRefresh_InactiveUser(t *testing.T) {
	env := newTestEnv(t)
	u := env.student("L200230277", "Budi Santoso")
	login := env.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": u.Email, "password": testPassword})
	tokens := decode[dto.TokenPairResponse](t, login)

	env.db.users[u.ID].IsActive = false
	rec := env.do(http.MethodPost, "/api/auth/refresh", "", map[string]string{"refresh": tokens.Refresh})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	u := env.student("L200230277", "Budi Santoso")

	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/api/me", "", nil).Code)

	rec := env.do(http.MethodGet, "/api/me", env.token(u), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[dto.UserResponse](t, rec)
	assert.Equal(t, u.ID.String(), me.ID)
	assert.Equal(t, "Budi Santoso", me.FullName)
}

func TestGoogleSignIn(t *testing.T) {
	env := newTestEnv(t)
	u := env.student("L200230277", "Budi Santoso")

	start := func(t *testing.T) string {
		rec := env.do(http.MethodGet, "/api/auth/google/login", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[dto.GoogleLoginResponse](t, rec)
		assert.Contains(t, resp.AuthURL, "accounts.google.com")
		return resp.State
	}
	callback := func(t *testing.T, state string, info dto.GoogleUserInfo) *url.URL {
		env.google.WithUserInfoFetcher(func(_ context.Context, code string) (*dto.GoogleUserInfo, error) {
			return &info, nil
		})
		rec := env.do(http.MethodGet, "/api/auth/google/callback?code=abc&state="+state, "", nil)
		require.Equal(t, http.StatusFound, rec.Code, rec.Body.String())
		loc, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		return loc
	}

	t.Run("unknown state", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/auth/google/callback?code=abc&state=forged", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("registered student", func(t *testing.T) {
		loc := callback(t, start(t), dto.GoogleUserInfo{Email: u.Email, Verified: true})
		assert.Equal(t, "frontend.test", loc.Host)
		assert.NotEmpty(t, loc.Query().Get("access"))
		assert.NotEmpty(t, loc.Query().Get("refresh"))
	})

	t.Run("state is single use", func(t *testing.T) {
		state := start(t)
		callback(t, state, dto.GoogleUserInfo{Email: u.Email, Verified: true})
		rec := env.do(http.MethodGet, "/api/auth/google/callback?code=abc&state="+state, "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not registered", func(t *testing.T) {
		loc := callback(t, start(t), dto.GoogleUserInfo{Email: "l200239999@student.ums.ac.id", Verified: true})
		assert.Equal(t, "not_registered", loc.Query().Get("error"))
	})

	t.Run("outside the student domain", func(t *testing.T) {
		loc := callback(t, start(t), dto.GoogleUserInfo{Email: "budi@gmail.com", Verified: true})
		assert.Equal(t, "invalid_domain", loc.Query().Get("error"))
	})
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/healthz", "", nil).Code)
	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/readyz", "", nil).Code)

	h := handlers.NewHealthHandler(pinger{}, pinger{err: errors.New("dial tcp 10.0.0.7:6379: connection refused")}, zap.NewNop())
	rec := httptest.NewRecorder()
	h.ReadinessCheck(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.7")
	assert.NotContains(t, rec.Body.String(), "connection refused")
	resp := decode[dto.HealthResponse](t, rec)
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, map[string]string{"db": "ok", "redis": "unavailable"}, resp.Checks)
}

func TestTokensExpire(t *testing.T) {
	env := newTestEnv(t)
	u := env.student("L200230277", "Budi Santoso")
	env.cfg.JWT.AccessTokenTTL = -time.Minute
	expired := env.token(u)
	env.cfg.JWT.AccessTokenTTL = 15 * time.Minute

	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/api/me", expired, nil).Code)
}
