package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleOAuth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"UMS_TALENTA_BACK-END/internal/config"
	"UMS_TALENTA_BACK-END/internal/dto"
	"UMS_TALENTA_BACK-END/internal/middleware"
	"UMS_TALENTA_BACK-END/internal/store"
	"UMS_TALENTA_BACK-END/internal/utils"
	"UMS_TALENTA_BACK-END/internal/validation"
)

const (
	oauthStateNamespace = "oauth_state"
	oauthStateTTL       = 10 * time.Minute
	studentEmailDomain  = "@student.ums.ac.id"
)

// StateStore keeps short-lived OAuth state values; implemented by cache.Cache
type StateStore interface {
	Set(ctx context.Context, namespace, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, namespace, key string) (string, error)
	Delete(ctx context.Context, namespace, key string) error
}

// UserInfoFetcher exchanges an authorization code for the Google account behind it
type UserInfoFetcher func(ctx context.Context, code string) (*dto.GoogleUserInfo, error)

// GoogleAuthHandler handles Google OAuth authentication
type GoogleAuthHandler struct {
	users        UserStore
	states       StateStore
	oauth2Config *oauth2.Config
	fetch        UserInfoFetcher
	jwt          *config.JWTConfig
	frontendURL  string
	logger       *zap.Logger
}

// NewGoogleAuthHandler creates a new GoogleAuthHandler instance
func NewGoogleAuthHandler(users UserStore, states StateStore, cfg *config.Config, logger *zap.Logger) *GoogleAuthHandler {
	oauth2Config := &oauth2.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		RedirectURL:  cfg.GoogleOAuth.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	h := &GoogleAuthHandler{
		users:        users,
		states:       states,
		oauth2Config: oauth2Config,
		jwt:          &cfg.JWT,
		frontendURL:  cfg.GoogleOAuth.FrontendCallbackURL,
		logger:       logger,
	}
	h.fetch = h.getGoogleUserInfo
	return h
}

// WithUserInfoFetcher replaces the Google round trip, used by tests
func (h *GoogleAuthHandler) WithUserInfoFetcher(f UserInfoFetcher) *GoogleAuthHandler {
	h.fetch = f
	return h
}

// GoogleLogin initiates Google OAuth login
// @Summary Google OAuth login
// @Description Initiate Google OAuth login flow. Only registered student accounts can sign in.
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.GoogleLoginResponse "Google OAuth URL"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/google/login [get]
func (h *GoogleAuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	// Generate state parameter for CSRF protection
	state := uuid.New().String()
	if err := h.states.Set(r.Context(), oauthStateNamespace, state, "1", oauthStateTTL); err != nil {
		internalError(w, r, h.logger, "Failed to start Google sign-in", err)
		return
	}

	authURL := h.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOnline)
	utils.WriteJSONResponse(w, http.StatusOK, dto.GoogleLoginResponse{AuthURL: authURL, State: state})
}

// GoogleCallback handles Google OAuth callback
// @Summary Google OAuth callback
// @Description Handle Google OAuth callback and redirect to the frontend with tokens or an error code
// @Tags authentication
// @Param code query string true "Authorization code from Google"
// @Param state query string true "State returned by the login endpoint"
// @Success 302 {string} string "Redirect to frontend"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /api/auth/google/callback [get]
func (h *GoogleAuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" || state == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing authorization code", "Authorization code and state are required")
		return
	}

	stored, err := h.states.Get(r.Context(), oauthStateNamespace, state)
	if err != nil {
		internalError(w, r, h.logger, "Failed to verify state", err)
		return
	}
	if stored == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid state", "Sign-in session expired, please try again")
		return
	}
	if err := h.states.Delete(r.Context(), oauthStateNamespace, state); err != nil {
		h.logger.Warn("failed to delete oauth state", zap.Error(err))
	}

	info, err := h.fetch(r.Context(), code)
	if err != nil {
		h.logger.Warn("google exchange failed", zap.Error(err))
		h.redirectError(w, r, "google_failed")
		return
	}

	email := validation.NormalizeEmail(info.Email)
	if !info.Verified || !strings.HasSuffix(email, studentEmailDomain) {
		h.redirectError(w, r, "invalid_domain")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.redirectError(w, r, "not_registered")
			return
		}
		internalError(w, r, h.logger, "Failed to load user", err)
		return
	}
	if !user.IsActive {
		h.redirectError(w, r, "inactive")
		return
	}

	access, refresh, err := middleware.GenerateTokenPair(*user, h.jwt)
	if err != nil {
		internalError(w, r, h.logger, "Failed to generate token", err)
		return
	}

	q := url.Values{}
	q.Set("access", access)
	q.Set("refresh", refresh)
	http.Redirect(w, r, h.frontendURL+"?"+q.Encode(), http.StatusFound)
}

func (h *GoogleAuthHandler) redirectError(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, h.frontendURL+"?"+url.Values{"error": {code}}.Encode(), http.StatusFound)
}

// getGoogleUserInfo exchanges the code and fetches the account from Google
func (h *GoogleAuthHandler) getGoogleUserInfo(ctx context.Context, code string) (*dto.GoogleUserInfo, error) {
	token, err := h.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	service, err := googleOAuth2.NewService(ctx, option.WithTokenSource(h.oauth2Config.TokenSource(ctx, token)))
	if err != nil {
		return nil, err
	}

	userInfo, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	verified := false
	if userInfo.VerifiedEmail != nil {
		verified = *userInfo.VerifiedEmail
	}

	return &dto.GoogleUserInfo{
		ID:       userInfo.Id,
		Email:    userInfo.Email,
		Name:     userInfo.Name,
		Verified: verified,
	}, nil
}
