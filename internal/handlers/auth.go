package handlers

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"UMS_TALENTA_BACK-END/internal/config"
	"UMS_TALENTA_BACK-END/internal/dto"
	"UMS_TALENTA_BACK-END/internal/middleware"
	"UMS_TALENTA_BACK-END/internal/store"
	"UMS_TALENTA_BACK-END/internal/utils"
	"UMS_TALENTA_BACK-END/internal/validation"
)

const invalidCredentials = "No active account found with the given credentials"

// compared against when the email is unknown so both failure paths cost a bcrypt run
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("ums-talenta-dummy-password"), bcrypt.DefaultCost)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	users  UserStore
	tokens TokenRevoker
	jwt    *config.JWTConfig
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users UserStore, tokens TokenRevoker, jwtCfg *config.JWTConfig, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, jwt: jwtCfg, logger: logger}
}

// Register handles student registration
// @Summary Register a new student
// @Description Create a student account and its talent profile. The email must be <nim>@student.ums.ac.id.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.UserResponse "Student registered"
// @Failure 400 {object} map[string]string "Field errors"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	reg, err := validation.ValidateRegistration(r.Context(), req, h.users)
	if err != nil {
		writeValidationOr(w, r, h.logger, "Failed to validate registration", err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		internalError(w, r, h.logger, "Failed to hash password", err)
		return
	}

	user, err := h.users.CreateStudent(r.Context(), store.NewStudent{
		Email:        reg.Email,
		PasswordHash: string(hashedPassword),
		FullName:     reg.FullName,
		NIM:          reg.NIM,
		Prodi:        reg.Prodi,
		Angkatan:     reg.Angkatan,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) || errors.Is(err, store.ErrDuplicateNIM) || errors.Is(err, store.ErrConflict) {
			utils.WriteValidationErrors(w, validation.Errors{
				"email": validation.MsgRaceConflict,
				"nim":   validation.MsgRaceConflict,
			})
			return
		}
		internalError(w, r, h.logger, "Failed to create user", err)
		return
	}

	h.logger.Info("student registered", zap.String("user_id", user.ID.String()), zap.String("nim", reg.NIM))
	utils.WriteJSONResponse(w, http.StatusCreated, dto.NewUserResponse(*user))
}

// Login handles user login
// @Summary Login
// @Description Exchange email and password for an access and refresh token pair
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenPairResponse "Tokens issued"
// @Failure 400 {object} map[string]string "Field errors"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 429 {object} dto.ErrorResponse "Too many attempts"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.Email = validation.NormalizeEmail(req.Email)
	if errs := validation.Struct(req); len(errs) > 0 {
		utils.WriteValidationErrors(w, errs)
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		internalError(w, r, h.logger, "Failed to load user", err)
		return
	}
	if user == nil || user.PasswordHash == "" {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", invalidCredentials)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil || !user.IsActive {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", invalidCredentials)
		return
	}

	access, refresh, err := middleware.GenerateTokenPair(*user, h.jwt)
	if err != nil {
		internalError(w, r, h.logger, "Failed to generate token", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.TokenPairResponse{Access: access, Refresh: refresh})
}

// Refresh exchanges a refresh token for a new access token
// @Summary Refresh access token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.AccessTokenResponse
// @Failure 401 {object} dto.ErrorResponse "Token is invalid or expired"
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if errs := validation.Struct(req); len(errs) > 0 {
		utils.WriteValidationErrors(w, errs)
		return
	}

	claims, ok := h.validRefreshClaims(w, r, req.Refresh)
	if !ok {
		return
	}

	user, err := h.users.GetByID(r.Context(), claims.UserID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		internalError(w, r, h.logger, "Failed to load user", err)
		return
	}
	if user == nil || !user.IsActive {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Token is invalid or expired")
		return
	}

	access, _, err := middleware.GenerateToken(*user, middleware.TokenTypeAccess, h.jwt)
	if err != nil {
		internalError(w, r, h.logger, "Failed to generate token", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.AccessTokenResponse{Access: access})
}

// Logout revokes a refresh token
// @Summary Logout
// @Description Revoke the given refresh token until it expires
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse "Token is invalid or expired"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if errs := validation.Struct(req); len(errs) > 0 {
		utils.WriteValidationErrors(w, errs)
		return
	}

	claims, ok := h.validRefreshClaims(w, r, req.Refresh)
	if !ok {
		return
	}
	if err := h.tokens.RevokeToken(r.Context(), claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		internalError(w, r, h.logger, "Failed to revoke token", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// validRefreshClaims rejects malformed, expired, wrongly typed and revoked
// tokens. A failing revocation lookup also rejects.
func (h *AuthHandler) validRefreshClaims(w http.ResponseWriter, r *http.Request, token string) (*middleware.JWTClaims, bool) {
	claims, err := middleware.ValidateToken(token, middleware.TokenTypeRefresh, h.jwt)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Token is invalid or expired")
		return nil, false
	}
	revoked, err := h.tokens.IsTokenRevoked(r.Context(), claims.ID)
	if err != nil {
		h.logger.Warn("revocation lookup failed", zap.Error(err))
	}
	if err != nil || revoked {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Token is invalid or expired")
		return nil, false
	}
	return claims, true
}

// Me returns the current user
// @Summary Current user
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not found")
			return
		}
		internalError(w, r, h.logger, "Failed to load user", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewUserResponse(*user))
}
