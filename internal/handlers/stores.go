package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"UMS_TALENTA_BACK-END/internal/models"
	"UMS_TALENTA_BACK-END/internal/store"
	"UMS_TALENTA_BACK-END/internal/utils"
	"UMS_TALENTA_BACK-END/internal/validation"
)

// UserStore is implemented by store.UserRepository
type UserStore interface {
	validation.IdentityLookup
	CreateStudent(ctx context.Context, s store.NewStudent) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// TokenRevoker is implemented by cache.Cache
type TokenRevoker interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// ProfileStore is implemented by store.ProfileRepository
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDetail, error)
	GetDetailByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDetail, error)
	GetDetail(ctx context.Context, profileID uuid.UUID) (*models.ProfileDetail, error)
	Update(ctx context.Context, userID uuid.UUID, c store.ProfileChanges) error
	SetPhoto(ctx context.Context, userID uuid.UUID, ref string) (*string, error)
	RecordView(ctx context.Context, profileID uuid.UUID, viewerIP *string) error
	SetActive(ctx context.Context, profileID uuid.UUID, active bool) error
	DeleteOwner(ctx context.Context, profileID uuid.UUID) error
}

// TalentStore is implemented by store.TalentRepository
type TalentStore interface {
	ListSkills(ctx context.Context, profileID uuid.UUID) ([]models.StudentSkill, error)
	GetSkill(ctx context.Context, profileID, id uuid.UUID) (*models.StudentSkill, error)
	AddSkill(ctx context.Context, profileID uuid.UUID, name, level string) (*models.StudentSkill, error)
	UpdateSkillLevel(ctx context.Context, profileID, id uuid.UUID, level string) (*models.StudentSkill, error)
	DeleteSkill(ctx context.Context, profileID, id uuid.UUID) error

	ListExperiences(ctx context.Context, profileID uuid.UUID) ([]models.Experience, error)
	GetExperience(ctx context.Context, profileID, id uuid.UUID) (*models.Experience, error)
	CreateExperience(ctx context.Context, profileID uuid.UUID, e models.Experience) (*models.Experience, error)
	UpdateExperience(ctx context.Context, profileID, id uuid.UUID, e models.Experience) (*models.Experience, error)
	DeleteExperience(ctx context.Context, profileID, id uuid.UUID) error

	ListProjects(ctx context.Context, profileID uuid.UUID) ([]models.PortfolioProject, error)
	GetProject(ctx context.Context, profileID, id uuid.UUID) (*models.PortfolioProject, error)
	CreateProject(ctx context.Context, profileID uuid.UUID, p models.PortfolioProject) (*models.PortfolioProject, error)
	UpdateProject(ctx context.Context, profileID, id uuid.UUID, p models.PortfolioProject) (*models.PortfolioProject, error)
	DeleteProject(ctx context.Context, profileID, id uuid.UUID) error

	ListSocialLinks(ctx context.Context, profileID uuid.UUID) ([]models.SocialLink, error)
	GetSocialLink(ctx context.Context, profileID, id uuid.UUID) (*models.SocialLink, error)
	CreateSocialLink(ctx context.Context, profileID uuid.UUID, l models.SocialLink) (*models.SocialLink, error)
	UpdateSocialLink(ctx context.Context, profileID, id uuid.UUID, l models.SocialLink) (*models.SocialLink, error)
	DeleteSocialLink(ctx context.Context, profileID, id uuid.UUID) error
}

// DirectoryStore is implemented by store.DirectoryRepository
type DirectoryStore interface {
	Search(ctx context.Context, p store.SearchParams) ([]models.ProfileDetail, int, error)
	Latest(ctx context.Context, n int) ([]models.ProfileDetail, error)
	Top(ctx context.Context, n int) ([]models.ProfileDetail, error)
	Statistics(ctx context.Context) (store.Statistics, error)
}

// EndorsementStore is implemented by store.EndorsementRepository
type EndorsementStore interface {
	Endorse(ctx context.Context, profileID, studentSkillID, endorserID uuid.UUID, message string) (*models.Endorsement, error)
	List(ctx context.Context, profileID, studentSkillID uuid.UUID) ([]models.Endorsement, error)
}

// internalError logs err and answers with a generic 500
func internalError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, msg string, err error) {
	logger.Error(msg,
		zap.String("request_id", utils.GetRequestID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", msg)
}

// writeStoreError maps store sentinels to 404 and everything else to 500
func writeStoreError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, what string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", what+" not found")
		return
	}
	internalError(w, r, logger, "Failed to load "+what, err)
}

// writeValidationOr writes field errors for validation failures, a 500 otherwise
func writeValidationOr(w http.ResponseWriter, r *http.Request, logger *zap.Logger, msg string, err error) {
	if ve, ok := validation.AsErrors(err); ok {
		utils.WriteValidationErrors(w, ve)
		return
	}
	internalError(w, r, logger, msg, err)
}

// pathID parses a UUID path parameter; on failure it writes 400
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Bad Request", "invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// callerID returns the authenticated user id; on failure it writes 401
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return uuid.Nil, false
	}
	return userID, true
}
