package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"UMS_TALENTA_BACK-END/internal/dto"
	"UMS_TALENTA_BACK-END/internal/models"
	"UMS_TALENTA_BACK-END/internal/store"
	"UMS_TALENTA_BACK-END/internal/utils"
)

const (
	latestTalents = 5
	topTalents    = 2
)

// TalentHandler serves the public talent directory
type TalentHandler struct {
	directory DirectoryStore
	profiles  ProfileStore
	mediaURL  string
	logger    *zap.Logger
}

func NewTalentHandler(directory DirectoryStore, profiles ProfileStore, mediaURL string, logger *zap.Logger) *TalentHandler {
	return &TalentHandler{directory: directory, profiles: profiles, mediaURL: mediaURL, logger: logger}
}

// List godoc
// @Summary      Search public talents
// @Description  Public and active profiles only. Search matches name, NIM, prodi or skill.
// @Tags         talents
// @Produce      json
// @Param        search    query     string  false  "Free text search"
// @Param        prodi     query     string  false  "Exact study program (case-insensitive)"
// @Param        skill     query     string  false  "Skill name contains"
// @Param        ordering  query     string  false  "-created_at, created_at, -views_count or full_name"
// @Param        limit     query     int     false  "Page size (default 20, max 100)"
// @Param        offset    query     int     false  "Offset"
// @Success      200       {object}  dto.TalentListResponse
// @Router       /api/talents/public [get]
func (h *TalentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, offset := utils.ParsePagination(r)

	items, total, err := h.directory.Search(r.Context(), store.SearchParams{
		Search:   q.Get("search"),
		Prodi:    q.Get("prodi"),
		Skill:    q.Get("skill"),
		Ordering: q.Get("ordering"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		internalError(w, r, h.logger, "Failed to search talents", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TalentListResponse{
		Results:    dto.NewProfileList(items, h.mediaURL),
		Pagination: dto.Pagination{Total: total, Limit: limit, Offset: offset},
	})
}

// Latest godoc
// @Summary      Newest public talents
// @Tags         talents
// @Produce      json
// @Success      200  {array}  dto.ProfileResponse
// @Router       /api/talents/latest [get]
func (h *TalentHandler) Latest(w http.ResponseWriter, r *http.Request) {
	items, err := h.directory.Latest(r.Context(), latestTalents)
	if err != nil {
		internalError(w, r, h.logger, "Failed to load latest talents", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewProfileList(items, h.mediaURL))
}

// Top godoc
// @Summary      Top public talents
// @Description  Ranked by number of skills, then experiences, then newest
// @Tags         talents
// @Produce      json
// @Success      200  {array}  dto.ProfileResponse
// @Router       /api/talents/top [get]
// @Router       /api/talents/top-talents [get]
func (h *TalentHandler) Top(w http.ResponseWriter, r *http.Request) {
	items, err := h.directory.Top(r.Context(), topTalents)
	if err != nil {
		internalError(w, r, h.logger, "Failed to load top talents", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewProfileList(items, h.mediaURL))
}

// Statistics godoc
// @Summary      Directory statistics
// @Tags         talents
// @Produce      json
// @Success      200  {object}  dto.StatisticsResponse
// @Router       /api/talents/statistics [get]
func (h *TalentHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.directory.Statistics(r.Context())
	if err != nil {
		internalError(w, r, h.logger, "Failed to load statistics", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.StatisticsResponse{
		TotalTalents:     stats.TotalTalents,
		TotalSkills:      stats.TotalSkills,
		TotalExperiences: stats.TotalExperiences,
	})
}

// Detail godoc
// @Summary      Talent detail
// @Description  Hidden or deactivated profiles are only visible to their owner and admins. Views by others are counted.
// @Tags         talents
// @Produce      json
// @Param        id   path      string  true  "Profile ID"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/talents/{id} [get]
func (h *TalentHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.profiles.GetDetail(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, h.logger, "Talent", err)
		return
	}

	viewer, _ := utils.GetUserIDFromContext(r.Context())
	isOwner := viewer == detail.Profile.UserID
	isAdmin := utils.GetRoleFromContext(r.Context()) == models.RoleAdmin
	if !detail.Profile.Listed() && !isOwner && !isAdmin {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Talent not found")
		return
	}

	if !isOwner {
		var ip *string
		if v := utils.ClientIP(r); v != "" {
			ip = &v
		}
		if err := h.profiles.RecordView(r.Context(), id, ip); err != nil {
			internalError(w, r, h.logger, "Failed to record view", err)
			return
		}
		detail.Profile.ViewsCount++
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NewProfileResponse(*detail, h.mediaURL))
}
