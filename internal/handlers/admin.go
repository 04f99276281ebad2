package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"UMS_TALENTA_BACK-END/internal/config"
	"UMS_TALENTA_BACK-END/internal/dto"
	"UMS_TALENTA_BACK-END/internal/store"
	"UMS_TALENTA_BACK-END/internal/utils"
)

// AdminHandler moderates talent profiles
type AdminHandler struct {
	directory DirectoryStore
	profiles  ProfileStore
	mediaURL  string
	files     photoFiles
	logger    *zap.Logger
}

func NewAdminHandler(directory DirectoryStore, profiles ProfileStore, media config.MediaConfig, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		directory: directory,
		profiles:  profiles,
		mediaURL:  media.URLPrefix,
		files:     newPhotoFiles(media, logger),
		logger:    logger,
	}
}

// List godoc
// @Summary      List all talents
// @Description  Every profile regardless of visibility, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Page size (default 20, max 100)"
// @Param        offset  query     int  false  "Offset"
// @Success      200     {object}  dto.TalentListResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/talents/admin/talents [get]
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.ParsePagination(r)
	items, total, err := h.directory.Search(r.Context(), store.SearchParams{
		Search:        r.URL.Query().Get("search"),
		Ordering:      store.OrderNewest,
		Limit:         limit,
		Offset:        offset,
		IncludeHidden: true,
	})
	if err != nil {
		internalError(w, r, h.logger, "Failed to list talents", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.TalentListResponse{
		Results:    dto.NewProfileList(items, h.mediaURL),
		Pagination: dto.Pagination{Total: total, Limit: limit, Offset: offset},
	})
}

// Activate godoc
// @Summary      Activate a talent
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Profile ID"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/talents/admin/talents/{id}/activate [post]
func (h *AdminHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true, "activated")
}

// Deactivate godoc
// @Summary      Deactivate a talent
// @Description  Hides the profile from the public directory
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Profile ID"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/talents/admin/talents/{id}/deactivate [post]
func (h *AdminHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false, "deactivated")
}

func (h *AdminHandler) setActive(w http.ResponseWriter, r *http.Request, active bool, status string) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.profiles.SetActive(r.Context(), id, active); err != nil {
		writeStoreError(w, r, h.logger, "Talent", err)
		return
	}
	h.logger.Info("talent moderated", zap.String("profile_id", id.String()), zap.String("status", status))
	utils.WriteJSONResponse(w, http.StatusOK, dto.StatusResponse{Status: status})
}

// Delete godoc
// @Summary      Delete a talent
// @Description  Deletes the owning account together with the profile
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path  string  true  "Profile ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/talents/admin/talents/{id} [delete]
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	detail, err := h.profiles.GetDetail(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, h.logger, "Talent", err)
		return
	}
	if err := h.profiles.DeleteOwner(r.Context(), id); err != nil {
		writeStoreError(w, r, h.logger, "Talent", err)
		return
	}
	h.files.remove(detail.Profile.Photo)
	h.logger.Info("talent deleted", zap.String("profile_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
