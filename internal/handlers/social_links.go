package handlers

import (
	"net/http"

	"UMS_TALENTA_BACK-END/internal/dto"
	"UMS_TALENTA_BACK-END/internal/utils"
	"UMS_TALENTA_BACK-END/internal/validation"
)

// ListSocialLinks godoc
// @Summary      List my social links
// @Tags         my-talent
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.SocialLinkResponse
// @Router       /api/talents/me/social-links [get]
func (h *MyTalentHandler) ListSocialLinks(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.profileID(w, r)
	if !ok {
		return
	}
	items, err := h.talents.ListSocialLinks(r.Context(), profileID)
	if err != nil {
		internalError(w, r, h.logger, "Failed to load social links", err)
		return
	}
	out := make([]dto.SocialLinkResponse, 0, len(items))
	for _, l := range items {
		out = append(out, dto.NewSocialLinkResponse(l))
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// CreateSocialLink godoc
// @Summary      Add a social link
// @Tags         my-talent
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.SocialLinkRequest  true  "Social link"
// @Success      201      {object}  dto.SocialLinkResponse
// @Failure      400      {object}  map[string]string
// @Router       /api/talents/me/social-links [post]
func (h *MyTalentHandler) CreateSocialLink(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.profileID(w, r)
	if !ok {
		return
	}
	var req dto.SocialLinkRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	link, err := validation.SocialLink(req)
	if err != nil {
		writeValidationOr(w, r, h.logger, "Failed to validate social link", err)
		return
	}
	created, err := h.talents.CreateSocialLink(r.Context(), profileID, link)
	if err != nil {
		internalError(w, r, h.logger, "Failed to create social link", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, dto.NewSocialLinkResponse(*created))
}

// GetSocialLink godoc
// @Summary      Get one of my social links
// @Tags         my-talent
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Social link ID"
// @Success      200  {object}  dto.SocialLinkResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/talents/me/social-links/{id} [get]
func (h *MyTalentHandler) GetSocialLink(w http.ResponseWriter, r *http.Request) {
	profileID, id, ok := h.owned(w, r)
	if !ok {
		return
	}
	link, err := h.talents.GetSocialLink(r.Context(), profileID, id)
	if err != nil {
		writeStoreError(w, r, h.logger, "Social link", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewSocialLinkResponse(*link))
}

// UpdateSocialLink godoc
// @Summary      Update one of my social links
// @Tags         my-talent
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string               true  "Social link ID"
// @Param        payload  body      dto.SocialLinkPatch  true  "Fields to update"
// @Success      200      {object}  dto.SocialLinkResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/talents/me/social-links/{id} [put]
// @Router       /api/talents/me/social-links/{id} [patch]
func (h *MyTalentHandler) UpdateSocialLink(w http.ResponseWriter, r *http.Request) {
	profileID, id, ok := h.owned(w, r)
	if !ok {
		return
	}
	stored, err := h.talents.GetSocialLink(r.Context(), profileID, id)
	if err != nil {
		writeStoreError(w, r, h.logger, "Social link", err)
		return
	}
	var patch dto.SocialLinkPatch
	if err := utils.DecodeJSONRequest(w, r, &patch); err != nil {
		return
	}
	link, err := validation.SocialLink(patch.Apply(dto.SocialLinkRequestFrom(*stored)))
	if err != nil {
		writeValidationOr(w, r, h.logger, "Failed to validate social link", err)
		return
	}
	updated, err := h.talents.UpdateSocialLink(r.Context(), profileID, id, link)
	if err != nil {
		writeStoreError(w, r, h.logger, "Social link", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewSocialLinkResponse(*updated))
}

// DeleteSocialLink godoc
// @Summary      Delete one of my social links
// @Tags         my-talent
// @Security     BearerAuth
// @Param        id   path  string  true  "Social link ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/talents/me/social-links/{id} [delete]
func (h *MyTalentHandler) DeleteSocialLink(w http.ResponseWriter, r *http.Request) {
	profileID, id, ok := h.owned(w, r)
	if !ok {
		return
	}
	if err := h.talents.DeleteSocialLink(r.Context(), profileID, id); err != nil {
		writeStoreError(w, r, h.logger, "Social link", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
