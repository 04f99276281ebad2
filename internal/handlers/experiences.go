package handlers

import (
	"net/http"

	"UMS_TALENTA_BACK-END/internal/dto"
	"UMS_TALENTA_BACK-END/internal/utils"
	"UMS_TALENTA_BACK-END/internal/validation"
)

// ListExperiences godoc
// @Summary      List my experiences
// @Description  Newest start date first
// @Tags         my-talent
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.ExperienceResponse
// @Router       /api/talents/me/experiences [get]
func (h *MyTalentHandler) ListExperiences(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.profileID(w, r)
	if !ok {
		return
	}
	items, err := h.talents.ListExperiences(r.Context(), profileID)
	if err != nil {
		internalError(w, r, h.logger, "Failed to load experiences", err)
		return
	}
	out := make([]dto.ExperienceResponse, 0, len(items))
	for _, e := range items {
		out = append(out, dto.NewExperienceResponse(e))
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// CreateExperience godoc
// @Summary      Add an experience
// @Tags         my-talent
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.ExperienceRequest  true  "Experience"
// @Success      201      {object}  dto.ExperienceResponse
// @Failure      400      {object}  map[string]string
// @Router       /api/talents/me/experiences [post]
func (h *MyTalentHandler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.profileID(w, r)
	if !ok {
		return
	}
	var req dto.ExperienceRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	exp, err := validation.Experience(req, h.now())
	if err != nil {
		writeValidationOr(w, r, h.logger, "Failed to validate experience", err)
		return
	}
	created, err := h.talents.CreateExperience(r.Context(), profileID, exp)
	if err != nil {
		internalError(w, r, h.logger, "Failed to create experience", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, dto.NewExperienceResponse(*created))
}

// GetExperience godoc
// @Summary      Get one of my experiences
// @Tags         my-talent
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Experience ID"
// @Success      200  {object}  dto.ExperienceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/talents/me/experiences/{id} [get]
func (h *MyTalentHandler) GetExperience(w http.ResponseWriter, r *http.Request) {
	profileID, id, ok := h.owned(w, r)
	if !ok {
		return
	}
	exp, err := h.talents.GetExperience(r.Context(), profileID, id)
	if err != nil {
		writeStoreError(w, r, h.logger, "Experience", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewExperienceResponse(*exp))
}

// UpdateExperience godoc
// @Summary      Update one of my experiences
// @Description  Omitted fields keep their stored values; dates are checked against the merged result.
// @Tags         my-talent
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string               true  "Experience ID"
// @Param        payload  body      dto.ExperiencePatch  true  "Fields to update"
// @Success      200      {object}  dto.ExperienceResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/talents/me/experiences/{id} [put]
// @Router       /api/talents/me/experiences/{id} [patch]
func (h *MyTalentHandler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	profileID, id, ok := h.owned(w, r)
	if !ok {
		return
	}
	stored, err := h.talents.GetExperience(r.Context(), profileID, id)
	if err != nil {
		writeStoreError(w, r, h.logger, "Experience", err)
		return
	}
	var patch dto.ExperiencePatch
	if err := utils.DecodeJSONRequest(w, r, &patch); err != nil {
		return
	}

	exp, err := validation.Experience(patch.Apply(dto.ExperienceRequestFrom(*stored)), h.now())
	if err != nil {
		writeValidationOr(w, r, h.logger, "Failed to validate experience", err)
		return
	}
	updated, err := h.talents.UpdateExperience(r.Context(), profileID, id, exp)
	if err != nil {
		writeStoreError(w, r, h.logger, "Experience", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewExperienceResponse(*updated))
}

// DeleteExperience godoc
// @Summary      Delete one of my experiences
// @Tags         my-talent
// @Security     BearerAuth
// @Param        id   path  string  true  "Experience ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/talents/me/experiences/{id} [delete]
func (h *MyTalentHandler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	profileID, id, ok := h.owned(w, r)
	if !ok {
		return
	}
	if err := h.talents.DeleteExperience(r.Context(), profileID, id); err != nil {
		writeStoreError(w, r, h.logger, "Experience", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
