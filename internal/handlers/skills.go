package handlers

import (
	"errors"
	"net/http"

	"UMS_TALENTA_BACK-END/internal/dto"
	"UMS_TALENTA_BACK-END/internal/store"
	"UMS_TALENTA_BACK-END/internal/utils"
	"UMS_TALENTA_BACK-END/internal/validation"
)

// ListSkills godoc
// @Summary      List my skills
// @Tags         my-talent
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.StudentSkillResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/talents/me/skills [get]
func (h *MyTalentHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.profileID(w, r)
	if !ok {
		return
	}
	skills, err := h.talents.ListSkills(r.Context(), profileID)
	if err != nil {
		internalError(w, r, h.logger, "Failed to load skills", err)
		return
	}
	out := make([]dto.StudentSkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, dto.NewStudentSkillResponse(s))
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// CreateSkill godoc
// @Summary      Add a skill to my profile
// @Description  The catalog is matched case-insensitively; unknown names are added to it.
// @Tags         my-talent
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.CreateSkillRequest  true  "Skill"
// @Success      201      {object}  dto.StudentSkillResponse
// @Failure      400      {object}  map[string]string
// @Router       /api/talents/me/skills [post]
func (h *MyTalentHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.profileID(w, r)
	if !ok {
		return
	}
	var req dto.CreateSkillRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	name, level, err := validation.SkillCreate(req)
	if err != nil {
		writeValidationOr(w, r, h.logger, "Failed to validate skill", err)
		return
	}

	skill, err := h.talents.AddSkill(r.Context(), profileID, name, level)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateSkill) {
			utils.WriteValidationErrors(w, validation.Errors{"skill_name": "Skill already listed on your profile."})
			return
		}
		internalError(w, r, h.logger, "Failed to add skill", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, dto.NewStudentSkillResponse(*skill))
}

// GetSkill godoc
// @Summary      Get one of my skills
// @Tags         my-talent
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Skill listing ID"
// @Success      200  {object}  dto.StudentSkillResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/talents/me/skills/{id} [get]
func (h *MyTalentHandler) GetSkill(w http.ResponseWriter, r *http.Request) {
	profileID, id, ok := h.owned(w, r)
	if !ok {
		return
	}
	skill, err := h.talents.GetSkill(r.Context(), profileID, id)
	if err != nil {
		writeStoreError(w, r, h.logger, "Skill", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewStudentSkillResponse(*skill))
}

// UpdateSkill godoc
// @Summary      Change the level of one of my skills
// @Tags         my-talent
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                  true  "Skill listing ID"
// @Param        payload  body      dto.UpdateSkillRequest  true  "New level"
// @Success      200      {object}  dto.StudentSkillResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/talents/me/skills/{id} [put]
// @Router       /api/talents/me/skills/{id} [patch]
func (h *MyTalentHandler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	profileID, id, ok := h.owned(w, r)
	if !ok {
		return
	}
	var req dto.UpdateSkillRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	level, err := validation.SkillUpdate(req)
	if err != nil {
		writeValidationOr(w, r, h.logger, "Failed to validate skill", err)
		return
	}
	skill, err := h.talents.UpdateSkillLevel(r.Context(), profileID, id, level)
	if err != nil {
		writeStoreError(w, r, h.logger, "Skill", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewStudentSkillResponse(*skill))
}

// DeleteSkill godoc
// @Summary      Remove a skill from my profile
// @Tags         my-talent
// @Security     BearerAuth
// @Param        id   path  string  true  "Skill listing ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/talents/me/skills/{id} [delete]
func (h *MyTalentHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	profileID, id, ok := h.owned(w, r)
	if !ok {
		return
	}
	if err := h.talents.DeleteSkill(r.Context(), profileID, id); err != nil {
		writeStoreError(w, r, h.logger, "Skill", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
