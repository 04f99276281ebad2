package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"UMS_TALENTA_BACK-END/internal/dto"
	"UMS_TALENTA_BACK-END/internal/store"
	"UMS_TALENTA_BACK-END/internal/utils"
	"UMS_TALENTA_BACK-END/internal/validation"
)

// EndorsementHandler lets students vouch for each other's listed skills
type EndorsementHandler struct {
	profiles     ProfileStore
	endorsements EndorsementStore
	logger       *zap.Logger
}

func NewEndorsementHandler(profiles ProfileStore, endorsements EndorsementStore, logger *zap.Logger) *EndorsementHandler {
	return &EndorsementHandler{profiles: profiles, endorsements: endorsements, logger: logger}
}

// Endorse godoc
// @Summary      Endorse a skill
// @Description  The caller's profile endorses a skill listed on a public profile. Each skill can be endorsed once per profile.
// @Tags         endorsements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string              true   "Profile ID"
// @Param        skillID  path      string              true   "Skill listing ID"
// @Param        payload  body      dto.EndorseRequest  false  "Optional message"
// @Success      201      {object}  dto.EndorsementResponse
// @Failure      400      {object}  map[string]string
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/talents/{id}/skills/{skillID}/endorse [post]
func (h *EndorsementHandler) Endorse(w http.ResponseWriter, r *http.Request) {
	profileID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	skillID, ok := pathID(w, r, "skillID")
	if !ok {
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	endorser, err := h.profiles.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only students with a profile can endorse skills")
			return
		}
		internalError(w, r, h.logger, "Failed to load profile", err)
		return
	}
	if endorser.Profile.ID == profileID {
		utils.WriteValidationErrors(w, validation.Errors{"endorsement": "You cannot endorse your own skill."})
		return
	}

	var req dto.EndorseRequest
	if r.ContentLength != 0 {
		if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
			return
		}
	}
	message, err := validation.Endorsement(req)
	if err != nil {
		writeValidationOr(w, r, h.logger, "Failed to validate endorsement", err)
		return
	}

	e, err := h.endorsements.Endorse(r.Context(), profileID, skillID, endorser.Profile.ID, message)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Skill not found")
		case errors.Is(err, store.ErrDuplicateEndorsement):
			utils.WriteValidationErrors(w, validation.Errors{"endorsement": "You have already endorsed this skill."})
		default:
			internalError(w, r, h.logger, "Failed to endorse skill", err)
		}
		return
	}

	h.logger.Info("skill endorsed",
		zap.String("student_skill_id", skillID.String()),
		zap.String("endorser_id", endorser.Profile.ID.String()),
	)
	utils.WriteJSONResponse(w, http.StatusCreated, dto.NewEndorsementResponse(*e))
}

// List godoc
// @Summary      List endorsements of a skill
// @Tags         endorsements
// @Produce      json
// @Param        id       path      string  true  "Profile ID"
// @Param        skillID  path      string  true  "Skill listing ID"
// @Success      200      {array}   dto.EndorsementResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/talents/{id}/skills/{skillID}/endorsements [get]
func (h *EndorsementHandler) List(w http.ResponseWriter, r *http.Request) {
	profileID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	skillID, ok := pathID(w, r, "skillID")
	if !ok {
		return
	}

	items, err := h.endorsements.List(r.Context(), profileID, skillID)
	if err != nil {
		writeStoreError(w, r, h.logger, "Skill", err)
		return
	}
	out := make([]dto.EndorsementResponse, 0, len(items))
	for _, e := range items {
		out = append(out, dto.NewEndorsementResponse(e))
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}
