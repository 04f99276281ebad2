package handlers

import (
	"net/http"

	"UMS_TALENTA_BACK-END/internal/dto"
	"UMS_TALENTA_BACK-END/internal/utils"
	"UMS_TALENTA_BACK-END/internal/validation"
)

// ListProjects godoc
// @Summary      List my portfolio projects
// @Tags         my-talent
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ProjectResponse
// @Router       /api/talents/me/projects [get]
func (h *MyTalentHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.profileID(w, r)
	if !ok {
		return
	}
	items, err := h.talents.ListProjects(r.Context(), profileID)
	if err != nil {
		internalError(w, r, h.logger, "Failed to load projects", err)
		return
	}
	out := make([]dto.ProjectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, dto.NewProjectResponse(p))
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// CreateProject godoc
// @Summary      Add a portfolio project
// @Tags         my-talent
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.ProjectRequest  true  "Project"
// @Success      201      {object}  dto.ProjectResponse
// @Failure      400      {object}  map[string]string
// @Router       /api/talents/me/projects [post]
func (h *MyTalentHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.profileID(w, r)
	if !ok {
		return
	}
	var req dto.ProjectRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	project, err := validation.Project(req)
	if err != nil {
		writeValidationOr(w, r, h.logger, "Failed to validate project", err)
		return
	}
	created, err := h.talents.CreateProject(r.Context(), profileID, project)
	if err != nil {
		internalError(w, r, h.logger, "Failed to create project", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, dto.NewProjectResponse(*created))
}

// GetProject godoc
// @Summary      Get one of my projects
// @Tags         my-talent
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/talents/me/projects/{id} [get]
func (h *MyTalentHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	profileID, id, ok := h.owned(w, r)
	if !ok {
		return
	}
	project, err := h.talents.GetProject(r.Context(), profileID, id)
	if err != nil {
		writeStoreError(w, r, h.logger, "Project", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewProjectResponse(*project))
}

// UpdateProject godoc
// @Summary      Update one of my projects
// @Tags         my-talent
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string            true  "Project ID"
// @Param        payload  body      dto.ProjectPatch  true  "Fields to update"
// @Success      200      {object}  dto.ProjectResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/talents/me/projects/{id} [put]
// @Router       /api/talents/me/projects/{id} [patch]
func (h *MyTalentHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	profileID, id, ok := h.owned(w, r)
	if !ok {
		return
	}
	stored, err := h.talents.GetProject(r.Context(), profileID, id)
	if err != nil {
		writeStoreError(w, r, h.logger, "Project", err)
		return
	}
	var patch dto.ProjectPatch
	if err := utils.DecodeJSONRequest(w, r, &patch); err != nil {
		return
	}
	project, err := validation.Project(patch.Apply(dto.ProjectRequestFrom(*stored)))
	if err != nil {
		writeValidationOr(w, r, h.logger, "Failed to validate project", err)
		return
	}
	updated, err := h.talents.UpdateProject(r.Context(), profileID, id, project)
	if err != nil {
		writeStoreError(w, r, h.logger, "Project", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewProjectResponse(*updated))
}

// DeleteProject godoc
// @Summary      Delete one of my projects
// @Tags         my-talent
// @Security     BearerAuth
// @Param        id   path  string  true  "Project ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/talents/me/projects/{id} [delete]
func (h *MyTalentHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	profileID, id, ok := h.owned(w, r)
	if !ok {
		return
	}
	if err := h.talents.DeleteProject(r.Context(), profileID, id); err != nil {
		writeStoreError(w, r, h.logger, "Project", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
