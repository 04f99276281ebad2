package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"UMS_TALENTA_BACK-END/internal/config"
	"UMS_TALENTA_BACK-END/internal/dto"
	"UMS_TALENTA_BACK-END/internal/store"
	"UMS_TALENTA_BACK-END/internal/utils"
	"UMS_TALENTA_BACK-END/internal/validation"
)

var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ProfileHandler serves the caller's own profile
type ProfileHandler struct {
	profiles ProfileStore
	media    config.MediaConfig
	files    photoFiles
	logger   *zap.Logger
}

func NewProfileHandler(profiles ProfileStore, media config.MediaConfig, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, media: media, files: newPhotoFiles(media, logger), logger: logger}
}

// GetMe godoc
// @Summary      Get my profile
// @Description  Full profile of the caller with skills, experiences, projects and social links
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/talents/me/profile [get]
func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	detail, err := h.profiles.GetDetailByUserID(r.Context(), userID)
	if err != nil {
		writeStoreError(w, r, h.logger, "Profile", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewProfileResponse(*detail, h.media.URLPrefix))
}

// Update godoc
// @Summary      Update my profile
// @Description  Partial update; only provided fields change. An empty photo clears it.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.ProfileUpdateRequest  true  "Fields to update"
// @Success      200      {object}  dto.ProfileResponse
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/talents/me/profile [put]
// @Router       /api/talents/me/profile [patch]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req dto.ProfileUpdateRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.IsEmpty() {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Bad Request", "No fields to update")
		return
	}

	clean, err := validation.ProfileUpdate(req)
	if err != nil {
		writeValidationOr(w, r, h.logger, "Failed to validate profile", err)
		return
	}

	var cleared *string
	if clean.Photo != nil {
		current, err := h.profiles.GetByUserID(r.Context(), userID)
		if err != nil {
			writeStoreError(w, r, h.logger, "Profile", err)
			return
		}
		cleared = current.Profile.Photo
	}

	err = h.profiles.Update(r.Context(), userID, store.ProfileChanges{
		FullName: clean.UserFullName,
		Prodi:    clean.Prodi,
		Angkatan: clean.Angkatan,
		Headline: clean.Headline,
		Bio:      clean.Bio,
		IsPublic: clean.IsPublic,
		Photo:    clean.Photo,
	})
	if err != nil {
		writeStoreError(w, r, h.logger, "Profile", err)
		return
	}
	h.files.remove(cleared)

	h.GetMe(w, r)
}

// UploadPhoto godoc
// @Summary      Upload profile photo
// @Description  Multipart upload of a JPEG, PNG or WebP image in the "photo" field
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        photo  formData  file  true  "Image file"
// @Success      200    {object}  dto.PhotoResponse
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  dto.ErrorResponse
// @Router       /api/talents/me/photo [post]
func (h *ProfileHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.media.MaxUploadBytes+1<<10)
	file, _, err := r.FormFile("photo")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteValidationErrors(w, validation.Errors{"photo": "The uploaded file is too large."})
			return
		}
		utils.WriteValidationErrors(w, validation.Errors{"photo": "No file was submitted."})
		return
	}
	defer file.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		utils.WriteValidationErrors(w, validation.Errors{"photo": "The submitted file is empty."})
		return
	}
	ext, ok := photoExtensions[mimetype.Detect(head[:n]).String()]
	if !ok {
		utils.WriteValidationErrors(w, validation.Errors{"photo": "Upload a valid image. Allowed types: JPEG, PNG, WebP."})
		return
	}

	ref := photoDir + "/" + uuid.New().String() + ext
	if err := h.files.save(ref, io.MultiReader(bytes.NewReader(head[:n]), file)); err != nil {
		if errors.Is(err, errPhotoTooLarge) {
			utils.WriteValidationErrors(w, validation.Errors{"photo": "The uploaded file is too large."})
			return
		}
		internalError(w, r, h.logger, "Failed to store photo", err)
		return
	}

	previous, err := h.profiles.SetPhoto(r.Context(), userID, ref)
	if err != nil {
		h.files.remove(&ref)
		writeStoreError(w, r, h.logger, "Profile", err)
		return
	}
	h.files.remove(previous)

	photoURL := dto.PhotoURL(&ref, h.media.URLPrefix)
	utils.WriteJSONResponse(w, http.StatusOK, dto.PhotoResponse{Photo: *photoURL})
}
