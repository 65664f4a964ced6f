package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-user-hub/internal/app"
	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/internal/utils"
	"github.com/MKhiriev/go-user-hub/models"
	"github.com/go-chi/chi/v5"
)

// maxProfileImageBytes bounds the multipart body read on upload. The service
// layer enforces the same limit on the decoded bytes.
const maxProfileImageBytes = 5 << 20

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// the auth middleware resolved the subject against the store, so the
	// context value is the current record, not a token snapshot
	authUser, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInternalServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: authUser}, http.StatusOK)
}

func (h *Handler) updateData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authUser, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInternalServerError}, http.StatusInternalServerError)
		return
	}

	targetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("non-numeric user id in URL")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidUserID}, http.StatusBadRequest)
		return
	}

	// the profile endpoint only ever updates its own record
	if targetID != authUser.UserID {
		log.Warn().Int64("id", authUser.UserID).Int64("target", targetID).Msg("attempt to update another user's data")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgAccessDenied}, http.StatusForbidden)
		return
	}

	var req models.UpdateDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}
	req.UserID = targetID

	updatedUser, err := h.services.UsersService.UpdateUser(ctx, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		Message: "user data updated",
		User:    updatedUser,
	}, http.StatusOK)
}

func (h *Handler) updateProfileImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authUser, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInternalServerError}, http.StatusInternalServerError)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxProfileImageBytes+1024)
	if err := r.ParseMultipartForm(maxProfileImageBytes); err != nil {
		log.Err(err).Msg("error parsing multipart form")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgImageTooLarge}, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("profileImage")
	if err != nil {
		log.Err(err).Msg("missing profileImage form field")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Msg("error reading uploaded image")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInternalServerError}, http.StatusInternalServerError)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	updatedUser, err := h.services.UsersService.UpdateProfileImage(ctx, authUser.UserID, data, contentType)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Info().Int64("id", authUser.UserID).Str("url", updatedUser.ProfileImageURL).Msg("profile image updated")

	utils.WriteJSON(w, models.UserResponse{
		Message: "profile image updated",
		User:    updatedUser,
	}, http.StatusOK)
}
