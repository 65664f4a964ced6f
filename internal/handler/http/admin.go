package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-user-hub/internal/app"
	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/internal/utils"
	"github.com/MKhiriev/go-user-hub/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UsersService.ListUsers(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Data: users}, http.StatusOK)
}

func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	createdUser, err := h.services.UsersService.AddUser(ctx, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Info().Int64("id", createdUser.UserID).Msg("user added by admin")

	utils.WriteJSON(w, models.UserResponse{
		Message: "user added",
		User:    createdUser,
	}, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UpdateDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UsersService.UpdateUser(ctx, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Info().Int64("id", updatedUser.UserID).Msg("user updated by admin")

	utils.WriteJSON(w, models.UserResponse{
		Message: "user updated",
		User:    updatedUser,
	}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DeleteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	if err := h.services.UsersService.DeleteUser(ctx, req); err != nil {
		respondError(w, r, err)
		return
	}

	log.Info().Int64("id", req.UserID).Msg("user deleted by admin")

	utils.WriteJSON(w, models.MessageResponse{Message: "user deleted"}, http.StatusOK)
}
