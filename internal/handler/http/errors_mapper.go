// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-hub/internal/app"
	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/internal/service"
	"github.com/MKhiriev/go-user-hub/internal/store"
	"github.com/MKhiriev/go-user-hub/internal/utils"
	"github.com/MKhiriev/go-user-hub/internal/validators"
	"github.com/MKhiriev/go-user-hub/models"
)

// apiError pairs the HTTP status with the client-safe message written into
// the uniform error envelope.
type apiError struct {
	status  int
	message string
}

// errorResponseMap routes every service and store sentinel to its HTTP
// representation. Anything not listed is an opaque 500: internal failure
// detail stays in the server log.
var errorResponseMap = map[error]apiError{
	service.ErrInvalidDataProvided:       {http.StatusBadRequest, app.MsgInvalidDataProvided},
	validators.ErrMissingFields:          {http.StatusBadRequest, app.MsgMissingFields},
	validators.ErrInvalidEmail:           {http.StatusBadRequest, app.MsgInvalidEmail},
	validators.ErrWeakPassword:           {http.StatusBadRequest, app.MsgWeakPassword},
	validators.ErrInvalidUserID:          {http.StatusBadRequest, app.MsgInvalidUserID},
	validators.ErrNoFieldsToUpdate:       {http.StatusBadRequest, app.MsgNoFieldsToUpdate},
	service.ErrImageTooLarge:             {http.StatusBadRequest, app.MsgImageTooLarge},
	service.ErrUnsupportedImageFormat:    {http.StatusBadRequest, app.MsgUnsupportedImageFormat},
	store.ErrEmailAlreadyExists:          {http.StatusBadRequest, app.MsgEmailAlreadyExists},
	service.ErrInvalidCredentials:        {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrNotAnAdmin:                {http.StatusUnauthorized, app.MsgNotAnAdmin},
	service.ErrTokenIsExpiredOrInvalid:   {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	store.ErrNoUserWasFound:              {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrImageStoreUnavailable:       {http.StatusBadGateway, app.MsgImageStoreUnavailable},
}

// respondError writes the uniform error envelope for err. Unknown errors are
// logged and reported as an opaque internal server error.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	for target, response := range errorResponseMap {
		if errors.Is(err, target) {
			utils.WriteJSON(w, models.ErrorResponse{Error: response.message}, response.status)
			return
		}
	}

	log.Err(err).Msg("unexpected error")
	utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInternalServerError}, http.StatusInternalServerError)
}
