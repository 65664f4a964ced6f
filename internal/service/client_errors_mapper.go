// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-user-hub/internal/adapter"
	"github.com/MKhiriev/go-user-hub/internal/app"
	"github.com/MKhiriev/go-user-hub/internal/store"
	"github.com/MKhiriev/go-user-hub/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgMissingFields:
			return validators.ErrMissingFields
		case app.MsgInvalidEmail:
			return validators.ErrInvalidEmail
		case app.MsgWeakPassword:
			return validators.ErrWeakPassword
		case app.MsgInvalidUserID:
			return validators.ErrInvalidUserID
		case app.MsgNoFieldsToUpdate:
			return validators.ErrNoFieldsToUpdate
		case app.MsgEmailAlreadyExists:
			return store.ErrEmailAlreadyExists
		case app.MsgImageTooLarge:
			return ErrImageTooLarge
		case app.MsgUnsupportedImageFormat:
			return ErrUnsupportedImageFormat
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidCredentials:
			return ErrInvalidCredentials
		case app.MsgNotAnAdmin:
			return ErrNotAnAdmin
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		return ErrAccessDenied

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrNoUserWasFound

	case errors.Is(err, adapter.ErrBadGateway):
		return store.ErrImageStoreUnavailable
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
