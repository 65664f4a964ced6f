// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-user-hub server handlers and the client transport.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API and
// lets the client map server responses back to typed errors.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded at all.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgMissingFields is returned when a registration or add-user request
	// omits any of the required fields.
	MsgMissingFields = "please provide all required fields"

	// MsgInvalidEmail is returned when a supplied email address does not
	// match the local@domain.tld shape.
	MsgInvalidEmail = "invalid email format"

	// MsgWeakPassword is returned when a supplied password is shorter than
	// the minimum length.
	MsgWeakPassword = "password must be at least 6 characters long"

	// MsgInvalidUserID is returned when an update or delete request carries
	// a missing or non-positive user ID.
	MsgInvalidUserID = "invalid user ID"

	// MsgNoFieldsToUpdate is returned when an update request carries no
	// fields to change.
	MsgNoFieldsToUpdate = "at least one field must be provided for update"

	// MsgEmailAlreadyExists is returned when a registration, add-user, or
	// email update collides with an existing account.
	MsgEmailAlreadyExists = "email already exists"

	// MsgInvalidCredentials is returned for every credential failure on the
	// login endpoints. It deliberately never distinguishes an unknown email
	// from a wrong password.
	MsgInvalidCredentials = "invalid email or password"

	// MsgNotAnAdmin is returned when a correctly authenticated account
	// attempts the admin login without the administrator flag.
	MsgNotAnAdmin = "access denied: not an admin"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when an authenticated non-admin account
	// calls an admin-only endpoint.
	MsgAccessDenied = "access denied"

	// MsgUserNotFound is returned when the target of an operation does not
	// exist, including the authenticated caller itself, which signals the
	// client to drop its session.
	MsgUserNotFound = "user not found"

	// MsgImageTooLarge is returned when an uploaded profile image exceeds
	// the size limit.
	MsgImageTooLarge = "profile image exceeds the size limit"

	// MsgUnsupportedImageFormat is returned when an uploaded profile image
	// is neither JPEG nor PNG.
	MsgUnsupportedImageFormat = "unsupported image format"

	// MsgImageStoreUnavailable is returned when the external image host
	// cannot be reached or rejects an upload.
	MsgImageStoreUnavailable = "image storage unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
