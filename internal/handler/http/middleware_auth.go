package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-hub/internal/app"
	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/internal/store"
	"github.com/MKhiriev/go-user-hub/internal/utils"
	"github.com/MKhiriev/go-user-hub/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via the auth service, and resolves the token subject against
// the store. On success the current user record is stored in the request
// context under [utils.UserCtxKey] before delegating to the next handler.
//
// The middleware rejects requests in the following cases:
//   - 401: the header is absent, malformed, or the token is expired or
//     cannot be verified.
//   - 404: the token is valid but its subject no longer exists. This is the
//     forced-logout contract: clients drop their cached session on it.
//   - 500: the subject lookup failed for any other reason. A store outage
//     must never look like account deletion, or clients would wipe their
//     sessions over a transient failure.
//
// Resolving the subject on every request is what makes deletion effective
// immediately despite stateless tokens.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgTokenIsExpiredOrInvalid}, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgTokenIsExpiredOrInvalid}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgTokenIsExpiredOrInvalid}, http.StatusUnauthorized)
			return
		}

		authUser, err := h.services.UsersService.GetUser(ctx, token.UserID)
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Int64("id", token.UserID).Err(err).Msg("token subject no longer exists")
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgUserNotFound}, http.StatusNotFound)
			return
		}
		if err != nil {
			log.Err(err).Int64("id", token.UserID).Msg("error resolving token subject")
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInternalServerError}, http.StatusInternalServerError)
			return
		}

		// Store the resolved user in the context so that downstream
		// handlers can use it without another lookup.
		ctx = context.WithValue(ctx, utils.UserCtxKey, authUser)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
