package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-hub/internal/app"
	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/internal/utils"
	"github.com/MKhiriev/go-user-hub/models"
)

// adminOnly gates admin endpoints. It runs strictly after [Handler.auth], so
// the request context always carries the resolved user; a non-admin identity
// is rejected with 403 rather than the 401 family, since the caller is
// authenticated but not privileged.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authUser, ok := utils.GetUserFromContext(r.Context())
		if !ok {
			log.Error().Msg("no authenticated user in request context")
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInternalServerError}, http.StatusInternalServerError)
			return
		}

		if !authUser.IsAdmin {
			log.Warn().Int64("id", authUser.UserID).Msg("non-admin attempt to access admin endpoint")
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgAccessDenied}, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
