package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/admin/login", h.adminLogin)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes for authenticated users
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/profile", h.profile)
		r.Put("/api/user/update-data/{id}", h.updateData)
		r.Post("/api/user/update-profile", h.updateProfileImage)
	})

	// admin-only routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.adminOnly)

		r.Get("/api/admin/dataFetching", h.listUsers)
		r.Post("/api/admin/addUser", h.addUser)
		r.Put("/api/admin/updateUser", h.updateUser)
		r.Delete("/api/admin/deleteUser", h.deleteUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
