package wire

import (
	"net/http"

	"glassfinder/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	auth func(http.Handler) http.Handler,
	admin func(http.Handler) http.Handler,
) {
	// ==================== ADMIN ROUTES ====================
	r.With(auth, admin).Get("/api/admin/users", userHandler.GetUsers)
	r.With(auth, admin).Get("/api/admin/users/all", userHandler.GetAllUsers)
	r.With(auth, admin).Get("/api/admin/users/{id}", userHandler.GetUser)
	r.With(auth, admin).Delete("/api/admin/users/{id}", userHandler.Remove)
}
