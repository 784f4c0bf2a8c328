package wire

import (
	"net/http"

	"glassfinder/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	auth func(http.Handler) http.Handler,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/signup", authHandler.SignUp)
	r.Post("/api/signin", authHandler.SignIn)
	r.Post("/api/verify/resend", authHandler.ResendVerification)

	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Post("/api/verify", authHandler.Verify)
	r.With(auth).Patch("/api/password", authHandler.UpdatePassword)
}
