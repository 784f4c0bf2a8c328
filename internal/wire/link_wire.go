package wire

import (
	"net/http"

	"glassfinder/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireLink(
	r chi.Router,
	linkHandler *adaptor.LinkHandler,
	auth func(http.Handler) http.Handler,
	admin func(http.Handler) http.Handler,
) {
	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Post("/api/link", linkHandler.RequestLink)
	r.With(auth).Get("/api/profile", linkHandler.GetProfile)
	r.With(auth).Patch("/api/profile", linkHandler.UpdateProfile)
	r.With(auth).Post("/api/profile/image", linkHandler.UploadImage)

	// ==================== ADMIN ROUTES ====================
	r.With(auth, admin).Get("/api/admin/link-requests", linkHandler.ListRequests)
	r.With(auth, admin).Post("/api/admin/link-requests/{id}/approve", linkHandler.Approve)
	r.With(auth, admin).Post("/api/admin/link-requests/{id}/deny", linkHandler.Deny)
}
