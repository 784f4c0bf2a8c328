package wire

import (
	"net/http"

	"glassfinder/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBrand(
	r chi.Router,
	brandHandler *adaptor.BrandHandler,
	auth func(http.Handler) http.Handler,
	admin func(http.Handler) http.Handler,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/brands", brandHandler.GetBrands)
	r.Get("/api/brands/{id}", brandHandler.GetBrand)
	r.Get("/api/brands/{id}/pieces", brandHandler.GetBrandPieces)

	// ==================== ADMIN ROUTES ====================
	r.With(auth, admin).Get("/api/admin/brands/all", brandHandler.GetAllBrands)
	r.With(auth, admin).Delete("/api/admin/brands/{id}", brandHandler.Remove)
}
