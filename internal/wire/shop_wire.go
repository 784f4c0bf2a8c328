package wire

import (
	"net/http"

	"glassfinder/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShop(
	r chi.Router,
	shopHandler *adaptor.ShopHandler,
	auth func(http.Handler) http.Handler,
	admin func(http.Handler) http.Handler,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/shops", shopHandler.GetShops)
	r.Get("/api/shops/map", shopHandler.MapMarkers)
	r.Get("/api/shops/{id}", shopHandler.GetShop)
	r.Get("/api/shops/{id}/pieces", shopHandler.GetShopPieces)
	r.Get("/api/shops/{id}/brands", shopHandler.AssociatedBrands)

	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Post("/api/shops/brands/{id}", shopHandler.AssociateBrand)

	// ==================== ADMIN ROUTES ====================
	r.With(auth, admin).Get("/api/admin/shops/all", shopHandler.GetAllShops)
	r.With(auth, admin).Delete("/api/admin/shops/{id}", shopHandler.Remove)
}
