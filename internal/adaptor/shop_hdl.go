package adaptor

import (
	"net/http"

	"glassfinder/internal/usecase"
	"glassfinder/pkg/utils"

	"go.uber.org/zap"
)

type ShopHandler struct {
	service usecase.ShopService
	log     *zap.Logger
}

func NewShopHandler(service usecase.ShopService, log *zap.Logger) *ShopHandler {
	return &ShopHandler{
		service: service,
		log:     log,
	}
}

// GetShops handles GET /api/shops
func (h *ShopHandler) GetShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.service.GetShops(r.Context(), pageParam(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list shops")
		return
	}

	utils.ResponseSuccess(w, "Shops retrieved", shops)
}

// GetShop handles GET /api/shops/{id}
func (h *ShopHandler) GetShop(w http.ResponseWriter, r *http.Request) {
	shopID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid shop ID")
		return
	}

	shop, err := h.service.GetShop(r.Context(), shopID)
	if err != nil {
		handleServiceError(h.log, w, err, "get shop")
		return
	}

	utils.ResponseSuccess(w, "Shop retrieved", shop)
}

// GetAllShops handles GET /api/admin/shops/all
func (h *ShopHandler) GetAllShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.service.GetAllShops(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list all shops")
		return
	}

	utils.ResponseSuccess(w, "Shops retrieved", shops)
}

// MapMarkers handles GET /api/shops/map
func (h *ShopHandler) MapMarkers(w http.ResponseWriter, r *http.Request) {
	markers, err := h.service.MapMarkers(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "read map markers")
		return
	}

	utils.ResponseSuccess(w, "Map markers retrieved", markers)
}

// GetShopPieces handles GET /api/shops/{id}/pieces
func (h *ShopHandler) GetShopPieces(w http.ResponseWriter, r *http.Request) {
	shopID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid shop ID")
		return
	}

	pieces, err := h.service.GetShopPieces(r.Context(), shopID, pageParam(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list shop pieces")
		return
	}

	utils.ResponseSuccess(w, "Pieces retrieved", pieces)
}

// AssociateBrand handles POST /api/shops/brands/{id}
func (h *ShopHandler) AssociateBrand(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	brandID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid brand ID")
		return
	}

	brand, err := h.service.AssociateBrand(r.Context(), userID, brandID)
	if err != nil {
		handleServiceError(h.log, w, err, "associate brand")
		return
	}

	utils.ResponseCreated(w, "Brand associated", brand)
}

// AssociatedBrands handles GET /api/shops/{id}/brands
func (h *ShopHandler) AssociatedBrands(w http.ResponseWriter, r *http.Request) {
	shopID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid shop ID")
		return
	}

	brands, err := h.service.AssociatedBrands(r.Context(), shopID)
	if err != nil {
		handleServiceError(h.log, w, err, "list associated brands")
		return
	}

	utils.ResponseSuccess(w, "Brands retrieved", brands)
}

// Remove handles DELETE /api/admin/shops/{id}
func (h *ShopHandler) Remove(w http.ResponseWriter, r *http.Request) {
	shopID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid shop ID")
		return
	}

	if err := h.service.Remove(r.Context(), shopID); err != nil {
		handleServiceError(h.log, w, err, "remove shop")
		return
	}

	utils.ResponseSuccess(w, "Shop removed", nil)
}
