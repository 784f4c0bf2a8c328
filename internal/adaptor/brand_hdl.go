package adaptor

import (
	"net/http"

	"glassfinder/internal/usecase"
	"glassfinder/pkg/utils"

	"go.uber.org/zap"
)

type BrandHandler struct {
	service usecase.BrandService
	log     *zap.Logger
}

func NewBrandHandler(service usecase.BrandService, log *zap.Logger) *BrandHandler {
	return &BrandHandler{
		service: service,
		log:     log,
	}
}

// GetBrands handles GET /api/brands
func (h *BrandHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.service.GetBrands(r.Context(), pageParam(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list brands")
		return
	}

	utils.ResponseSuccess(w, "Brands retrieved", brands)
}

// GetBrand handles GET /api/brands/{id}
func (h *BrandHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	brandID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid brand ID")
		return
	}

	brand, err := h.service.GetBrand(r.Context(), brandID)
	if err != nil {
		handleServiceError(h.log, w, err, "get brand")
		return
	}

	utils.ResponseSuccess(w, "Brand retrieved", brand)
}

// GetAllBrands handles GET /api/admin/brands/all
func (h *BrandHandler) GetAllBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.service.GetAllBrands(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list all brands")
		return
	}

	utils.ResponseSuccess(w, "Brands retrieved", brands)
}

// GetBrandPieces handles GET /api/brands/{id}/pieces
func (h *BrandHandler) GetBrandPieces(w http.ResponseWriter, r *http.Request) {
	brandID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid brand ID")
		return
	}

	pieces, err := h.service.GetBrandPieces(r.Context(), brandID, pageParam(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list brand pieces")
		return
	}

	utils.ResponseSuccess(w, "Pieces retrieved", pieces)
}

// Remove handles DELETE /api/admin/brands/{id}
func (h *BrandHandler) Remove(w http.ResponseWriter, r *http.Request) {
	brandID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid brand ID")
		return
	}

	if err := h.service.Remove(r.Context(), brandID); err != nil {
		handleServiceError(h.log, w, err, "remove brand")
		return
	}

	utils.ResponseSuccess(w, "Brand removed", nil)
}
