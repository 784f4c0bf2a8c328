package adaptor

import (
	"net/http"

	"glassfinder/internal/usecase"
	"glassfinder/pkg/utils"

	"go.uber.org/zap"
)

type ArtistHandler struct {
	service usecase.ArtistService
	log     *zap.Logger
}

func NewArtistHandler(service usecase.ArtistService, log *zap.Logger) *ArtistHandler {
	return &ArtistHandler{
		service: service,
		log:     log,
	}
}

// GetArtists handles GET /api/artists
func (h *ArtistHandler) GetArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.service.GetArtists(r.Context(), pageParam(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list artists")
		return
	}

	utils.ResponseSuccess(w, "Artists retrieved", artists)
}

// GetArtist handles GET /api/artists/{id}
func (h *ArtistHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	artistID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid artist ID")
		return
	}

	artist, err := h.service.GetArtist(r.Context(), artistID)
	if err != nil {
		handleServiceError(h.log, w, err, "get artist")
		return
	}

	utils.ResponseSuccess(w, "Artist retrieved", artist)
}

// GetAllArtists handles GET /api/admin/artists/all
func (h *ArtistHandler) GetAllArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.service.GetAllArtists(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list all artists")
		return
	}

	utils.ResponseSuccess(w, "Artists retrieved", artists)
}

// GetArtistPieces handles GET /api/artists/{id}/pieces
func (h *ArtistHandler) GetArtistPieces(w http.ResponseWriter, r *http.Request) {
	artistID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid artist ID")
		return
	}

	pieces, err := h.service.GetArtistPieces(r.Context(), artistID, pageParam(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list artist pieces")
		return
	}

	utils.ResponseSuccess(w, "Pieces retrieved", pieces)
}

// Remove handles DELETE /api/admin/artists/{id}
func (h *ArtistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	artistID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid artist ID")
		return
	}

	if err := h.service.Remove(r.Context(), artistID); err != nil {
		handleServiceError(h.log, w, err, "remove artist")
		return
	}

	utils.ResponseSuccess(w, "Artist removed", nil)
}
