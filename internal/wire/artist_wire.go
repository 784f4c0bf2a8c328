package wire

import (
	"net/http"

	"glassfinder/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireArtist(
	r chi.Router,
	artistHandler *adaptor.ArtistHandler,
	auth func(http.Handler) http.Handler,
	admin func(http.Handler) http.Handler,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/artists", artistHandler.GetArtists)
	r.Get("/api/artists/{id}", artistHandler.GetArtist)
	r.Get("/api/artists/{id}/pieces", artistHandler.GetArtistPieces)

	// ==================== ADMIN ROUTES ====================
	r.With(auth, admin).Get("/api/admin/artists/all", artistHandler.GetAllArtists)
	r.With(auth, admin).Delete("/api/admin/artists/{id}", artistHandler.Remove)
}
