package wire

import (
	"net/http"

	"glassfinder/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePiece(
	r chi.Router,
	pieceHandler *adaptor.PieceHandler,
	auth func(http.Handler) http.Handler,
	admin func(http.Handler) http.Handler,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/pieces", pieceHandler.GetPieces)
	r.Get("/api/pieces/{id}", pieceHandler.GetPiece)

	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Get("/api/my/pieces", pieceHandler.GetMyPieces)
	r.With(auth).Post("/api/pieces", pieceHandler.Create)
	r.With(auth).Patch("/api/pieces/{id}", pieceHandler.Update)
	r.With(auth).Delete("/api/pieces/{id}", pieceHandler.Delete)
}
