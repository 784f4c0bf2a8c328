package adaptor

import (
	"encoding/json"
	"net/http"

	"glassfinder/internal/dto/request"
	"glassfinder/internal/usecase"
	"glassfinder/pkg/utils"

	"go.uber.org/zap"
)

type PieceHandler struct {
	service usecase.PieceService
	log     *zap.Logger
}

func NewPieceHandler(service usecase.PieceService, log *zap.Logger) *PieceHandler {
	return &PieceHandler{
		service: service,
		log:     log,
	}
}

// GetPieces handles GET /api/pieces
func (h *PieceHandler) GetPieces(w http.ResponseWriter, r *http.Request) {
	pieces, err := h.service.GetPieces(r.Context(), pageParam(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list pieces")
		return
	}

	utils.ResponseSuccess(w, "Pieces retrieved", pieces)
}

// GetPiece handles GET /api/pieces/{id}
func (h *PieceHandler) GetPiece(w http.ResponseWriter, r *http.Request) {
	pieceID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid piece ID")
		return
	}

	piece, err := h.service.GetPiece(r.Context(), pieceID)
	if err != nil {
		handleServiceError(h.log, w, err, "get piece")
		return
	}

	utils.ResponseSuccess(w, "Piece retrieved", piece)
}

// GetMyPieces handles GET /api/my/pieces
func (h *PieceHandler) GetMyPieces(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	pieces, err := h.service.GetUserPieces(r.Context(), userID, pageParam(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list own pieces")
		return
	}

	utils.ResponseSuccess(w, "Pieces retrieved", pieces)
}

// Create handles POST /api/pieces
func (h *PieceHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.PieceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, "Validation failed", validationErrors)
		return
	}

	piece, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create piece")
		return
	}

	utils.ResponseCreated(w, "Piece created", piece)
}

// Update handles PATCH /api/pieces/{id}
func (h *PieceHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	pieceID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid piece ID")
		return
	}

	var req request.PieceUpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, "Validation failed", validationErrors)
		return
	}

	piece, err := h.service.Update(r.Context(), userID, pieceID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update piece")
		return
	}

	utils.ResponseSuccess(w, "Piece updated", piece)
}

// Delete handles DELETE /api/pieces/{id}
func (h *PieceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	pieceID, err := idParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid piece ID")
		return
	}

	if err := h.service.Delete(r.Context(), userID, pieceID); err != nil {
		handleServiceError(h.log, w, err, "delete piece")
		return
	}

	utils.ResponseSuccess(w, "Piece deleted", nil)
}
