package adaptor

import (
	"errors"
	"net/http"

	"glassfinder/internal/usecase"
	"glassfinder/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	Link   *LinkHandler
	User   *UserHandler
	Shop   *ShopHandler
	Artist *ArtistHandler
	Brand  *BrandHandler
	Piece  *PieceHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		Link:   NewLinkHandler(service.Link, log),
		User:   NewUserHandler(service.User, log),
		Shop:   NewShopHandler(service.Shop, log),
		Artist: NewArtistHandler(service.Artist, log),
		Brand:  NewBrandHandler(service.Brand, log),
		Piece:  NewPieceHandler(service.Piece, log),
	}
}

// handleServiceError maps the workflow error taxonomy onto the
// response envelope. Anything not in the taxonomy is a 500 and the
// detail stays in the log, not the response.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrInvalidLinkType):
		log.Warn(operation+" failed - validation", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())

	case errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrAlreadyLinked),
		errors.Is(err, usecase.ErrAlreadyVerified),
		errors.Is(err, usecase.ErrRequestResolved),
		errors.Is(err, usecase.ErrAlreadyAssociated),
		errors.Is(err, usecase.ErrNotLinked),
		errors.Is(err, usecase.ErrNoVerificationCode),
		errors.Is(err, usecase.ErrCodeMismatch):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrUnverified),
		errors.Is(err, usecase.ErrWrongPassword):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrNotOwner):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrNotFound),
		errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrRequestNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// pageParam reads the zero-indexed page number; absent or malformed
// means the first page.
func pageParam(r *http.Request) int {
	return utils.ParseInt(r.URL.Query().Get("page"), 0)
}

// idParam parses the {id} URL segment.
func idParam(r *http.Request) (uuid.UUID, error) {
	return utils.ParseUUID(chi.URLParam(r, "id"))
}

// callerID reads the authenticated user set by the auth middleware.
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, false
	}
	return userID, true
}
