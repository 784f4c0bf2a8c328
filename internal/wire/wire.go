// internal/wire/wire.go
package wire

import (
	"net/http"

	"glassfinder/internal/adaptor"
	"glassfinder/internal/data/repository"
	"glassfinder/internal/usecase"
	"glassfinder/pkg/geocoder"
	"glassfinder/pkg/mailer"
	"glassfinder/pkg/middleware"
	"glassfinder/pkg/storage"
	"glassfinder/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled router.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
	mail mailer.Mailer,
	geo geocoder.Geocoder,
	blobs storage.BlobStore,
) *App {
	service := usecase.NewService(repo, config, logger, mail, geo, blobs)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	tokens := utils.NewTokenIssuer(config.JWT.Secret, config.JWT.ExpiryHours)
	auth := middleware.Auth(tokens, repo.User, logger)
	admin := middleware.Admin(logger)

	wireAuth(r, handler.Auth, auth)
	wireLink(r, handler.Link, auth, admin)
	wireUser(r, handler.User, auth, admin)
	wireShop(r, handler.Shop, auth, admin)
	wireArtist(r, handler.Artist, auth, admin)
	wireBrand(r, handler.Brand, auth, admin)
	wirePiece(r, handler.Piece, auth, admin)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
