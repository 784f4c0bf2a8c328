package usecase

import (
	"glassfinder/internal/data/repository"
	"glassfinder/pkg/geocoder"
	"glassfinder/pkg/mailer"
	"glassfinder/pkg/storage"
	"glassfinder/pkg/utils"

	"go.uber.org/zap"
)

// Service bundles every workflow behind one constructor so wiring
// stays a single call site.
type Service struct {
	Auth   AuthService
	Link   LinkService
	User   UserService
	Shop   ShopService
	Artist ArtistService
	Brand  BrandService
	Piece  PieceService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
	mail mailer.Mailer,
	geo geocoder.Geocoder,
	blobs storage.BlobStore,
) *Service {
	hasher := utils.NewHasher(config.Bcrypt.Cost)
	tokens := utils.NewTokenIssuer(config.JWT.Secret, config.JWT.ExpiryHours)
	registry := newProfileRegistry(geo, log)
	perPage := config.App.PerPage

	return &Service{
		Auth:   NewAuthService(repo, hasher, tokens, mail, log),
		Link:   NewLinkService(repo, registry, mail, blobs, perPage, log),
		User:   NewUserService(repo, registry, perPage, log),
		Shop:   NewShopService(repo, perPage, log),
		Artist: NewArtistService(repo, perPage, log),
		Brand:  NewBrandService(repo, perPage, log),
		Piece:  NewPieceService(repo, perPage, log),
	}
}
