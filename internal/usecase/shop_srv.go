package usecase

import (
	"context"
	"time"

	"glassfinder/internal/data/entity"
	"glassfinder/internal/data/repository"
	"glassfinder/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ShopService serves the public shop directory, the map view, and the
// shop-owned brand associations.
type ShopService interface {
	GetShops(ctx context.Context, page int) (*response.PaginatedResponse[*response.ShopResponse], error)
	GetShop(ctx context.Context, id uuid.UUID) (*response.ShopResponse, error)
	GetAllShops(ctx context.Context) ([]*response.ShopResponse, error)
	MapMarkers(ctx context.Context) ([]*repository.MapMarker, error)
	GetShopPieces(ctx context.Context, shopID uuid.UUID, page int) (*response.PaginatedResponse[*response.PieceResponse], error)
	AssociateBrand(ctx context.Context, userID, brandID uuid.UUID) (*response.BrandResponse, error)
	AssociatedBrands(ctx context.Context, shopID uuid.UUID) ([]*response.BrandResponse, error)
	Remove(ctx context.Context, shopID uuid.UUID) error
}

type shopService struct {
	repo    *repository.Repository
	perPage int
	log     *zap.Logger
}

func NewShopService(repo *repository.Repository, perPage int, log *zap.Logger) ShopService {
	return &shopService{
		repo:    repo,
		perPage: perPage,
		log:     log,
	}
}

func (s *shopService) GetShops(ctx context.Context, page int) (*response.PaginatedResponse[*response.ShopResponse], error) {
	result, err := s.repo.Shop.ReadPage(ctx, page, s.perPage)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(
		shopResponses(result.Items),
		result.Page,
		result.PerPage,
		result.TotalCount,
		result.TotalPages,
	), nil
}

func (s *shopService) GetShop(ctx context.Context, id uuid.UUID) (*response.ShopResponse, error) {
	shop, err := s.repo.Shop.ReadSingle(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrNotFound
	}

	return response.NewShopResponse(shop), nil
}

func (s *shopService) GetAllShops(ctx context.Context) ([]*response.ShopResponse, error) {
	shops, err := s.repo.Shop.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	return shopResponses(shops), nil
}

func (s *shopService) MapMarkers(ctx context.Context) ([]*repository.MapMarker, error) {
	return s.repo.Shop.MapMarkers(ctx)
}

// GetShopPieces pages through the inventory of the shop's owner.
func (s *shopService) GetShopPieces(ctx context.Context, shopID uuid.UUID, page int) (*response.PaginatedResponse[*response.PieceResponse], error) {
	// 1. The shop must exist
	shop, err := s.repo.Shop.ReadSingle(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrNotFound
	}

	// 2. Pieces hang off the owning user
	result, err := s.repo.Piece.ReadPage(ctx, page, s.perPage,
		repository.Filter{Column: "user_id", Value: shop.UserID},
	)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(
		response.NewPieceResponses(result.Items),
		result.Page,
		result.PerPage,
		result.TotalCount,
		result.TotalPages,
	), nil
}

// AssociateBrand records that the caller's shop carries the brand.
func (s *shopService) AssociateBrand(ctx context.Context, userID, brandID uuid.UUID) (*response.BrandResponse, error) {
	// 1. The caller must own a shop
	shop, err := s.repo.Shop.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrNotLinked
	}

	// 2. The brand must exist
	brand, err := s.repo.Brand.ReadSingle(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrNotFound
	}

	// 3. Once is enough
	existing, err := s.repo.ShopToBrand.Find(ctx, shop.ID, brandID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyAssociated
	}

	association := &entity.ShopToBrand{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ShopID:  shop.ID,
		BrandID: brandID,
	}
	if err := s.repo.ShopToBrand.Create(ctx, association); err != nil {
		return nil, err
	}

	s.log.Info("Shop associated with brand",
		zap.String("shop_id", shop.ID.String()),
		zap.String("brand_id", brandID.String()),
	)

	return response.NewBrandResponse(brand), nil
}

// AssociatedBrands lists the brands a shop carries.
func (s *shopService) AssociatedBrands(ctx context.Context, shopID uuid.UUID) ([]*response.BrandResponse, error) {
	// 1. The shop must exist
	shop, err := s.repo.Shop.ReadSingle(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrNotFound
	}

	// 2. Resolve the association rows to brands
	associations, err := s.repo.ShopToBrand.ListByShop(ctx, shop.ID)
	if err != nil {
		return nil, err
	}

	brands := make([]*response.BrandResponse, 0, len(associations))
	for _, association := range associations {
		brand, err := s.repo.Brand.ReadSingle(ctx, association.BrandID)
		if err != nil {
			return nil, err
		}
		if brand == nil {
			continue
		}
		brands = append(brands, response.NewBrandResponse(brand))
	}

	return brands, nil
}

// Remove deletes the shop and rolls its owner back to unlinked so the
// directory never shows a profile whose owner claims a different state.
func (s *shopService) Remove(ctx context.Context, shopID uuid.UUID) error {
	shop, err := s.repo.Shop.ReadSingle(ctx, shopID)
	if err != nil {
		return err
	}
	if shop == nil {
		return ErrNotFound
	}

	err = s.repo.WithTx(ctx, func(r *repository.Repository) error {
		if err := r.Shop.Delete(ctx, shop.ID); err != nil {
			return err
		}
		return unlinkOwner(ctx, r, shop.UserID)
	})
	if err != nil {
		return err
	}

	s.log.Info("Shop removed",
		zap.String("shop_id", shop.ID.String()),
		zap.String("user_id", shop.UserID.String()),
	)
	return nil
}

func shopResponses(shops []*entity.Shop) []*response.ShopResponse {
	responses := make([]*response.ShopResponse, 0, len(shops))
	for _, shop := range shops {
		responses = append(responses, response.NewShopResponse(shop))
	}
	return responses
}

// unlinkOwner clears the owner's linked flag inside the caller's
// transaction. A missing owner is tolerated; the profile is already
// going away.
func unlinkOwner(ctx context.Context, r *repository.Repository, userID uuid.UUID) error {
	user, err := r.User.FindByIDForUpdate(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	user.Linked = false
	user.Type = nil
	user.UpdatedAt = time.Now()
	return r.User.Update(ctx, user)
}
