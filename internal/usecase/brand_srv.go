package usecase

import (
	"context"

	"glassfinder/internal/data/entity"
	"glassfinder/internal/data/repository"
	"glassfinder/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BrandService serves the public brand directory.
type BrandService interface {
	GetBrands(ctx context.Context, page int) (*response.PaginatedResponse[*response.BrandResponse], error)
	GetBrand(ctx context.Context, id uuid.UUID) (*response.BrandResponse, error)
	GetAllBrands(ctx context.Context) ([]*response.BrandResponse, error)
	GetBrandPieces(ctx context.Context, brandID uuid.UUID, page int) (*response.PaginatedResponse[*response.PieceResponse], error)
	Remove(ctx context.Context, brandID uuid.UUID) error
}

type brandService struct {
	repo    *repository.Repository
	perPage int
	log     *zap.Logger
}

func NewBrandService(repo *repository.Repository, perPage int, log *zap.Logger) BrandService {
	return &brandService{
		repo:    repo,
		perPage: perPage,
		log:     log,
	}
}

func (s *brandService) GetBrands(ctx context.Context, page int) (*response.PaginatedResponse[*response.BrandResponse], error) {
	result, err := s.repo.Brand.ReadPage(ctx, page, s.perPage)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(
		brandResponses(result.Items),
		result.Page,
		result.PerPage,
		result.TotalCount,
		result.TotalPages,
	), nil
}

func (s *brandService) GetBrand(ctx context.Context, id uuid.UUID) (*response.BrandResponse, error) {
	brand, err := s.repo.Brand.ReadSingle(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrNotFound
	}

	return response.NewBrandResponse(brand), nil
}

func (s *brandService) GetAllBrands(ctx context.Context) ([]*response.BrandResponse, error) {
	brands, err := s.repo.Brand.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	return brandResponses(brands), nil
}

// GetBrandPieces pages through the pieces credited to the brand.
func (s *brandService) GetBrandPieces(ctx context.Context, brandID uuid.UUID, page int) (*response.PaginatedResponse[*response.PieceResponse], error) {
	// 1. The brand must exist
	brand, err := s.repo.Brand.ReadSingle(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrNotFound
	}

	// 2. Credit is by foreign key, not free-text entry
	result, err := s.repo.Piece.ReadPage(ctx, page, s.perPage,
		repository.Filter{Column: "brand_id", Value: brand.ID},
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

// Remove deletes the brand profile and rolls its owner back to
// unlinked.
func (s *brandService) Remove(ctx context.Context, brandID uuid.UUID) error {
	brand, err := s.repo.Brand.ReadSingle(ctx, brandID)
	if err != nil {
		return err
	}
	if brand == nil {
		return ErrNotFound
	}

	err = s.repo.WithTx(ctx, func(r *repository.Repository) error {
		if err := r.Brand.Delete(ctx, brand.ID); err != nil {
			return err
		}
		return unlinkOwner(ctx, r, brand.UserID)
	})
	if err != nil {
		return err
	}

	s.log.Info("Brand removed",
		zap.String("brand_id", brand.ID.String()),
		zap.String("user_id", brand.UserID.String()),
	)
	return nil
}

func brandResponses(brands []*entity.Brand) []*response.BrandResponse {
	responses := make([]*response.BrandResponse, 0, len(brands))
	for _, brand := range brands {
		responses = append(responses, response.NewBrandResponse(brand))
	}
	return responses
}
