package usecase

import (
	"context"
	"time"

	"glassfinder/internal/data/entity"
	"glassfinder/internal/data/repository"
	"glassfinder/internal/dto/request"
	"glassfinder/internal/dto/response"
	"glassfinder/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PieceService manages user-owned inventory. Reads are public; every
// mutation is gated on ownership.
type PieceService interface {
	GetPieces(ctx context.Context, page int) (*response.PaginatedResponse[*response.PieceResponse], error)
	GetPiece(ctx context.Context, id uuid.UUID) (*response.PieceResponse, error)
	GetUserPieces(ctx context.Context, userID uuid.UUID, page int) (*response.PaginatedResponse[*response.PieceResponse], error)
	Create(ctx context.Context, userID uuid.UUID, req *request.PieceRequest) (*response.PieceResponse, error)
	Update(ctx context.Context, userID, pieceID uuid.UUID, req *request.PieceUpdateRequest) (*response.PieceResponse, error)
	Delete(ctx context.Context, userID, pieceID uuid.UUID) error
}

type pieceService struct {
	repo    *repository.Repository
	perPage int
	log     *zap.Logger
}

func NewPieceService(repo *repository.Repository, perPage int, log *zap.Logger) PieceService {
	return &pieceService{
		repo:    repo,
		perPage: perPage,
		log:     log,
	}
}

func (s *pieceService) GetPieces(ctx context.Context, page int) (*response.PaginatedResponse[*response.PieceResponse], error) {
	result, err := s.repo.Piece.ReadPage(ctx, page, s.perPage)
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

func (s *pieceService) GetPiece(ctx context.Context, id uuid.UUID) (*response.PieceResponse, error) {
	piece, err := s.repo.Piece.ReadSingle(ctx, id)
	if err != nil {
		return nil, err
	}
	if piece == nil {
		return nil, ErrNotFound
	}

	return response.NewPieceResponse(piece), nil
}

func (s *pieceService) GetUserPieces(ctx context.Context, userID uuid.UUID, page int) (*response.PaginatedResponse[*response.PieceResponse], error) {
	result, err := s.repo.Piece.ReadPage(ctx, page, s.perPage,
		repository.Filter{Column: "user_id", Value: userID},
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

func (s *pieceService) Create(ctx context.Context, userID uuid.UUID, req *request.PieceRequest) (*response.PieceResponse, error) {
	// 1. Resolve the optional artist/brand credits
	artistID, err := parseOptionalID(req.ArtistID)
	if err != nil {
		return nil, err
	}
	brandID, err := parseOptionalID(req.BrandID)
	if err != nil {
		return nil, err
	}

	// 2. A foreign-key credit must point at an existing profile
	if artistID != nil {
		artist, err := s.repo.Artist.ReadSingle(ctx, *artistID)
		if err != nil {
			return nil, err
		}
		if artist == nil {
			return nil, ErrNotFound
		}
	}
	if brandID != nil {
		brand, err := s.repo.Brand.ReadSingle(ctx, *brandID)
		if err != nil {
			return nil, err
		}
		if brand == nil {
			return nil, ErrNotFound
		}
	}

	now := time.Now()
	piece := &entity.Piece{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		ArtistID:    artistID,
		BrandID:     brandID,
		ArtistEntry: req.ArtistEntry,
		BrandEntry:  req.BrandEntry,
		Name:        req.Name,
		Maker:       req.Maker,
		Price:       req.Price,
		Description: req.Description,
		Location:    req.Location,
		Image:       req.Image,
	}

	if err := s.repo.Piece.Create(ctx, piece); err != nil {
		return nil, err
	}

	s.log.Info("Piece created",
		zap.String("piece_id", piece.ID.String()),
		zap.String("user_id", userID.String()),
	)

	return response.NewPieceResponse(piece), nil
}

func (s *pieceService) Update(ctx context.Context, userID, pieceID uuid.UUID, req *request.PieceUpdateRequest) (*response.PieceResponse, error) {
	// 1. The piece must exist and belong to the caller
	piece, err := s.ownedPiece(ctx, userID, pieceID)
	if err != nil {
		return nil, err
	}

	// 2. Apply only the provided fields
	if req.Name != nil {
		piece.Name = *req.Name
	}
	if req.Maker != nil {
		piece.Maker = *req.Maker
	}
	if req.Price != nil {
		piece.Price = *req.Price
	}
	if req.Description != nil {
		piece.Description = *req.Description
	}
	if req.Location != nil {
		piece.Location = *req.Location
	}
	if req.Image != nil {
		piece.Image = req.Image
	}
	if req.ArtistEntry != nil {
		piece.ArtistEntry = req.ArtistEntry
	}
	if req.BrandEntry != nil {
		piece.BrandEntry = req.BrandEntry
	}
	if req.ArtistID != nil {
		artistID, err := utils.ParseUUID(*req.ArtistID)
		if err != nil {
			return nil, ErrValidation
		}
		piece.ArtistID = &artistID
	}
	if req.BrandID != nil {
		brandID, err := utils.ParseUUID(*req.BrandID)
		if err != nil {
			return nil, ErrValidation
		}
		piece.BrandID = &brandID
	}

	piece.UpdatedAt = time.Now()
	if err := s.repo.Piece.Update(ctx, piece); err != nil {
		return nil, err
	}

	return response.NewPieceResponse(piece), nil
}

func (s *pieceService) Delete(ctx context.Context, userID, pieceID uuid.UUID) error {
	piece, err := s.ownedPiece(ctx, userID, pieceID)
	if err != nil {
		return err
	}

	if err := s.repo.Piece.Delete(ctx, piece.ID); err != nil {
		return err
	}

	s.log.Info("Piece deleted",
		zap.String("piece_id", piece.ID.String()),
		zap.String("user_id", userID.String()),
	)
	return nil
}

func (s *pieceService) ownedPiece(ctx context.Context, userID, pieceID uuid.UUID) (*entity.Piece, error) {
	piece, err := s.repo.Piece.ReadSingle(ctx, pieceID)
	if err != nil {
		return nil, err
	}
	if piece == nil {
		return nil, ErrNotFound
	}
	if piece.UserID != userID {
		return nil, ErrNotOwner
	}
	return piece, nil
}

func parseOptionalID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := utils.ParseUUID(*raw)
	if err != nil {
		return nil, ErrValidation
	}
	return &id, nil
}
