package usecase

import (
	"context"

	"glassfinder/internal/data/entity"
	"glassfinder/internal/data/repository"
	"glassfinder/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ArtistService serves the public artist directory.
type ArtistService interface {
	GetArtists(ctx context.Context, page int) (*response.PaginatedResponse[*response.ArtistResponse], error)
	GetArtist(ctx context.Context, id uuid.UUID) (*response.ArtistResponse, error)
	GetAllArtists(ctx context.Context) ([]*response.ArtistResponse, error)
	GetArtistPieces(ctx context.Context, artistID uuid.UUID, page int) (*response.PaginatedResponse[*response.PieceResponse], error)
	Remove(ctx context.Context, artistID uuid.UUID) error
}

type artistService struct {
	repo    *repository.Repository
	perPage int
	log     *zap.Logger
}

func NewArtistService(repo *repository.Repository, perPage int, log *zap.Logger) ArtistService {
	return &artistService{
		repo:    repo,
		perPage: perPage,
		log:     log,
	}
}

func (s *artistService) GetArtists(ctx context.Context, page int) (*response.PaginatedResponse[*response.ArtistResponse], error) {
	result, err := s.repo.Artist.ReadPage(ctx, page, s.perPage)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(
		artistResponses(result.Items),
		result.Page,
		result.PerPage,
		result.TotalCount,
		result.TotalPages,
	), nil
}

func (s *artistService) GetArtist(ctx context.Context, id uuid.UUID) (*response.ArtistResponse, error) {
	artist, err := s.repo.Artist.ReadSingle(ctx, id)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, ErrNotFound
	}

	return response.NewArtistResponse(artist), nil
}

func (s *artistService) GetAllArtists(ctx context.Context) ([]*response.ArtistResponse, error) {
	artists, err := s.repo.Artist.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	return artistResponses(artists), nil
}

// GetArtistPieces pages through the pieces credited to the artist.
func (s *artistService) GetArtistPieces(ctx context.Context, artistID uuid.UUID, page int) (*response.PaginatedResponse[*response.PieceResponse], error) {
	// 1. The artist must exist
	artist, err := s.repo.Artist.ReadSingle(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, ErrNotFound
	}

	// 2. Credit is by foreign key, not free-text entry
	result, err := s.repo.Piece.ReadPage(ctx, page, s.perPage,
		repository.Filter{Column: "artist_id", Value: artist.ID},
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

// Remove deletes the artist profile and rolls its owner back to
// unlinked.
func (s *artistService) Remove(ctx context.Context, artistID uuid.UUID) error {
	artist, err := s.repo.Artist.ReadSingle(ctx, artistID)
	if err != nil {
		return err
	}
	if artist == nil {
		return ErrNotFound
	}

	err = s.repo.WithTx(ctx, func(r *repository.Repository) error {
		if err := r.Artist.Delete(ctx, artist.ID); err != nil {
			return err
		}
		return unlinkOwner(ctx, r, artist.UserID)
	})
	if err != nil {
		return err
	}

	s.log.Info("Artist removed",
		zap.String("artist_id", artist.ID.String()),
		zap.String("user_id", artist.UserID.String()),
	)
	return nil
}

func artistResponses(artists []*entity.Artist) []*response.ArtistResponse {
	responses := make([]*response.ArtistResponse, 0, len(artists))
	for _, artist := range artists {
		responses = append(responses, response.NewArtistResponse(artist))
	}
	return responses
}
