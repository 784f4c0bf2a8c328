package repository

import (
	"context"
	"fmt"

	"glassfinder/internal/data/entity"
	"glassfinder/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PieceRepository interface {
	Create(ctx context.Context, piece *entity.Piece) error
	ReadPage(ctx context.Context, page, perPage int, filters ...Filter) (*Page[entity.Piece], error)
	ReadSingle(ctx context.Context, id uuid.UUID) (*entity.Piece, error)
	ReadAll(ctx context.Context, filters ...Filter) ([]*entity.Piece, error)
	Count(ctx context.Context, filters ...Filter) (int64, error)
	Update(ctx context.Context, piece *entity.Piece) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var pieceColumns = []string{
	"id", "user_id", "artist_id", "brand_id", "artist_entry", "brand_entry",
	"name", "maker", "price", "description", "location", "image",
	"created_at", "updated_at",
}

type pieceRepository struct {
	*CollectionReader[entity.Piece]
	db  database.Querier
	log *zap.Logger
}

func NewPieceRepository(db database.Querier, log *zap.Logger) PieceRepository {
	return &pieceRepository{
		CollectionReader: NewCollectionReader(db, log, "pieces", pieceColumns, true, scanPiece),
		db:               db,
		log:              log,
	}
}

func scanPiece(row RowScanner) (*entity.Piece, error) {
	var piece entity.Piece
	err := row.Scan(
		&piece.ID,
		&piece.UserID,
		&piece.ArtistID,
		&piece.BrandID,
		&piece.ArtistEntry,
		&piece.BrandEntry,
		&piece.Name,
		&piece.Maker,
		&piece.Price,
		&piece.Description,
		&piece.Location,
		&piece.Image,
		&piece.CreatedAt,
		&piece.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &piece, nil
}

func (pr *pieceRepository) Create(ctx context.Context, piece *entity.Piece) error {
	query := `
		INSERT INTO pieces (id, user_id, artist_id, brand_id, artist_entry,
		                    brand_entry, name, maker, price, description,
		                    location, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := pr.db.Exec(ctx, query,
		piece.ID,
		piece.UserID,
		piece.ArtistID,
		piece.BrandID,
		piece.ArtistEntry,
		piece.BrandEntry,
		piece.Name,
		piece.Maker,
		piece.Price,
		piece.Description,
		piece.Location,
		piece.Image,
		piece.CreatedAt,
		piece.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to create piece",
			zap.Error(err),
			zap.String("user_id", piece.UserID.String()),
			zap.String("name", piece.Name),
		)
		return fmt.Errorf("create piece %s: %w", piece.Name, err)
	}

	return nil
}

func (pr *pieceRepository) Update(ctx context.Context, piece *entity.Piece) error {
	query := `
		UPDATE pieces
		SET artist_id = $2, brand_id = $3, artist_entry = $4, brand_entry = $5,
		    name = $6, maker = $7, price = $8, description = $9,
		    location = $10, image = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := pr.db.Exec(ctx, query,
		piece.ID,
		piece.ArtistID,
		piece.BrandID,
		piece.ArtistEntry,
		piece.BrandEntry,
		piece.Name,
		piece.Maker,
		piece.Price,
		piece.Description,
		piece.Location,
		piece.Image,
		piece.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to update piece",
			zap.Error(err),
			zap.String("piece_id", piece.ID.String()),
		)
		return fmt.Errorf("update piece %s: %w", piece.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("piece %s not found or already deleted", piece.ID.String())
	}

	return nil
}

func (pr *pieceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE pieces SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := pr.db.Exec(ctx, query, id)
	if err != nil {
		pr.log.Error("Failed to delete piece",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete piece %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("piece %s not found", id.String())
	}

	return nil
}
