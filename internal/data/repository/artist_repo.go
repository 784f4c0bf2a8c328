package repository

import (
	"context"
	"fmt"

	"glassfinder/internal/data/entity"
	"glassfinder/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ArtistRepository interface {
	Create(ctx context.Context, artist *entity.Artist) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Artist, error)
	ReadPage(ctx context.Context, page, perPage int, filters ...Filter) (*Page[entity.Artist], error)
	ReadSingle(ctx context.Context, id uuid.UUID) (*entity.Artist, error)
	ReadAll(ctx context.Context, filters ...Filter) ([]*entity.Artist, error)
	Update(ctx context.Context, artist *entity.Artist) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

var artistColumns = []string{
	"id", "user_id", "name", "description", "origin", "image",
	"created_at", "updated_at",
}

type artistRepository struct {
	*CollectionReader[entity.Artist]
	db  database.Querier
	log *zap.Logger
}

func NewArtistRepository(db database.Querier, log *zap.Logger) ArtistRepository {
	return &artistRepository{
		CollectionReader: NewCollectionReader(db, log, "artists", artistColumns, true, scanArtist),
		db:               db,
		log:              log,
	}
}

func scanArtist(row RowScanner) (*entity.Artist, error) {
	var artist entity.Artist
	err := row.Scan(
		&artist.ID,
		&artist.UserID,
		&artist.Name,
		&artist.Description,
		&artist.From,
		&artist.Image,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (ar *artistRepository) Create(ctx context.Context, artist *entity.Artist) error {
	query := `
		INSERT INTO artists (id, user_id, name, description, origin, image,
		                     created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := ar.db.Exec(ctx, query,
		artist.ID,
		artist.UserID,
		artist.Name,
		artist.Description,
		artist.From,
		artist.Image,
		artist.CreatedAt,
		artist.UpdatedAt,
	)

	if err != nil {
		ar.log.Error("Failed to create artist",
			zap.Error(err),
			zap.String("user_id", artist.UserID.String()),
		)
		return fmt.Errorf("create artist for user %s: %w", artist.UserID.String(), err)
	}

	return nil
}

func (ar *artistRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Artist, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM artists
		WHERE user_id = $1 AND deleted_at IS NULL
	`, joinColumns(artistColumns))

	artist, err := scanArtist(ar.db.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ar.log.Error("Failed to find artist by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find artist for user %s: %w", userID.String(), err)
	}

	return artist, nil
}

func (ar *artistRepository) Update(ctx context.Context, artist *entity.Artist) error {
	query := `
		UPDATE artists
		SET name = $2, description = $3, origin = $4, image = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := ar.db.Exec(ctx, query,
		artist.ID,
		artist.Name,
		artist.Description,
		artist.From,
		artist.Image,
		artist.UpdatedAt,
	)

	if err != nil {
		ar.log.Error("Failed to update artist",
			zap.Error(err),
			zap.String("artist_id", artist.ID.String()),
		)
		return fmt.Errorf("update artist %s: %w", artist.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("artist %s not found or already deleted", artist.ID.String())
	}

	return nil
}

func (ar *artistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return ar.softDeleteBy(ctx, "id", id)
}

func (ar *artistRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return ar.softDeleteBy(ctx, "user_id", userID)
}

func (ar *artistRepository) softDeleteBy(ctx context.Context, column string, id uuid.UUID) error {
	query := fmt.Sprintf(
		"UPDATE artists SET deleted_at = NOW() WHERE %s = $1 AND deleted_at IS NULL",
		column,
	)

	result, err := ar.db.Exec(ctx, query, id)
	if err != nil {
		ar.log.Error("Failed to delete artist",
			zap.Error(err),
			zap.String(column, id.String()),
		)
		return fmt.Errorf("delete artist by %s %s: %w", column, id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("artist with %s %s not found", column, id.String())
	}

	return nil
}
