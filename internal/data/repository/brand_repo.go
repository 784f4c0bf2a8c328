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

type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Brand, error)
	ReadPage(ctx context.Context, page, perPage int, filters ...Filter) (*Page[entity.Brand], error)
	ReadSingle(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	ReadAll(ctx context.Context, filters ...Filter) ([]*entity.Brand, error)
	Update(ctx context.Context, brand *entity.Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

var brandColumns = []string{
	"id", "user_id", "name", "description", "origin", "site",
	"created_at", "updated_at",
}

type brandRepository struct {
	*CollectionReader[entity.Brand]
	db  database.Querier
	log *zap.Logger
}

func NewBrandRepository(db database.Querier, log *zap.Logger) BrandRepository {
	return &brandRepository{
		CollectionReader: NewCollectionReader(db, log, "brands", brandColumns, true, scanBrand),
		db:               db,
		log:              log,
	}
}

func scanBrand(row RowScanner) (*entity.Brand, error) {
	var brand entity.Brand
	err := row.Scan(
		&brand.ID,
		&brand.UserID,
		&brand.Name,
		&brand.Description,
		&brand.From,
		&brand.Site,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (br *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	query := `
		INSERT INTO brands (id, user_id, name, description, origin, site,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := br.db.Exec(ctx, query,
		brand.ID,
		brand.UserID,
		brand.Name,
		brand.Description,
		brand.From,
		brand.Site,
		brand.CreatedAt,
		brand.UpdatedAt,
	)

	if err != nil {
		br.log.Error("Failed to create brand",
			zap.Error(err),
			zap.String("user_id", brand.UserID.String()),
		)
		return fmt.Errorf("create brand for user %s: %w", brand.UserID.String(), err)
	}

	return nil
}

func (br *brandRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Brand, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM brands
		WHERE user_id = $1 AND deleted_at IS NULL
	`, joinColumns(brandColumns))

	brand, err := scanBrand(br.db.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		br.log.Error("Failed to find brand by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find brand for user %s: %w", userID.String(), err)
	}

	return brand, nil
}

func (br *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	query := `
		UPDATE brands
		SET name = $2, description = $3, origin = $4, site = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := br.db.Exec(ctx, query,
		brand.ID,
		brand.Name,
		brand.Description,
		brand.From,
		brand.Site,
		brand.UpdatedAt,
	)

	if err != nil {
		br.log.Error("Failed to update brand",
			zap.Error(err),
			zap.String("brand_id", brand.ID.String()),
		)
		return fmt.Errorf("update brand %s: %w", brand.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("brand %s not found or already deleted", brand.ID.String())
	}

	return nil
}

func (br *brandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return br.softDeleteBy(ctx, "id", id)
}

func (br *brandRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return br.softDeleteBy(ctx, "user_id", userID)
}

func (br *brandRepository) softDeleteBy(ctx context.Context, column string, id uuid.UUID) error {
	query := fmt.Sprintf(
		"UPDATE brands SET deleted_at = NOW() WHERE %s = $1 AND deleted_at IS NULL",
		column,
	)

	result, err := br.db.Exec(ctx, query, id)
	if err != nil {
		br.log.Error("Failed to delete brand",
			zap.Error(err),
			zap.String(column, id.String()),
		)
		return fmt.Errorf("delete brand by %s %s: %w", column, id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("brand with %s %s not found", column, id.String())
	}

	return nil
}
