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

type ShopToBrandRepository interface {
	Create(ctx context.Context, association *entity.ShopToBrand) error
	Find(ctx context.Context, shopID, brandID uuid.UUID) (*entity.ShopToBrand, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.ShopToBrand, error)
}

var shopToBrandColumns = []string{"id", "shop_id", "brand_id", "created_at"}

type shopToBrandRepository struct {
	*CollectionReader[entity.ShopToBrand]
	db  database.Querier
	log *zap.Logger
}

func NewShopToBrandRepository(db database.Querier, log *zap.Logger) ShopToBrandRepository {
	return &shopToBrandRepository{
		CollectionReader: NewCollectionReader(db, log, "shop_to_brands", shopToBrandColumns, false, scanShopToBrand),
		db:               db,
		log:              log,
	}
}

func scanShopToBrand(row RowScanner) (*entity.ShopToBrand, error) {
	var association entity.ShopToBrand
	err := row.Scan(
		&association.ID,
		&association.ShopID,
		&association.BrandID,
		&association.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &association, nil
}

func (str *shopToBrandRepository) Create(ctx context.Context, association *entity.ShopToBrand) error {
	query := `
		INSERT INTO shop_to_brands (id, shop_id, brand_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := str.db.Exec(ctx, query,
		association.ID,
		association.ShopID,
		association.BrandID,
		association.CreatedAt,
	)

	if err != nil {
		str.log.Error("Failed to associate shop with brand",
			zap.Error(err),
			zap.String("shop_id", association.ShopID.String()),
			zap.String("brand_id", association.BrandID.String()),
		)
		return fmt.Errorf("associate shop %s with brand %s: %w",
			association.ShopID.String(), association.BrandID.String(), err)
	}

	return nil
}

func (str *shopToBrandRepository) Find(ctx context.Context, shopID, brandID uuid.UUID) (*entity.ShopToBrand, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM shop_to_brands
		WHERE shop_id = $1 AND brand_id = $2
	`, joinColumns(shopToBrandColumns))

	association, err := scanShopToBrand(str.db.QueryRow(ctx, query, shopID, brandID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		str.log.Error("Failed to find shop-brand association",
			zap.Error(err),
			zap.String("shop_id", shopID.String()),
			zap.String("brand_id", brandID.String()),
		)
		return nil, fmt.Errorf("find association: %w", err)
	}

	return association, nil
}

func (str *shopToBrandRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.ShopToBrand, error) {
	return str.ReadAll(ctx, Filter{Column: "shop_id", Value: shopID})
}
