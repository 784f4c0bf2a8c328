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

// MapMarker is the trimmed shop projection the map view renders.
type MapMarker struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Lat  float64   `json:"lat"`
	Lng  float64   `json:"lng"`
}

type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Shop, error)
	ReadPage(ctx context.Context, page, perPage int, filters ...Filter) (*Page[entity.Shop], error)
	ReadSingle(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	ReadAll(ctx context.Context, filters ...Filter) ([]*entity.Shop, error)
	Update(ctx context.Context, shop *entity.Shop) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	MapMarkers(ctx context.Context) ([]*MapMarker, error)
}

var shopColumns = []string{
	"id", "user_id", "name", "description", "email", "phone",
	"street", "city", "state", "zip", "lat", "lng", "image",
	"created_at", "updated_at",
}

type shopRepository struct {
	*CollectionReader[entity.Shop]
	db  database.Querier
	log *zap.Logger
}

func NewShopRepository(db database.Querier, log *zap.Logger) ShopRepository {
	return &shopRepository{
		CollectionReader: NewCollectionReader(db, log, "shops", shopColumns, true, scanShop),
		db:               db,
		log:              log,
	}
}

func scanShop(row RowScanner) (*entity.Shop, error) {
	var shop entity.Shop
	err := row.Scan(
		&shop.ID,
		&shop.UserID,
		&shop.Name,
		&shop.Description,
		&shop.Email,
		&shop.Phone,
		&shop.Street,
		&shop.City,
		&shop.State,
		&shop.Zip,
		&shop.Lat,
		&shop.Lng,
		&shop.Image,
		&shop.CreatedAt,
		&shop.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (sr *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	query := `
		INSERT INTO shops (id, user_id, name, description, email, phone,
		                   street, city, state, zip, lat, lng, image,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := sr.db.Exec(ctx, query,
		shop.ID,
		shop.UserID,
		shop.Name,
		shop.Description,
		shop.Email,
		shop.Phone,
		shop.Street,
		shop.City,
		shop.State,
		shop.Zip,
		shop.Lat,
		shop.Lng,
		shop.Image,
		shop.CreatedAt,
		shop.UpdatedAt,
	)

	if err != nil {
		sr.log.Error("Failed to create shop",
			zap.Error(err),
			zap.String("user_id", shop.UserID.String()),
		)
		return fmt.Errorf("create shop for user %s: %w", shop.UserID.String(), err)
	}

	return nil
}

func (sr *shopRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Shop, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM shops
		WHERE user_id = $1 AND deleted_at IS NULL
	`, joinColumns(shopColumns))

	shop, err := scanShop(sr.db.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find shop by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find shop for user %s: %w", userID.String(), err)
	}

	return shop, nil
}

func (sr *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	query := `
		UPDATE shops
		SET name = $2, description = $3, email = $4, phone = $5,
		    street = $6, city = $7, state = $8, zip = $9,
		    lat = $10, lng = $11, image = $12, updated_at = $13
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := sr.db.Exec(ctx, query,
		shop.ID,
		shop.Name,
		shop.Description,
		shop.Email,
		shop.Phone,
		shop.Street,
		shop.City,
		shop.State,
		shop.Zip,
		shop.Lat,
		shop.Lng,
		shop.Image,
		shop.UpdatedAt,
	)

	if err != nil {
		sr.log.Error("Failed to update shop",
			zap.Error(err),
			zap.String("shop_id", shop.ID.String()),
		)
		return fmt.Errorf("update shop %s: %w", shop.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("shop %s not found or already deleted", shop.ID.String())
	}

	return nil
}

func (sr *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return sr.softDeleteBy(ctx, "id", id)
}

func (sr *shopRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return sr.softDeleteBy(ctx, "user_id", userID)
}

func (sr *shopRepository) softDeleteBy(ctx context.Context, column string, id uuid.UUID) error {
	query := fmt.Sprintf(
		"UPDATE shops SET deleted_at = NOW() WHERE %s = $1 AND deleted_at IS NULL",
		column,
	)

	result, err := sr.db.Exec(ctx, query, id)
	if err != nil {
		sr.log.Error("Failed to delete shop",
			zap.Error(err),
			zap.String(column, id.String()),
		)
		return fmt.Errorf("delete shop by %s %s: %w", column, id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("shop with %s %s not found", column, id.String())
	}

	return nil
}

// MapMarkers returns every geocoded shop as a map pin.
func (sr *shopRepository) MapMarkers(ctx context.Context) ([]*MapMarker, error) {
	query := `
		SELECT id, name, lat, lng
		FROM shops
		WHERE lat IS NOT NULL AND lng IS NOT NULL AND deleted_at IS NULL
		ORDER BY created_at ASC, id ASC
	`

	rows, err := sr.db.Query(ctx, query)
	if err != nil {
		sr.log.Error("Failed to read map markers", zap.Error(err))
		return nil, fmt.Errorf("read map markers: %w", err)
	}
	defer rows.Close()

	markers := []*MapMarker{}
	for rows.Next() {
		var marker MapMarker
		if err := rows.Scan(&marker.ID, &marker.Name, &marker.Lat, &marker.Lng); err != nil {
			sr.log.Error("Failed to scan map marker", zap.Error(err))
			return nil, fmt.Errorf("scan map marker: %w", err)
		}
		markers = append(markers, &marker)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate map markers: %w", err)
	}

	return markers, nil
}
