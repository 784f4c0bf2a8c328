package entity

import (
	"github.com/google/uuid"
)

// ShopToBrand records that a shop carries a brand's glass.
type ShopToBrand struct {
	BaseSimple
	ShopID  uuid.UUID `db:"shop_id"`
	BrandID uuid.UUID `db:"brand_id"`
}
