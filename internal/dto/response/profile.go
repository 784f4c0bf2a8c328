package response

import (
	"glassfinder/internal/data/entity"
)

type ShopResponse struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Street      string   `json:"street"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Zip         string   `json:"zip"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Image       *string  `json:"image"`
}

func NewShopResponse(shop *entity.Shop) *ShopResponse {
	return &ShopResponse{
		ID:          shop.ID.String(),
		UserID:      shop.UserID.String(),
		Name:        shop.Name,
		Description: shop.Description,
		Email:       shop.Email,
		Phone:       shop.Phone,
		Street:      shop.Street,
		City:        shop.City,
		State:       shop.State,
		Zip:         shop.Zip,
		Lat:         shop.Lat,
		Lng:         shop.Lng,
		Image:       shop.Image,
	}
}

type ArtistResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	From        string  `json:"from"`
	Image       *string `json:"image"`
}

func NewArtistResponse(artist *entity.Artist) *ArtistResponse {
	return &ArtistResponse{
		ID:          artist.ID.String(),
		UserID:      artist.UserID.String(),
		Name:        artist.Name,
		Description: artist.Description,
		From:        artist.From,
		Image:       artist.Image,
	}
}

type BrandResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	From        string  `json:"from"`
	Site        *string `json:"site"`
}

func NewBrandResponse(brand *entity.Brand) *BrandResponse {
	return &BrandResponse{
		ID:          brand.ID.String(),
		UserID:      brand.UserID.String(),
		Name:        brand.Name,
		Description: brand.Description,
		From:        brand.From,
		Site:        brand.Site,
	}
}

// ProfileResponse wraps whichever kind the user is linked as, plus the
// tagged lifecycle state so clients never have to infer it.
type ProfileResponse struct {
	State entity.LinkState `json:"state"`
	Type  *entity.LinkType `json:"type"`
	Link  any              `json:"link"`
}
