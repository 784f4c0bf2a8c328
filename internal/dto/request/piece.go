package request

type PieceRequest struct {
	Name        string   `json:"name" validate:"required,max=120"`
	Maker       string   `json:"maker" validate:"required,max=120"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Description string   `json:"description" validate:"max=500"`
	Location    string   `json:"location" validate:"required,max=100"`
	ArtistID    *string  `json:"artistId" validate:"omitempty,uuid"`
	BrandID     *string  `json:"brandId" validate:"omitempty,uuid"`
	ArtistEntry *string  `json:"artistEntry" validate:"omitempty,max=120"`
	BrandEntry  *string  `json:"brandEntry" validate:"omitempty,max=120"`
	Image       *string  `json:"image" validate:"omitempty,url"`
}

type PieceUpdateRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=120"`
	Maker       *string  `json:"maker" validate:"omitempty,max=120"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Location    *string  `json:"location" validate:"omitempty,max=100"`
	ArtistID    *string  `json:"artistId" validate:"omitempty,uuid"`
	BrandID     *string  `json:"brandId" validate:"omitempty,uuid"`
	ArtistEntry *string  `json:"artistEntry" validate:"omitempty,max=120"`
	BrandEntry  *string  `json:"brandEntry" validate:"omitempty,max=120"`
	Image       *string  `json:"image" validate:"omitempty,url"`
}
