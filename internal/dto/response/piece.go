package response

import (
	"glassfinder/internal/data/entity"
)

type PieceResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	ArtistID    *string `json:"artistId"`
	BrandID     *string `json:"brandId"`
	ArtistEntry *string `json:"artistEntry"`
	BrandEntry  *string `json:"brandEntry"`
	Name        string  `json:"name"`
	Maker       string  `json:"maker"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Image       *string `json:"image"`
}

func NewPieceResponse(piece *entity.Piece) *PieceResponse {
	resp := &PieceResponse{
		ID:          piece.ID.String(),
		UserID:      piece.UserID.String(),
		ArtistEntry: piece.ArtistEntry,
		BrandEntry:  piece.BrandEntry,
		Name:        piece.Name,
		Maker:       piece.Maker,
		Price:       piece.Price,
		Description: piece.Description,
		Location:    piece.Location,
		Image:       piece.Image,
	}

	if piece.ArtistID != nil {
		artistID := piece.ArtistID.String()
		resp.ArtistID = &artistID
	}
	if piece.BrandID != nil {
		brandID := piece.BrandID.String()
		resp.BrandID = &brandID
	}

	return resp
}

func NewPieceResponses(pieces []*entity.Piece) []*PieceResponse {
	responses := make([]*PieceResponse, 0, len(pieces))
	for _, piece := range pieces {
		responses = append(responses, NewPieceResponse(piece))
	}
	return responses
}
