package entity

import (
	"github.com/google/uuid"
)

// Piece is an inventory item owned by a user. Artist/brand credit is
// optional: either a foreign key to an account holder or a free-text
// entry when the credited party has no account.
type Piece struct {
	Base
	UserID      uuid.UUID  `db:"user_id"`
	ArtistID    *uuid.UUID `db:"artist_id"`
	BrandID     *uuid.UUID `db:"brand_id"`
	ArtistEntry *string    `db:"artist_entry"`
	BrandEntry  *string    `db:"brand_entry"`
	Name        string     `db:"name"`
	Maker       string     `db:"maker"`
	Price       float64    `db:"price"`
	Description string     `db:"description"`
	Location    string     `db:"location"`
	Image       *string    `db:"image"`
}
