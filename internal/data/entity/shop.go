package entity

import (
	"github.com/google/uuid"
)

type Shop struct {
	Base
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Email       string    `db:"email"`
	Phone       string    `db:"phone"`
	Street      string    `db:"street"`
	City        string    `db:"city"`
	State       string    `db:"state"`
	Zip         string    `db:"zip"`
	Lat         *float64  `db:"lat"`
	Lng         *float64  `db:"lng"`
	Image       *string   `db:"image"`
}

// FullAddress joins the address fields for geocoding.
func (s *Shop) FullAddress() string {
	return s.Street + ", " + s.City + ", " + s.State + " " + s.Zip
}
