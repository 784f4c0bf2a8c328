package entity

import (
	"github.com/google/uuid"
)

type Artist struct {
	Base
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	From        string    `db:"origin"`
	Image       *string   `db:"image"`
}
