package entity

import (
	"github.com/google/uuid"
)

type Brand struct {
	Base
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	From        string    `db:"origin"`
	Site        *string   `db:"site"`
}
