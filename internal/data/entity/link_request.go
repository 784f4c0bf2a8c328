package entity

import (
	"github.com/google/uuid"
)

// LinkRequest is the workflow record behind a pending link. Config
// holds the would-be profile's attributes as serialized JSON until an
// admin resolves the request.
type LinkRequest struct {
	BaseNoDelete
	UserID uuid.UUID         `db:"user_id"`
	Type   LinkType          `db:"type"`
	Config string            `db:"config"`
	Status LinkRequestStatus `db:"status"`
}
