package request

// LinkRequest asks to become one of the three profile kinds. Config
// carries the would-be profile's attributes; it is stored verbatim
// until an admin resolves the request.
type LinkRequest struct {
	Type   string         `json:"type" validate:"required,oneof=SHOP ARTIST BRAND"`
	Config map[string]any `json:"config" validate:"required"`
}

// UpdateProfileRequest partially updates the linked profile. Keys the
// linked kind does not recognize are ignored.
type UpdateProfileRequest struct {
	Values map[string]any `json:"values" validate:"required"`
}
