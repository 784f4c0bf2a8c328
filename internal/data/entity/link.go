package entity

import "fmt"

// LinkType is the closed set of profile kinds a user can link as.
type LinkType string

const (
	LinkTypeShop   LinkType = "SHOP"
	LinkTypeArtist LinkType = "ARTIST"
	LinkTypeBrand  LinkType = "BRAND"
)

// ParseLinkType rejects anything outside the three valid kinds.
func ParseLinkType(value string) (LinkType, error) {
	switch LinkType(value) {
	case LinkTypeShop, LinkTypeArtist, LinkTypeBrand:
		return LinkType(value), nil
	default:
		return "", fmt.Errorf("invalid link type %q", value)
	}
}

// LinkState is the tagged linking lifecycle state derived from the
// user's linked flag plus the presence of the profile row.
type LinkState string

const (
	StateUnlinked    LinkState = "unlinked"
	StatePendingLink LinkState = "pending"
	StateLinked      LinkState = "linked"
)

// LinkRequestStatus gates the approval workflow. A request is created
// PENDING and resolved exactly once.
type LinkRequestStatus string

const (
	LinkRequestPending  LinkRequestStatus = "PENDING"
	LinkRequestApproved LinkRequestStatus = "APPROVED"
	LinkRequestDenied   LinkRequestStatus = "DENIED"
)
