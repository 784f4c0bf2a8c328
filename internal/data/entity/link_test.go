package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLinkType(t *testing.T) {
	for _, valid := range []string{"SHOP", "ARTIST", "BRAND"} {
		linkType, err := ParseLinkType(valid)
		require.NoError(t, err)
		assert.Equal(t, LinkType(valid), linkType)
	}

	for _, invalid := range []string{"", "shop", "GALLERY", "Brand"} {
		_, err := ParseLinkType(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestUserLinkState(t *testing.T) {
	shop := LinkTypeShop

	unlinked := &User{}
	assert.Equal(t, StateUnlinked, unlinked.LinkState(false))
	assert.Equal(t, StateUnlinked, unlinked.LinkState(true))

	// Flag set, profile not materialized yet.
	pending := &User{Linked: true, Type: &shop}
	assert.Equal(t, StatePendingLink, pending.LinkState(false))
	assert.Equal(t, StateLinked, pending.LinkState(true))

	// A linked flag without a type never counts as linked.
	inconsistent := &User{Linked: true}
	assert.Equal(t, StateUnlinked, inconsistent.LinkState(true))
}
