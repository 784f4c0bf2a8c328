package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasherRoundTrip(t *testing.T) {
	hasher := NewHasher(4)

	hash, err := hasher.Hash("hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// The raw password never appears in the hash.
	assert.NotContains(t, hash, "hunter22")

	assert.True(t, hasher.Verify("hunter22", hash))
	assert.False(t, hasher.Verify("hunter23", hash))
	assert.False(t, hasher.Verify("", hash))
}

func TestHasherSaltedHashesDiffer(t *testing.T) {
	hasher := NewHasher(4)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("same-password", first))
	assert.True(t, hasher.Verify("same-password", second))
}

func TestHasherClampsInvalidCost(t *testing.T) {
	// Out-of-range work factors fall back to the bcrypt default
	// instead of failing every hash.
	for _, cost := range []int{-1, 0, 99} {
		hasher := NewHasher(cost)
		hash, err := hasher.Hash("pw")
		require.NoError(t, err)
		assert.True(t, hasher.Verify("pw", hash))
	}
}
