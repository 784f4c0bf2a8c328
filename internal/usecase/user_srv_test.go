package usecase

import (
	"context"
	"testing"

	"glassfinder/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUsersPaged(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	for i := 0; i < testPerPage+2; i++ {
		env.seedUser(uuid.New().String() + "@example.com")
	}

	page0, err := env.user.GetUsers(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, page0.Items, testPerPage)
	assert.Equal(t, int64(testPerPage+2), page0.Pagination.TotalCount)
	assert.Equal(t, 2, page0.Pagination.TotalPages)

	page1, err := env.user.GetUsers(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, page1.Items, 2)
}

func TestGetUserNotFound(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.user.GetUser(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRemoveCascadesProfile(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	user := linkAsArtist(t, env, "artist@example.com")

	require.NoError(t, env.user.Remove(ctx, user.ID))

	// The account and its profile are both gone.
	gone, err := env.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	artist, err := env.artists.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, artist)
}

func TestUserRemovePendingLink(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	user := env.seedUser("pending@example.com")

	// Open a request but never resolve it; no profile row exists.
	_, err := env.link.RequestLink(ctx, user.ID, &request.LinkRequest{
		Type:   "ARTIST",
		Config: map[string]any{"name": "Pending"},
	})
	require.NoError(t, err)

	require.NoError(t, env.user.Remove(ctx, user.ID))

	gone, err := env.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestUserRemoveMissing(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	assert.ErrorIs(t, env.user.Remove(ctx, uuid.New()), ErrUserNotFound)
}
