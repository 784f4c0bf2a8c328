package usecase

import (
	"context"
	"testing"

	"glassfinder/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPieceRequest(name string) *request.PieceRequest {
	return &request.PieceRequest{
		Name:        name,
		Maker:       "Seeded Maker",
		Price:       120.50,
		Description: "A heady tube",
		Location:    "Portland, OR",
	}
}

func TestPieceCreateAndRead(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := env.seedUser("owner@example.com")

	created, err := env.piece.Create(ctx, owner.ID, newPieceRequest("Recycler"))
	require.NoError(t, err)
	assert.Equal(t, owner.ID.String(), created.UserID)
	assert.Equal(t, 120.50, created.Price)

	fetched, err := env.piece.GetPiece(ctx, mustParse(t, created.ID))
	require.NoError(t, err)
	assert.Equal(t, "Recycler", fetched.Name)

	_, err = env.piece.GetPiece(ctx, mustParse(t, owner.ID.String()))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPieceCreateValidatesCredits(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := env.seedUser("owner@example.com")

	// A foreign-key credit must point at an existing artist.
	req := newPieceRequest("Credited")
	missing := "2e9b9f5c-7a62-4a4e-9a94-000000000000"
	req.ArtistID = &missing

	_, err := env.piece.Create(ctx, owner.ID, req)
	assert.ErrorIs(t, err, ErrNotFound)

	// A real artist works.
	artistUser := linkAsArtist(t, env, "artist@example.com")
	artist, err := env.artists.FindByUserID(ctx, artistUser.ID)
	require.NoError(t, err)

	artistID := artist.ID.String()
	req.ArtistID = &artistID
	created, err := env.piece.Create(ctx, owner.ID, req)
	require.NoError(t, err)
	require.NotNil(t, created.ArtistID)
	assert.Equal(t, artistID, *created.ArtistID)
}

func TestPieceUpdateRequiresOwnership(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := env.seedUser("owner@example.com")
	stranger := env.seedUser("stranger@example.com")

	created, err := env.piece.Create(ctx, owner.ID, newPieceRequest("Sherlock"))
	require.NoError(t, err)
	pieceID := mustParse(t, created.ID)

	newName := "Renamed"
	_, err = env.piece.Update(ctx, stranger.ID, pieceID, &request.PieceUpdateRequest{Name: &newName})
	assert.ErrorIs(t, err, ErrNotOwner)

	updated, err := env.piece.Update(ctx, owner.ID, pieceID, &request.PieceUpdateRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Seeded Maker", updated.Maker)
}

func TestPieceDeleteRequiresOwnership(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := env.seedUser("owner@example.com")
	stranger := env.seedUser("stranger@example.com")

	created, err := env.piece.Create(ctx, owner.ID, newPieceRequest("Rig"))
	require.NoError(t, err)
	pieceID := mustParse(t, created.ID)

	assert.ErrorIs(t, env.piece.Delete(ctx, stranger.ID, pieceID), ErrNotOwner)
	require.NoError(t, env.piece.Delete(ctx, owner.ID, pieceID))

	_, err = env.piece.GetPiece(ctx, pieceID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserPiecesFiltersByOwner(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	first := env.seedUser("first@example.com")
	second := env.seedUser("second@example.com")

	for i := 0; i < 3; i++ {
		_, err := env.piece.Create(ctx, first.ID, newPieceRequest("Mine"))
		require.NoError(t, err)
	}
	_, err := env.piece.Create(ctx, second.ID, newPieceRequest("Theirs"))
	require.NoError(t, err)

	mine, err := env.piece.GetUserPieces(ctx, first.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), mine.Pagination.TotalCount)
	for _, piece := range mine.Items {
		assert.Equal(t, first.ID.String(), piece.UserID)
	}
}

func TestGetPiecesPagination(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := env.seedUser("owner@example.com")

	for i := 0; i < testPerPage+3; i++ {
		_, err := env.piece.Create(ctx, owner.ID, newPieceRequest("Bulk"))
		require.NoError(t, err)
	}

	// Page 0 is full, page 1 holds the remainder.
	page0, err := env.piece.GetPieces(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, page0.Items, testPerPage)
	assert.Equal(t, int64(testPerPage+3), page0.Pagination.TotalCount)
	assert.Equal(t, 2, page0.Pagination.TotalPages)

	page1, err := env.piece.GetPieces(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, page1.Items, 3)

	// Out-of-range pages return empty items with the real totals.
	page9, err := env.piece.GetPieces(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, page9.Items)
	assert.Equal(t, int64(testPerPage+3), page9.Pagination.TotalCount)
}
