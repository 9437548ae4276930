package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domainerrors "artmarket.backend/internal/domain/errors"
)

func newSavedArtworkRepo(t *testing.T) (*SavedArtworkRepository, *gorm.DB) {
	db := newTestDB(t)
	createUsersTable(t, db)
	createGalleriesTable(t, db)
	createArtistsTable(t, db)
	createArtworksTable(t, db)
	createSavedArtworksTable(t, db)
	return NewSavedArtworkRepository(db), db
}

func TestSavedArtworkRepository_Save_Idempotent(t *testing.T) {
	repo, db := newSavedArtworkRepo(t)
	seedGallery(t, db, 1, "active")
	seedArtist(t, db, 1, "Maria Nowak")
	seedArtwork(t, db, artworkSeed{id: 10, galleryID: 1, artistID: 1, title: "Dusk", approved: true})

	ctx := context.Background()
	_, err := repo.Save(ctx, "sess-1", 10)
	require.NoError(t, err)

	// Saving the same artwork twice must not error or duplicate
	_, err = repo.Save(ctx, "sess-1", 10)
	require.NoError(t, err)

	saved, err := repo.ListBySession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestSavedArtworkRepository_ListBySession_Scoped(t *testing.T) {
	repo, db := newSavedArtworkRepo(t)
	seedGallery(t, db, 1, "active")
	seedArtist(t, db, 1, "Maria Nowak")
	seedArtwork(t, db, artworkSeed{id: 10, galleryID: 1, artistID: 1, title: "Dusk", approved: true})
	seedArtwork(t, db, artworkSeed{id: 11, galleryID: 1, artistID: 1, title: "Dawn", approved: true})

	ctx := context.Background()
	_, err := repo.Save(ctx, "sess-1", 10)
	require.NoError(t, err)
	_, err = repo.Save(ctx, "sess-2", 11)
	require.NoError(t, err)

	saved, err := repo.ListBySession(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, int64(10), saved[0].ArtworkID)
	require.NotNil(t, saved[0].Artwork)
	assert.Equal(t, "Dusk", saved[0].Artwork.Title)
	require.NotNil(t, saved[0].Artwork.Artist)
	assert.Equal(t, "Maria Nowak", saved[0].Artwork.Artist.Name)
}

func TestSavedArtworkRepository_Delete(t *testing.T) {
	repo, db := newSavedArtworkRepo(t)
	seedGallery(t, db, 1, "active")
	seedArtist(t, db, 1, "Maria Nowak")
	seedArtwork(t, db, artworkSeed{id: 10, galleryID: 1, artistID: 1, title: "Dusk", approved: true})

	ctx := context.Background()
	_, err := repo.Save(ctx, "sess-1", 10)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "sess-1", 10))

	saved, err := repo.ListBySession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, saved)

	assert.ErrorIs(t, repo.Delete(ctx, "sess-1", 10), domainerrors.ErrNotFound)
}
