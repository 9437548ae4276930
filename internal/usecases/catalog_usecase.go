package usecases

import (
	"context"

	"artmarket.backend/internal/domain/entities"
	domainerrors "artmarket.backend/internal/domain/errors"
	"artmarket.backend/internal/domain/repositories"
	"artmarket.backend/pkg/utils"
)

// CatalogUsecase serves the public browsing surface: approved artworks,
// artists and active galleries, plus the visitor clipboard
type CatalogUsecase struct {
	artworks  repositories.ArtworkRepository
	artists   repositories.ArtistRepository
	galleries repositories.GalleryRepository
	saved     repositories.SavedArtworkRepository
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(
	artworks repositories.ArtworkRepository,
	artists repositories.ArtistRepository,
	galleries repositories.GalleryRepository,
	saved repositories.SavedArtworkRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		artworks:  artworks,
		artists:   artists,
		galleries: galleries,
		saved:     saved,
	}
}

// ListArtworks lists approved artworks of active galleries
func (u *CatalogUsecase) ListArtworks(ctx context.Context, filter entities.ArtworkFilter, page, limit int) ([]*entities.Artwork, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit, 24)
	artworks, total, err := u.artworks.List(ctx, filter, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return artworks, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// GetArtwork returns one approved artwork by slug
func (u *CatalogUsecase) GetArtwork(ctx context.Context, slug string) (*entities.Artwork, error) {
	artwork, err := u.artworks.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !artwork.IsApproved {
		return nil, domainerrors.ErrNotFound
	}
	return artwork, nil
}

// ListArtists lists artists for the public catalog
func (u *CatalogUsecase) ListArtists(ctx context.Context, page, limit int) ([]*entities.Artist, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit, 24)
	artists, total, err := u.artists.List(ctx, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return artists, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// GetArtist returns one artist by slug
func (u *CatalogUsecase) GetArtist(ctx context.Context, slug string) (*entities.Artist, error) {
	return u.artists.GetBySlug(ctx, slug)
}

// ListGalleries lists active galleries for the public catalog
func (u *CatalogUsecase) ListGalleries(ctx context.Context, page, limit int) ([]*entities.Gallery, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit, 24)
	galleries, total, err := u.galleries.List(ctx, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return galleries, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// GetGallery returns one active gallery by slug
func (u *CatalogUsecase) GetGallery(ctx context.Context, slug string) (*entities.Gallery, error) {
	gallery, err := u.galleries.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !gallery.IsActive() {
		return nil, domainerrors.ErrNotFound
	}
	return gallery, nil
}

// SaveArtwork adds an approved artwork to the visitor's clipboard. Saving
// the same artwork twice is a no-op.
func (u *CatalogUsecase) SaveArtwork(ctx context.Context, sessionID string, artworkID int64) (*entities.SavedArtwork, error) {
	artwork, err := u.artworks.GetByID(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	if !artwork.IsApproved {
		return nil, domainerrors.ErrNotFound
	}
	return u.saved.Save(ctx, sessionID, artworkID)
}

// UnsaveArtwork removes an artwork from the visitor's clipboard
func (u *CatalogUsecase) UnsaveArtwork(ctx context.Context, sessionID string, artworkID int64) error {
	return u.saved.Delete(ctx, sessionID, artworkID)
}

// SavedArtworks lists the visitor's clipboard, newest first
func (u *CatalogUsecase) SavedArtworks(ctx context.Context, sessionID string) ([]*entities.SavedArtwork, error) {
	return u.saved.ListBySession(ctx, sessionID)
}
