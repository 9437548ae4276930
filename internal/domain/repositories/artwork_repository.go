package repositories

import (
	"context"

	"artmarket.backend/internal/domain/entities"
)

// ArtworkRepository defines artwork data operations
type ArtworkRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Artwork, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Artwork, error)
	// GetByIDs resolves an id set, preloading artist, gallery and the
	// gallery's owning user. Missing ids are silently omitted.
	GetByIDs(ctx context.Context, ids []int64) ([]*entities.Artwork, error)
	// CountApprovedByIDs counts how many of the given ids reference
	// currently-approved artworks (the inquiry eligibility gate).
	CountApprovedByIDs(ctx context.Context, ids []int64) (int64, error)
	IDsByGallery(ctx context.Context, galleryID int64) ([]int64, error)
	List(ctx context.Context, filter entities.ArtworkFilter, limit, offset int) ([]*entities.Artwork, int64, error)
	SetApproval(ctx context.Context, id int64, approved bool) error
}
