package repositories

import (
	"context"

	"github.com/google/uuid"
	"artmarket.backend/internal/domain/entities"
)

// GalleryRepository defines gallery data operations
type GalleryRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Gallery, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Gallery, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Gallery, error)
	// List returns approved, active galleries for the public catalog
	List(ctx context.Context, limit, offset int) ([]*entities.Gallery, int64, error)
}

// ArtistRepository defines artist data operations
type ArtistRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Artist, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Artist, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Artist, int64, error)
}
