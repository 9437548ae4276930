package repositories

import (
	"context"

	"artmarket.backend/internal/domain/entities"
)

// SavedArtworkRepository defines visitor clipboard operations
type SavedArtworkRepository interface {
	Save(ctx context.Context, sessionID string, artworkID int64) (*entities.SavedArtwork, error)
	Delete(ctx context.Context, sessionID string, artworkID int64) error
	ListBySession(ctx context.Context, sessionID string) ([]*entities.SavedArtwork, error)
}
