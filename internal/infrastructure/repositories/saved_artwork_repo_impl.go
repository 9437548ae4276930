package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"artmarket.backend/internal/domain/entities"
	domainerrors "artmarket.backend/internal/domain/errors"
	"artmarket.backend/internal/infrastructure/models"
)

// SavedArtworkRepository implements visitor clipboard operations
type SavedArtworkRepository struct {
	db *gorm.DB
}

// NewSavedArtworkRepository creates a new saved artwork repository
func NewSavedArtworkRepository(db *gorm.DB) *SavedArtworkRepository {
	return &SavedArtworkRepository{db: db}
}

// Save stores a clipboard entry; saving the same artwork twice is a no-op
func (r *SavedArtworkRepository) Save(ctx context.Context, sessionID string, artworkID int64) (*entities.SavedArtwork, error) {
	m := &models.SavedArtwork{
		SessionID: sessionID,
		ArtworkID: artworkID,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m).Error
	if err != nil {
		return nil, err
	}

	return &entities.SavedArtwork{
		ID:        m.ID,
		SessionID: m.SessionID,
		ArtworkID: m.ArtworkID,
		CreatedAt: m.CreatedAt,
	}, nil
}

// Delete removes a clipboard entry
func (r *SavedArtworkRepository) Delete(ctx context.Context, sessionID string, artworkID int64) error {
	result := r.db.WithContext(ctx).
		Where("session_id = ? AND artwork_id = ?", sessionID, artworkID).
		Delete(&models.SavedArtwork{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListBySession returns a session's clipboard with artworks preloaded
func (r *SavedArtworkRepository) ListBySession(ctx context.Context, sessionID string) ([]*entities.SavedArtwork, error) {
	var rows []models.SavedArtwork
	err := r.db.WithContext(ctx).
		Preload("Artwork").
		Preload("Artwork.Artist").
		Preload("Artwork.Gallery").
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	out := make([]*entities.SavedArtwork, 0, len(rows))
	for i := range rows {
		m := rows[i]
		e := &entities.SavedArtwork{
			ID:        m.ID,
			SessionID: m.SessionID,
			ArtworkID: m.ArtworkID,
			CreatedAt: m.CreatedAt,
		}
		if m.Artwork != nil {
			e.Artwork = artworkToEntity(m.Artwork)
		}
		out = append(out, e)
	}
	return out, nil
}
