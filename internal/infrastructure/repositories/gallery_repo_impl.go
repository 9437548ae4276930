package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"artmarket.backend/internal/domain/entities"
	domainerrors "artmarket.backend/internal/domain/errors"
	"artmarket.backend/internal/infrastructure/models"
)

// GalleryRepository implements gallery data operations
type GalleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository creates a new gallery repository
func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

// GetByID gets a gallery by ID
func (r *GalleryRepository) GetByID(ctx context.Context, id int64) (*entities.Gallery, error) {
	var m models.Gallery
	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return galleryToEntity(&m), nil
}

// GetBySlug gets an approved gallery by slug
func (r *GalleryRepository) GetBySlug(ctx context.Context, slug string) (*entities.Gallery, error) {
	var m models.Gallery
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_approved = ?", slug, true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return galleryToEntity(&m), nil
}

// GetByUserID gets the gallery owned by a staff user
func (r *GalleryRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Gallery, error) {
	var m models.Gallery
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return galleryToEntity(&m), nil
}

// List lists approved, active galleries for the public catalog
func (r *GalleryRepository) List(ctx context.Context, limit, offset int) ([]*entities.Gallery, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Gallery{}).
		Where("is_approved = ? AND status = ?", true, string(entities.GalleryStatusActive))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Gallery
	query = query.Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*entities.Gallery, 0, len(rows))
	for i := range rows {
		out = append(out, galleryToEntity(&rows[i]))
	}
	return out, total, nil
}

func galleryToEntity(m *models.Gallery) *entities.Gallery {
	g := &entities.Gallery{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: null.StringFromPtr(m.Description),
		IsApproved:  m.IsApproved,
		ApprovedAt:  null.TimeFromPtr(m.ApprovedAt),
		Status:      entities.GalleryStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.User != nil {
		g.User = userToEntity(m.User)
	}
	return g
}

// ArtistRepository implements artist data operations
type ArtistRepository struct {
	db *gorm.DB
}

// NewArtistRepository creates a new artist repository
func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// GetByID gets an artist by ID
func (r *ArtistRepository) GetByID(ctx context.Context, id int64) (*entities.Artist, error) {
	var m models.Artist
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return artistToEntity(&m), nil
}

// GetBySlug gets an artist by slug
func (r *ArtistRepository) GetBySlug(ctx context.Context, slug string) (*entities.Artist, error) {
	var m models.Artist
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return artistToEntity(&m), nil
}

// List lists artists alphabetically
func (r *ArtistRepository) List(ctx context.Context, limit, offset int) ([]*entities.Artist, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Artist{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Artist
	query := r.db.WithContext(ctx).Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*entities.Artist, 0, len(rows))
	for i := range rows {
		out = append(out, artistToEntity(&rows[i]))
	}
	return out, total, nil
}

func artistToEntity(m *models.Artist) *entities.Artist {
	return &entities.Artist{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		Photo:     null.StringFromPtr(m.Photo),
		Biography: null.StringFromPtr(m.Biography),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
