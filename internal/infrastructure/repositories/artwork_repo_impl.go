package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"artmarket.backend/internal/domain/entities"
	domainerrors "artmarket.backend/internal/domain/errors"
	"artmarket.backend/internal/infrastructure/models"
)

// ArtworkRepository implements artwork data operations
type ArtworkRepository struct {
	db *gorm.DB
}

// NewArtworkRepository creates a new artwork repository
func NewArtworkRepository(db *gorm.DB) *ArtworkRepository {
	return &ArtworkRepository{db: db}
}

// GetByID gets an artwork by ID
func (r *ArtworkRepository) GetByID(ctx context.Context, id int64) (*entities.Artwork, error) {
	var m models.Artwork
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Preload("Gallery").
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return artworkToEntity(&m), nil
}

// GetBySlug gets an approved artwork by slug
func (r *ArtworkRepository) GetBySlug(ctx context.Context, slug string) (*entities.Artwork, error) {
	var m models.Artwork
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Preload("Gallery").
		Where("slug = ? AND is_approved = ?", slug, true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return artworkToEntity(&m), nil
}

// GetByIDs resolves an id set with artist, gallery and gallery owner
// preloaded. Ids that no longer resolve are omitted without error.
func (r *ArtworkRepository) GetByIDs(ctx context.Context, ids []int64) ([]*entities.Artwork, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []models.Artwork
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Preload("Gallery").
		Preload("Gallery.User").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	// Keep the caller's id order; resolved set order would otherwise
	// depend on the database.
	byID := make(map[int64]*models.Artwork, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}

	out := make([]*entities.Artwork, 0, len(rows))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			out = append(out, artworkToEntity(m))
		}
	}
	return out, nil
}

// CountApprovedByIDs counts approved artworks among the given ids
func (r *ArtworkRepository) CountApprovedByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Artwork{}).
		Where("id IN ? AND is_approved = ?", ids, true).
		Count(&count).Error
	return count, err
}

// IDsByGallery returns all artwork ids owned by a gallery
func (r *ArtworkRepository) IDsByGallery(ctx context.Context, galleryID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&models.Artwork{}).
		Where("gallery_id = ?", galleryID).
		Pluck("id", &ids).Error
	return ids, err
}

// List lists approved artworks of active galleries with catalog filters
func (r *ArtworkRepository) List(ctx context.Context, filter entities.ArtworkFilter, limit, offset int) ([]*entities.Artwork, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Artwork{}).
		Joins("JOIN galleries ON galleries.id = artworks.gallery_id").
		Where("artworks.is_approved = ? AND galleries.status = ?", true, string(entities.GalleryStatusActive))

	if filter.Category != "" {
		query = query.Where("artworks.category = ?", filter.Category)
	}
	if filter.Style != "" {
		query = query.Where("artworks.style = ?", filter.Style)
	}
	if filter.Theme != "" {
		query = query.Where("artworks.theme = ?", filter.Theme)
	}
	if filter.ArtistID > 0 {
		query = query.Where("artworks.artist_id = ?", filter.ArtistID)
	}
	if filter.PriceMin > 0 {
		query = query.Where("artworks.price_min >= ?", filter.PriceMin)
	}
	if filter.PriceMax > 0 {
		query = query.Where("artworks.price_max <= ?", filter.PriceMax)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("artworks.title LIKE ? OR artworks.description LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Artwork
	query = query.Preload("Artist").Preload("Gallery").Order("artworks.created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*entities.Artwork, 0, len(rows))
	for i := range rows {
		out = append(out, artworkToEntity(&rows[i]))
	}
	return out, total, nil
}

// SetApproval flips the admin approval flag
func (r *ArtworkRepository) SetApproval(ctx context.Context, id int64, approved bool) error {
	updates := map[string]interface{}{
		"is_approved": approved,
		"updated_at":  time.Now(),
	}
	if approved {
		updates["approved_at"] = time.Now()
	} else {
		updates["approved_at"] = nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.Artwork{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func artworkToEntity(m *models.Artwork) *entities.Artwork {
	a := &entities.Artwork{
		ID:               m.ID,
		Title:            m.Title,
		Slug:             m.Slug,
		ArtistID:         m.ArtistID,
		GalleryID:        m.GalleryID,
		Category:         null.StringFromPtr(m.Category),
		Style:            null.StringFromPtr(m.Style),
		Theme:            null.StringFromPtr(m.Theme),
		PriceMin:         null.Float64FromPtr(m.PriceMin),
		PriceMax:         null.Float64FromPtr(m.PriceMax),
		Medium:           null.StringFromPtr(m.Medium),
		Dimensions:       null.StringFromPtr(m.Dimensions),
		Description:      null.StringFromPtr(m.Description),
		FeaturedImage:    null.StringFromPtr(m.FeaturedImage),
		AdditionalImages: unmarshalStrings(m.AdditionalImages),
		IsApproved:       m.IsApproved,
		ApprovedAt:       null.TimeFromPtr(m.ApprovedAt),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if m.Artist != nil {
		a.Artist = artistToEntity(m.Artist)
	}
	if m.Gallery != nil {
		a.Gallery = galleryToEntity(m.Gallery)
	}
	return a
}
