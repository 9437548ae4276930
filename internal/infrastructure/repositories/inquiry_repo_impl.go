package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"artmarket.backend/internal/domain/entities"
	domainerrors "artmarket.backend/internal/domain/errors"
	"artmarket.backend/internal/domain/repositories"
	"artmarket.backend/internal/infrastructure/models"
)

// InquiryRepository implements inquiry data operations
type InquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository creates a new inquiry repository
func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// Create creates a new inquiry
func (r *InquiryRepository) Create(ctx context.Context, inquiry *entities.Inquiry) error {
	ids, err := json.Marshal(inquiry.ArtworkIDs)
	if err != nil {
		return err
	}

	m := &models.Inquiry{
		FirstName:         inquiry.FirstName,
		LastName:          inquiry.LastName,
		Email:             inquiry.Email,
		Company:           inquiry.Company.Ptr(),
		Message:           inquiry.Message.Ptr(),
		ArtworkIDs:        string(ids),
		Status:            string(inquiry.Status),
		VerificationToken: inquiry.VerificationToken.Ptr(),
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	inquiry.ID = m.ID
	inquiry.CreatedAt = m.CreatedAt
	inquiry.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an inquiry by ID
func (r *InquiryRepository) GetByID(ctx context.Context, id int64) (*entities.Inquiry, error) {
	var m models.Inquiry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return inquiryToEntity(&m), nil
}

// MarkVerified transitions a pending inquiry to verified. The WHERE clause
// on status makes the transition atomic: of two concurrent clicks only one
// sees RowsAffected == 1, the other falls through to the already-verified
// path.
func (r *InquiryRepository) MarkVerified(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Inquiry{}).
		Where("id = ? AND status = ?", id, string(entities.InquiryStatusPendingVerification)).
		Updates(map[string]interface{}{
			"status":             string(entities.InquiryStatusVerified),
			"email_verified_at":  time.Now(),
			"verification_token": nil,
			"updated_at":         time.Now(),
		})

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpdateStatus sets an inquiry's status
func (r *InquiryRepository) UpdateStatus(ctx context.Context, id int64, status entities.InquiryStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Inquiry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes an inquiry; its logs cascade
func (r *InquiryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// sqlite in tests has no FK cascade enabled by default
		if err := tx.Where("inquiry_id = ?", id).Delete(&models.InquiryLog{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Inquiry{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrNotFound
		}
		return nil
	})
}

// List lists inquiries with optional search and status filters
func (r *InquiryRepository) List(ctx context.Context, filter repositories.InquiryFilter, limit, offset int) ([]*entities.Inquiry, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Inquiry{})

	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR company LIKE ?",
			term, term, term, term,
		)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Inquiry
	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*entities.Inquiry, 0, len(rows))
	for i := range rows {
		out = append(out, inquiryToEntity(&rows[i]))
	}
	return out, total, nil
}

// ListByStatus lists all inquiries with the given status, newest first
func (r *InquiryRepository) ListByStatus(ctx context.Context, status entities.InquiryStatus) ([]*entities.Inquiry, error) {
	var rows []models.Inquiry
	err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*entities.Inquiry, 0, len(rows))
	for i := range rows {
		out = append(out, inquiryToEntity(&rows[i]))
	}
	return out, nil
}

// AppendLog appends an entry to the inquiry's history
func (r *InquiryRepository) AppendLog(ctx context.Context, log *entities.InquiryLog) error {
	m := &models.InquiryLog{
		InquiryID: log.InquiryID,
		Action:    string(log.Action),
		Details:   marshalJSON(log.Details),
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	log.ID = m.ID
	log.CreatedAt = m.CreatedAt
	return nil
}

// LogsByInquiry returns the inquiry's history, oldest first
func (r *InquiryRepository) LogsByInquiry(ctx context.Context, inquiryID int64) ([]*entities.InquiryLog, error) {
	var rows []models.InquiryLog
	err := r.db.WithContext(ctx).
		Where("inquiry_id = ?", inquiryID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*entities.InquiryLog, 0, len(rows))
	for i := range rows {
		m := rows[i]
		out = append(out, &entities.InquiryLog{
			ID:        m.ID,
			InquiryID: m.InquiryID,
			Action:    entities.InquiryLogAction(m.Action),
			Details:   unmarshalDetails(m.Details),
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

func inquiryToEntity(m *models.Inquiry) *entities.Inquiry {
	return &entities.Inquiry{
		ID:                m.ID,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Email:             m.Email,
		Company:           null.StringFromPtr(m.Company),
		Message:           null.StringFromPtr(m.Message),
		ArtworkIDs:        unmarshalIDs(m.ArtworkIDs),
		Status:            entities.InquiryStatus(m.Status),
		EmailVerifiedAt:   null.TimeFromPtr(m.EmailVerifiedAt),
		VerificationToken: null.StringFromPtr(m.VerificationToken),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
