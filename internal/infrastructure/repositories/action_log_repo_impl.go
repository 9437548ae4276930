package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"artmarket.backend/internal/domain/entities"
	"artmarket.backend/internal/infrastructure/models"
)

// ActionLogRepository implements the audit sink
type ActionLogRepository struct {
	db *gorm.DB
}

// NewActionLogRepository creates a new action log repository
func NewActionLogRepository(db *gorm.DB) *ActionLogRepository {
	return &ActionLogRepository{db: db}
}

// Create appends an audit entry
func (r *ActionLogRepository) Create(ctx context.Context, entry *entities.ActionLogEntry) error {
	m := &models.ActionLog{
		Action:  entry.Action,
		Details: marshalJSON(entry.Details),
	}
	if entry.UserID.Valid {
		id := entry.UserID.UUID
		m.UserID = &id
	}
	if entry.SubjectType != "" {
		m.SubjectType = &entry.SubjectType
		m.SubjectID = &entry.SubjectID
	}
	if entry.IPAddress != "" {
		m.IPAddress = &entry.IPAddress
	}
	if entry.UserAgent != "" {
		m.UserAgent = &entry.UserAgent
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	entry.ID = m.ID
	entry.CreatedAt = m.CreatedAt
	return nil
}

// List lists audit entries with admin filters, newest first
func (r *ActionLogRepository) List(ctx context.Context, filter entities.ActionLogFilter, limit, offset int) ([]*entities.ActionLogEntry, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ActionLog{})

	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("action LIKE ? OR ip_address LIKE ?", term, term)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("created_at < ?", filter.DateTo.Add(24*time.Hour))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.ActionLog
	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*entities.ActionLogEntry, 0, len(rows))
	for i := range rows {
		out = append(out, actionLogToEntity(&rows[i]))
	}
	return out, total, nil
}

// DistinctActions returns all action tags present in the log
func (r *ActionLogRepository) DistinctActions(ctx context.Context) ([]string, error) {
	var actions []string
	err := r.db.WithContext(ctx).
		Model(&models.ActionLog{}).
		Distinct("action").
		Order("action ASC").
		Pluck("action", &actions).Error
	return actions, err
}

func actionLogToEntity(m *models.ActionLog) *entities.ActionLogEntry {
	e := &entities.ActionLogEntry{
		ID:        m.ID,
		Action:    m.Action,
		Details:   unmarshalDetails(m.Details),
		CreatedAt: m.CreatedAt,
	}
	if m.UserID != nil {
		e.UserID = uuid.NullUUID{UUID: *m.UserID, Valid: true}
	}
	if m.SubjectType != nil {
		e.SubjectType = *m.SubjectType
	}
	if m.SubjectID != nil {
		e.SubjectID = *m.SubjectID
	}
	if m.IPAddress != nil {
		e.IPAddress = *m.IPAddress
	}
	if m.UserAgent != nil {
		e.UserAgent = *m.UserAgent
	}
	return e
}
