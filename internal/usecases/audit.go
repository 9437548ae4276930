package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"artmarket.backend/internal/domain/entities"
	"artmarket.backend/internal/domain/repositories"
	"artmarket.backend/pkg/logger"
)

// RequestMeta carries per-request attribution for audit entries
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// AuditTrail is the injected audit sink. A failed audit write never fails
// the operation that triggered it; it is logged for operator visibility.
type AuditTrail struct {
	repo repositories.ActionLogRepository
}

// NewAuditTrail creates an audit trail over the given repository
func NewAuditTrail(repo repositories.ActionLogRepository) *AuditTrail {
	return &AuditTrail{repo: repo}
}

// Record appends an audit entry attributed to no user
func (a *AuditTrail) Record(ctx context.Context, action, subjectType string, subjectID int64, details map[string]interface{}, meta RequestMeta) {
	a.RecordAs(ctx, uuid.NullUUID{}, action, subjectType, subjectID, details, meta)
}

// RecordAs appends an audit entry attributed to a user
func (a *AuditTrail) RecordAs(ctx context.Context, userID uuid.NullUUID, action, subjectType string, subjectID int64, details map[string]interface{}, meta RequestMeta) {
	entry := &entities.ActionLogEntry{
		UserID:      userID,
		Action:      action,
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Details:     details,
		IPAddress:   meta.IPAddress,
		UserAgent:   meta.UserAgent,
	}

	if err := a.repo.Create(ctx, entry); err != nil {
		logger.Warn(ctx, "audit log write failed",
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
