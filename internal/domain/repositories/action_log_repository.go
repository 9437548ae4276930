package repositories

import (
	"context"

	"artmarket.backend/internal/domain/entities"
)

// ActionLogRepository defines the append-only audit sink and its
// admin-facing read side
type ActionLogRepository interface {
	Create(ctx context.Context, entry *entities.ActionLogEntry) error
	List(ctx context.Context, filter entities.ActionLogFilter, limit, offset int) ([]*entities.ActionLogEntry, int64, error)
	DistinctActions(ctx context.Context) ([]string, error)
}
