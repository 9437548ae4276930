package repositories

import (
	"context"

	"artmarket.backend/internal/domain/entities"
)

// InquiryFilter holds admin listing filters
type InquiryFilter struct {
	Search string
	Status entities.InquiryStatus
}

// InquiryRepository defines inquiry data operations
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entities.Inquiry) error
	GetByID(ctx context.Context, id int64) (*entities.Inquiry, error)
	// MarkVerified performs the pending_verification -> verified transition
	// as a single conditional update. It returns false when the inquiry was
	// not pending anymore, so a concurrent duplicate click loses cleanly.
	MarkVerified(ctx context.Context, id int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status entities.InquiryStatus) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter InquiryFilter, limit, offset int) ([]*entities.Inquiry, int64, error)
	ListByStatus(ctx context.Context, status entities.InquiryStatus) ([]*entities.Inquiry, error)

	AppendLog(ctx context.Context, log *entities.InquiryLog) error
	LogsByInquiry(ctx context.Context, inquiryID int64) ([]*entities.InquiryLog, error)
}
