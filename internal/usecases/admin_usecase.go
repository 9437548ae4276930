package usecases

import (
	"context"

	"github.com/google/uuid"

	"artmarket.backend/internal/domain/entities"
	domainerrors "artmarket.backend/internal/domain/errors"
	"artmarket.backend/internal/domain/repositories"
	"artmarket.backend/pkg/utils"
)

// AdminInquiryDetail is the unrestricted admin view of an inquiry
type AdminInquiryDetail struct {
	Inquiry  *entities.Inquiry      `json:"inquiry"`
	Artworks []*entities.Artwork    `json:"artworks"`
	Logs     []*entities.InquiryLog `json:"logs"`
}

// AdminUsecase exposes the cross-tenant operations: full inquiry management,
// the audit trail and artwork approval
type AdminUsecase struct {
	inquiries  repositories.InquiryRepository
	artworks   repositories.ArtworkRepository
	actionLogs repositories.ActionLogRepository
	audit      *AuditTrail
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	inquiries repositories.InquiryRepository,
	artworks repositories.ArtworkRepository,
	actionLogs repositories.ActionLogRepository,
	audit *AuditTrail,
) *AdminUsecase {
	return &AdminUsecase{
		inquiries:  inquiries,
		artworks:   artworks,
		actionLogs: actionLogs,
		audit:      audit,
	}
}

// ListInquiries lists all inquiries with optional search and status filters
func (u *AdminUsecase) ListInquiries(ctx context.Context, filter repositories.InquiryFilter, page, limit int) ([]*entities.Inquiry, utils.PaginationMeta, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, utils.PaginationMeta{}, domainerrors.ErrInvalidStatus
	}

	params := utils.GetPaginationParams(page, limit, 20)
	inquiries, total, err := u.inquiries.List(ctx, filter, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	return inquiries, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// GetInquiry returns one inquiry with its artworks and history
func (u *AdminUsecase) GetInquiry(ctx context.Context, id int64) (*AdminInquiryDetail, error) {
	inquiry, err := u.inquiries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	artworks, err := u.artworks.GetByIDs(ctx, inquiry.ArtworkIDs)
	if err != nil {
		return nil, err
	}

	logs, err := u.inquiries.LogsByInquiry(ctx, id)
	if err != nil {
		return nil, err
	}

	return &AdminInquiryDetail{
		Inquiry:  inquiry,
		Artworks: artworks,
		Logs:     logs,
	}, nil
}

// UpdateInquiryStatus sets an inquiry's status. Admins may set any known
// status, including moving an inquiry backwards; the state machine binds
// gallery staff only.
func (u *AdminUsecase) UpdateInquiryStatus(ctx context.Context, userID uuid.UUID, id int64, input *entities.UpdateInquiryStatusInput, meta RequestMeta) (*entities.Inquiry, error) {
	if !input.Status.Valid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	inquiry, err := u.inquiries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.inquiries.UpdateStatus(ctx, id, input.Status); err != nil {
		return nil, err
	}

	u.audit.RecordAs(ctx, uuid.NullUUID{UUID: userID, Valid: true},
		entities.ActionInquiryStatusUpdated, entities.SubjectInquiry, id,
		map[string]interface{}{
			"from": string(inquiry.Status),
			"to":   string(input.Status),
		}, meta)

	return u.inquiries.GetByID(ctx, id)
}

// DeleteInquiry removes an inquiry and its history
func (u *AdminUsecase) DeleteInquiry(ctx context.Context, userID uuid.UUID, id int64, meta RequestMeta) error {
	inquiry, err := u.inquiries.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.inquiries.Delete(ctx, id); err != nil {
		return err
	}

	u.audit.RecordAs(ctx, uuid.NullUUID{UUID: userID, Valid: true},
		entities.ActionInquiryDeleted, entities.SubjectInquiry, id,
		map[string]interface{}{
			"email":  inquiry.Email,
			"status": string(inquiry.Status),
		}, meta)

	return nil
}

// ListActionLogs lists audit entries with filters, newest first
func (u *AdminUsecase) ListActionLogs(ctx context.Context, filter entities.ActionLogFilter, page, limit int) ([]*entities.ActionLogEntry, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit, 50)
	entries, total, err := u.actionLogs.List(ctx, filter, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	return entries, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// ActionLogActions returns the distinct action tags present in the audit
// trail, for filter dropdowns
func (u *AdminUsecase) ActionLogActions(ctx context.Context) ([]string, error) {
	return u.actionLogs.DistinctActions(ctx)
}

// SetArtworkApproval flips an artwork's approval flag. Unapproving takes the
// artwork out of the inquiry eligibility gate immediately; inquiries already
// created keep their artwork snapshot.
func (u *AdminUsecase) SetArtworkApproval(ctx context.Context, userID uuid.UUID, artworkID int64, approved bool, meta RequestMeta) (*entities.Artwork, error) {
	artwork, err := u.artworks.GetByID(ctx, artworkID)
	if err != nil {
		return nil, err
	}

	if err := u.artworks.SetApproval(ctx, artworkID, approved); err != nil {
		return nil, err
	}

	u.audit.RecordAs(ctx, uuid.NullUUID{UUID: userID, Valid: true},
		entities.ActionArtworkApprovalChanged, entities.SubjectArtwork, artworkID,
		map[string]interface{}{
			"title":      artwork.Title,
			"from":       artwork.IsApproved,
			"to":         approved,
			"gallery_id": artwork.GalleryID,
		}, meta)

	return u.artworks.GetByID(ctx, artworkID)
}
