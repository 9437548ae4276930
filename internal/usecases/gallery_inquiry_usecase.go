package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"artmarket.backend/internal/domain/entities"
	domainerrors "artmarket.backend/internal/domain/errors"
	"artmarket.backend/internal/domain/repositories"
	"artmarket.backend/pkg/utils"
)

// GalleryInquiry is an inquiry as seen by gallery staff: the artwork set is
// narrowed to the caller's own pieces so one gallery never learns what the
// visitor asked other galleries about.
type GalleryInquiry struct {
	*entities.Inquiry
	GalleryArtworkIDs []int64 `json:"gallery_artwork_ids"`
}

// GalleryInquiryDetail is the single-inquiry staff view with resolved artworks
type GalleryInquiryDetail struct {
	Inquiry  *entities.Inquiry      `json:"inquiry"`
	Artworks []*entities.Artwork    `json:"artworks"`
	Logs     []*entities.InquiryLog `json:"logs"`
}

// GalleryInquiryUsecase exposes the inquiry lifecycle to gallery staff,
// scoped to the gallery owned by the authenticated user
type GalleryInquiryUsecase struct {
	inquiries repositories.InquiryRepository
	artworks  repositories.ArtworkRepository
	galleries repositories.GalleryRepository
	audit     *AuditTrail
}

// NewGalleryInquiryUsecase creates a new gallery inquiry usecase
func NewGalleryInquiryUsecase(
	inquiries repositories.InquiryRepository,
	artworks repositories.ArtworkRepository,
	galleries repositories.GalleryRepository,
	audit *AuditTrail,
) *GalleryInquiryUsecase {
	return &GalleryInquiryUsecase{
		inquiries: inquiries,
		artworks:  artworks,
		galleries: galleries,
		audit:     audit,
	}
}

// List returns the caller's inquiries: verified or later, intersecting at
// least one artwork of the caller's gallery. Inquiries still awaiting email
// verification are never shown to staff.
func (u *GalleryInquiryUsecase) List(ctx context.Context, userID uuid.UUID, status entities.InquiryStatus, page, limit int) ([]*GalleryInquiry, utils.PaginationMeta, error) {
	_, ownIDs, err := u.galleryScope(ctx, userID)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	if status != "" && !status.Valid() {
		return nil, utils.PaginationMeta{}, domainerrors.ErrInvalidStatus
	}

	all, _, err := u.inquiries.List(ctx, repositories.InquiryFilter{Status: status}, 0, 0)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	ownSet := idSet(ownIDs)
	matched := make([]*GalleryInquiry, 0)
	for _, inq := range all {
		if inq.IsPendingVerification() {
			continue
		}
		own := intersect(inq.ArtworkIDs, ownSet)
		if len(own) == 0 {
			continue
		}
		matched = append(matched, &GalleryInquiry{Inquiry: inq, GalleryArtworkIDs: own})
	}

	// Intersection filtering happens in memory, so pagination does too
	params := utils.GetPaginationParams(page, limit, 20)
	meta := utils.CalculateMeta(int64(len(matched)), params.Page, params.Limit)

	start := params.CalculateOffset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + params.Limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], meta, nil
}

// Show returns one inquiry with the caller's artworks and the inquiry
// history. Access requires at least one artwork of the caller's gallery.
func (u *GalleryInquiryUsecase) Show(ctx context.Context, userID uuid.UUID, inquiryID int64) (*GalleryInquiryDetail, error) {
	_, inquiry, own, err := u.authorize(ctx, userID, inquiryID)
	if err != nil {
		return nil, err
	}

	artworks, err := u.artworks.GetByIDs(ctx, own)
	if err != nil {
		return nil, err
	}

	logs, err := u.inquiries.LogsByInquiry(ctx, inquiryID)
	if err != nil {
		return nil, err
	}

	return &GalleryInquiryDetail{
		Inquiry:  inquiry,
		Artworks: artworks,
		Logs:     logs,
	}, nil
}

// UpdateStatus moves an inquiry along the staff lifecycle. Transitions are
// forward-only and verification states are never reachable from here.
func (u *GalleryInquiryUsecase) UpdateStatus(ctx context.Context, userID uuid.UUID, inquiryID int64, input *entities.UpdateInquiryStatusInput, meta RequestMeta) (*entities.Inquiry, error) {
	gallery, inquiry, _, err := u.authorize(ctx, userID, inquiryID)
	if err != nil {
		return nil, err
	}

	if !input.Status.Valid() {
		return nil, domainerrors.ErrInvalidStatus
	}
	if !inquiry.Status.CanTransitionTo(input.Status) {
		return nil, domainerrors.ErrInvalidTransition
	}

	if err := u.inquiries.UpdateStatus(ctx, inquiryID, input.Status); err != nil {
		return nil, err
	}

	u.audit.RecordAs(ctx, uuid.NullUUID{UUID: userID, Valid: true},
		entities.ActionInquiryStatusUpdated, entities.SubjectInquiry, inquiryID,
		map[string]interface{}{
			"from":       string(inquiry.Status),
			"to":         string(input.Status),
			"gallery_id": gallery.ID,
		}, meta)

	return u.inquiries.GetByID(ctx, inquiryID)
}

// authorize loads the caller's gallery and the inquiry and enforces tenant
// access: the inquiry must be past verification and reference at least one
// of the gallery's artworks. Returns the intersection.
func (u *GalleryInquiryUsecase) authorize(ctx context.Context, userID uuid.UUID, inquiryID int64) (*entities.Gallery, *entities.Inquiry, []int64, error) {
	gallery, ownIDs, err := u.galleryScope(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}

	inquiry, err := u.inquiries.GetByID(ctx, inquiryID)
	if err != nil {
		return nil, nil, nil, err
	}

	if inquiry.IsPendingVerification() {
		return nil, nil, nil, domainerrors.ErrNotFound
	}

	own := intersect(inquiry.ArtworkIDs, idSet(ownIDs))
	if len(own) == 0 {
		return nil, nil, nil, domainerrors.ErrForbidden
	}

	return gallery, inquiry, own, nil
}

func (u *GalleryInquiryUsecase) galleryScope(ctx context.Context, userID uuid.UUID) (*entities.Gallery, []int64, error) {
	gallery, err := u.galleries.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil, domainerrors.ErrGalleryNotFound
		}
		return nil, nil, err
	}

	ids, err := u.artworks.IDsByGallery(ctx, gallery.ID)
	if err != nil {
		return nil, nil, err
	}
	return gallery, ids, nil
}

func idSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// intersect keeps ids that are in set, preserving the order of ids
func intersect(ids []int64, set map[int64]struct{}) []int64 {
	var out []int64
	for _, id := range ids {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
