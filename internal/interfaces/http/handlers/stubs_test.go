package handlers

import (
	"context"

	"github.com/google/uuid"

	"artmarket.backend/internal/domain/entities"
	domainerrors "artmarket.backend/internal/domain/errors"
	"artmarket.backend/internal/domain/repositories"
)

// Func-field stubs so each test overrides only what it touches. Methods
// without an override return a zero value or ErrNotFound.

type inquiryRepoStub struct {
	createFn        func(ctx context.Context, inquiry *entities.Inquiry) error
	getByIDFn       func(ctx context.Context, id int64) (*entities.Inquiry, error)
	markVerifiedFn  func(ctx context.Context, id int64) (bool, error)
	updateStatusFn  func(ctx context.Context, id int64, status entities.InquiryStatus) error
	deleteFn        func(ctx context.Context, id int64) error
	listFn          func(ctx context.Context, filter repositories.InquiryFilter, limit, offset int) ([]*entities.Inquiry, int64, error)
	appendLogFn     func(ctx context.Context, log *entities.InquiryLog) error
	logsByInquiryFn func(ctx context.Context, inquiryID int64) ([]*entities.InquiryLog, error)
}

func (s *inquiryRepoStub) Create(ctx context.Context, inquiry *entities.Inquiry) error {
	if s.createFn != nil {
		return s.createFn(ctx, inquiry)
	}
	inquiry.ID = 1
	return nil
}

func (s *inquiryRepoStub) GetByID(ctx context.Context, id int64) (*entities.Inquiry, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *inquiryRepoStub) MarkVerified(ctx context.Context, id int64) (bool, error) {
	if s.markVerifiedFn != nil {
		return s.markVerifiedFn(ctx, id)
	}
	return false, nil
}

func (s *inquiryRepoStub) UpdateStatus(ctx context.Context, id int64, status entities.InquiryStatus) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (s *inquiryRepoStub) Delete(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *inquiryRepoStub) List(ctx context.Context, filter repositories.InquiryFilter, limit, offset int) ([]*entities.Inquiry, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter, limit, offset)
	}
	return nil, 0, nil
}

func (s *inquiryRepoStub) ListByStatus(ctx context.Context, status entities.InquiryStatus) ([]*entities.Inquiry, error) {
	return nil, nil
}

func (s *inquiryRepoStub) AppendLog(ctx context.Context, log *entities.InquiryLog) error {
	if s.appendLogFn != nil {
		return s.appendLogFn(ctx, log)
	}
	return nil
}

func (s *inquiryRepoStub) LogsByInquiry(ctx context.Context, inquiryID int64) ([]*entities.InquiryLog, error) {
	if s.logsByInquiryFn != nil {
		return s.logsByInquiryFn(ctx, inquiryID)
	}
	return nil, nil
}

type artworkRepoStub struct {
	getByIDFn            func(ctx context.Context, id int64) (*entities.Artwork, error)
	getBySlugFn          func(ctx context.Context, slug string) (*entities.Artwork, error)
	getByIDsFn           func(ctx context.Context, ids []int64) ([]*entities.Artwork, error)
	countApprovedByIDsFn func(ctx context.Context, ids []int64) (int64, error)
	idsByGalleryFn       func(ctx context.Context, galleryID int64) ([]int64, error)
	listFn               func(ctx context.Context, filter entities.ArtworkFilter, limit, offset int) ([]*entities.Artwork, int64, error)
	setApprovalFn        func(ctx context.Context, id int64, approved bool) error
}

func (s *artworkRepoStub) GetByID(ctx context.Context, id int64) (*entities.Artwork, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *artworkRepoStub) GetBySlug(ctx context.Context, slug string) (*entities.Artwork, error) {
	if s.getBySlugFn != nil {
		return s.getBySlugFn(ctx, slug)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *artworkRepoStub) GetByIDs(ctx context.Context, ids []int64) ([]*entities.Artwork, error) {
	if s.getByIDsFn != nil {
		return s.getByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (s *artworkRepoStub) CountApprovedByIDs(ctx context.Context, ids []int64) (int64, error) {
	if s.countApprovedByIDsFn != nil {
		return s.countApprovedByIDsFn(ctx, ids)
	}
	return int64(len(ids)), nil
}

func (s *artworkRepoStub) IDsByGallery(ctx context.Context, galleryID int64) ([]int64, error) {
	if s.idsByGalleryFn != nil {
		return s.idsByGalleryFn(ctx, galleryID)
	}
	return nil, nil
}

func (s *artworkRepoStub) List(ctx context.Context, filter entities.ArtworkFilter, limit, offset int) ([]*entities.Artwork, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter, limit, offset)
	}
	return nil, 0, nil
}

func (s *artworkRepoStub) SetApproval(ctx context.Context, id int64, approved bool) error {
	if s.setApprovalFn != nil {
		return s.setApprovalFn(ctx, id, approved)
	}
	return nil
}

type galleryRepoStub struct {
	getByIDFn     func(ctx context.Context, id int64) (*entities.Gallery, error)
	getByUserIDFn func(ctx context.Context, userID uuid.UUID) (*entities.Gallery, error)
}

func (s *galleryRepoStub) GetByID(ctx context.Context, id int64) (*entities.Gallery, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *galleryRepoStub) GetBySlug(ctx context.Context, slug string) (*entities.Gallery, error) {
	return nil, domainerrors.ErrNotFound
}

func (s *galleryRepoStub) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Gallery, error) {
	if s.getByUserIDFn != nil {
		return s.getByUserIDFn(ctx, userID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *galleryRepoStub) List(ctx context.Context, limit, offset int) ([]*entities.Gallery, int64, error) {
	return nil, 0, nil
}

type artistRepoStub struct {
	getBySlugFn func(ctx context.Context, slug string) (*entities.Artist, error)
	listFn      func(ctx context.Context, limit, offset int) ([]*entities.Artist, int64, error)
}

func (s *artistRepoStub) GetByID(ctx context.Context, id int64) (*entities.Artist, error) {
	return nil, domainerrors.ErrNotFound
}

func (s *artistRepoStub) GetBySlug(ctx context.Context, slug string) (*entities.Artist, error) {
	if s.getBySlugFn != nil {
		return s.getBySlugFn(ctx, slug)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *artistRepoStub) List(ctx context.Context, limit, offset int) ([]*entities.Artist, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, limit, offset)
	}
	return nil, 0, nil
}

type savedArtworkRepoStub struct {
	saveFn          func(ctx context.Context, sessionID string, artworkID int64) (*entities.SavedArtwork, error)
	deleteFn        func(ctx context.Context, sessionID string, artworkID int64) error
	listBySessionFn func(ctx context.Context, sessionID string) ([]*entities.SavedArtwork, error)
}

func (s *savedArtworkRepoStub) Save(ctx context.Context, sessionID string, artworkID int64) (*entities.SavedArtwork, error) {
	if s.saveFn != nil {
		return s.saveFn(ctx, sessionID, artworkID)
	}
	return &entities.SavedArtwork{SessionID: sessionID, ArtworkID: artworkID}, nil
}

func (s *savedArtworkRepoStub) Delete(ctx context.Context, sessionID string, artworkID int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, sessionID, artworkID)
	}
	return nil
}

func (s *savedArtworkRepoStub) ListBySession(ctx context.Context, sessionID string) ([]*entities.SavedArtwork, error) {
	if s.listBySessionFn != nil {
		return s.listBySessionFn(ctx, sessionID)
	}
	return nil, nil
}

type actionLogRepoStub struct {
	createFn func(ctx context.Context, entry *entities.ActionLogEntry) error
}

func (s *actionLogRepoStub) Create(ctx context.Context, entry *entities.ActionLogEntry) error {
	if s.createFn != nil {
		return s.createFn(ctx, entry)
	}
	return nil
}

func (s *actionLogRepoStub) List(ctx context.Context, filter entities.ActionLogFilter, limit, offset int) ([]*entities.ActionLogEntry, int64, error) {
	return nil, 0, nil
}

func (s *actionLogRepoStub) DistinctActions(ctx context.Context) ([]string, error) {
	return nil, nil
}

type userRepoStub struct {
	createFn     func(ctx context.Context, user *entities.User) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmailFn func(ctx context.Context, email string) (*entities.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

type mailerStub struct {
	confirmFn func(ctx context.Context, inquiry *entities.Inquiry, verificationURL string) error
	notifyFn  func(ctx context.Context, inquiry *entities.Inquiry, gallery *entities.Gallery, artworks []*entities.Artwork) error
}

func (s *mailerStub) SendInquiryConfirmation(ctx context.Context, inquiry *entities.Inquiry, verificationURL string) error {
	if s.confirmFn != nil {
		return s.confirmFn(ctx, inquiry, verificationURL)
	}
	return nil
}

func (s *mailerStub) SendInquiryNotification(ctx context.Context, inquiry *entities.Inquiry, gallery *entities.Gallery, artworks []*entities.Artwork) error {
	if s.notifyFn != nil {
		return s.notifyFn(ctx, inquiry, gallery, artworks)
	}
	return nil
}
