package usecases_test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"artmarket.backend/internal/domain/entities"
	"artmarket.backend/internal/domain/repositories"
)

// Mock InquiryRepository
type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) Create(ctx context.Context, inquiry *entities.Inquiry) error {
	args := m.Called(ctx, inquiry)
	return args.Error(0)
}

func (m *MockInquiryRepository) GetByID(ctx context.Context, id int64) (*entities.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) MarkVerified(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockInquiryRepository) UpdateStatus(ctx context.Context, id int64, status entities.InquiryStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockInquiryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInquiryRepository) List(ctx context.Context, filter repositories.InquiryFilter, limit, offset int) ([]*entities.Inquiry, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Inquiry), args.Get(1).(int64), args.Error(2)
}

func (m *MockInquiryRepository) ListByStatus(ctx context.Context, status entities.InquiryStatus) ([]*entities.Inquiry, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) AppendLog(ctx context.Context, log *entities.InquiryLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockInquiryRepository) LogsByInquiry(ctx context.Context, inquiryID int64) ([]*entities.InquiryLog, error) {
	args := m.Called(ctx, inquiryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.InquiryLog), args.Error(1)
}

// Mock ArtworkRepository
type MockArtworkRepository struct {
	mock.Mock
}

func (m *MockArtworkRepository) GetByID(ctx context.Context, id int64) (*entities.Artwork, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Artwork), args.Error(1)
}

func (m *MockArtworkRepository) GetBySlug(ctx context.Context, slug string) (*entities.Artwork, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Artwork), args.Error(1)
}

func (m *MockArtworkRepository) GetByIDs(ctx context.Context, ids []int64) ([]*entities.Artwork, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Artwork), args.Error(1)
}

func (m *MockArtworkRepository) CountApprovedByIDs(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArtworkRepository) IDsByGallery(ctx context.Context, galleryID int64) ([]int64, error) {
	args := m.Called(ctx, galleryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockArtworkRepository) List(ctx context.Context, filter entities.ArtworkFilter, limit, offset int) ([]*entities.Artwork, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Artwork), args.Get(1).(int64), args.Error(2)
}

func (m *MockArtworkRepository) SetApproval(ctx context.Context, id int64, approved bool) error {
	args := m.Called(ctx, id, approved)
	return args.Error(0)
}

// Mock GalleryRepository
type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) GetByID(ctx context.Context, id int64) (*entities.Gallery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) GetBySlug(ctx context.Context, slug string) (*entities.Gallery, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Gallery, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) List(ctx context.Context, limit, offset int) ([]*entities.Gallery, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Gallery), args.Get(1).(int64), args.Error(2)
}

// Mock ArtistRepository
type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) GetByID(ctx context.Context, id int64) (*entities.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Artist), args.Error(1)
}

func (m *MockArtistRepository) GetBySlug(ctx context.Context, slug string) (*entities.Artist, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Artist), args.Error(1)
}

func (m *MockArtistRepository) List(ctx context.Context, limit, offset int) ([]*entities.Artist, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Artist), args.Get(1).(int64), args.Error(2)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

// Mock ActionLogRepository
type MockActionLogRepository struct {
	mock.Mock
}

func (m *MockActionLogRepository) Create(ctx context.Context, entry *entities.ActionLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActionLogRepository) List(ctx context.Context, filter entities.ActionLogFilter, limit, offset int) ([]*entities.ActionLogEntry, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.ActionLogEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockActionLogRepository) DistinctActions(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Mock SavedArtworkRepository
type MockSavedArtworkRepository struct {
	mock.Mock
}

func (m *MockSavedArtworkRepository) Save(ctx context.Context, sessionID string, artworkID int64) (*entities.SavedArtwork, error) {
	args := m.Called(ctx, sessionID, artworkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SavedArtwork), args.Error(1)
}

func (m *MockSavedArtworkRepository) Delete(ctx context.Context, sessionID string, artworkID int64) error {
	args := m.Called(ctx, sessionID, artworkID)
	return args.Error(0)
}

func (m *MockSavedArtworkRepository) ListBySession(ctx context.Context, sessionID string) ([]*entities.SavedArtwork, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SavedArtwork), args.Error(1)
}

// recordingMailer captures every sent message so tests can assert the
// fan-out without a real SMTP server
type recordingMailer struct {
	mu            sync.Mutex
	confirmations []confirmationMail
	notifications []notificationMail
	failConfirm   error
	failNotifyFor map[int64]error
}

type confirmationMail struct {
	inquiry *entities.Inquiry
	url     string
}

type notificationMail struct {
	inquiry  *entities.Inquiry
	gallery  *entities.Gallery
	artworks []*entities.Artwork
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{failNotifyFor: map[int64]error{}}
}

func (m *recordingMailer) SendInquiryConfirmation(ctx context.Context, inquiry *entities.Inquiry, verificationURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failConfirm != nil {
		return m.failConfirm
	}
	m.confirmations = append(m.confirmations, confirmationMail{inquiry: inquiry, url: verificationURL})
	return nil
}

func (m *recordingMailer) SendInquiryNotification(ctx context.Context, inquiry *entities.Inquiry, gallery *entities.Gallery, artworks []*entities.Artwork) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failNotifyFor[gallery.ID]; err != nil {
		return err
	}
	m.notifications = append(m.notifications, notificationMail{inquiry: inquiry, gallery: gallery, artworks: artworks})
	return nil
}
