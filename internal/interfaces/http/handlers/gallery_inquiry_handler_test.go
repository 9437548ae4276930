package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"

	"artmarket.backend/internal/domain/entities"
	"artmarket.backend/internal/domain/repositories"
	"artmarket.backend/internal/interfaces/http/middleware"
	"artmarket.backend/internal/usecases"
)

type galleryHandlerFixture struct {
	userID    uuid.UUID
	inquiries *inquiryRepoStub
	artworks  *artworkRepoStub
	galleries *galleryRepoStub
	router    *gin.Engine
}

func newGalleryHandlerFixture(t *testing.T) *galleryHandlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &galleryHandlerFixture{
		userID:    uuid.New(),
		inquiries: &inquiryRepoStub{},
		artworks:  &artworkRepoStub{},
		galleries: &galleryRepoStub{},
	}

	// The caller owns gallery 3 with artworks 1 and 2
	f.galleries.getByUserIDFn = func(_ context.Context, userID uuid.UUID) (*entities.Gallery, error) {
		return &entities.Gallery{ID: 3, UserID: userID, Name: "Gallery"}, nil
	}
	f.artworks.idsByGalleryFn = func(_ context.Context, galleryID int64) ([]int64, error) {
		return []int64{1, 2}, nil
	}

	usecase := usecases.NewGalleryInquiryUsecase(
		f.inquiries,
		f.artworks,
		f.galleries,
		usecases.NewAuditTrail(&actionLogRepoStub{}),
	)
	h := NewGalleryInquiryHandler(usecase)

	withUser := func(c *gin.Context) {
		c.Set(middleware.UserIDKey, f.userID)
	}

	f.router = gin.New()
	f.router.GET("/api/v1/gallery/inquiries", withUser, h.List)
	f.router.GET("/api/v1/gallery/inquiries/:id", withUser, h.Show)
	f.router.PATCH("/api/v1/gallery/inquiries/:id/status", withUser, h.UpdateStatus)
	return f
}

func (f *galleryHandlerFixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestGalleryInquiryHandler_List(t *testing.T) {
	f := newGalleryHandlerFixture(t)
	f.inquiries.listFn = func(_ context.Context, _ repositories.InquiryFilter, _, _ int) ([]*entities.Inquiry, int64, error) {
		return nil, 0, nil
	}

	w := f.do(http.MethodGet, "/api/v1/gallery/inquiries", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"meta"`)
}

func TestGalleryInquiryHandler_List_FiltersForeignInquiries(t *testing.T) {
	f := newGalleryHandlerFixture(t)
	f.inquiries.listFn = func(_ context.Context, _ repositories.InquiryFilter, _, _ int) ([]*entities.Inquiry, int64, error) {
		return []*entities.Inquiry{
			{ID: 1, Status: entities.InquiryStatusVerified, ArtworkIDs: []int64{1, 9}},
			{ID: 2, Status: entities.InquiryStatusVerified, ArtworkIDs: []int64{9}},
			{ID: 3, Status: entities.InquiryStatusPendingVerification, ArtworkIDs: []int64{1}},
		}, 3, nil
	}

	w := f.do(http.MethodGet, "/api/v1/gallery/inquiries", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)
	assert.NotContains(t, w.Body.String(), `"id":2`)
	assert.NotContains(t, w.Body.String(), `"id":3`)
	assert.Contains(t, w.Body.String(), `"gallery_artwork_ids":[1]`)
}

func TestGalleryInquiryHandler_Show_Forbidden(t *testing.T) {
	f := newGalleryHandlerFixture(t)
	f.inquiries.getByIDFn = func(_ context.Context, id int64) (*entities.Inquiry, error) {
		return &entities.Inquiry{ID: id, Status: entities.InquiryStatusVerified, ArtworkIDs: []int64{9}}, nil
	}

	w := f.do(http.MethodGet, "/api/v1/gallery/inquiries/7", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGalleryInquiryHandler_Show(t *testing.T) {
	f := newGalleryHandlerFixture(t)
	f.inquiries.getByIDFn = func(_ context.Context, id int64) (*entities.Inquiry, error) {
		return &entities.Inquiry{
			ID:              id,
			Status:          entities.InquiryStatusVerified,
			ArtworkIDs:      []int64{1, 9},
			EmailVerifiedAt: null.TimeFrom(time.Now()),
		}, nil
	}
	f.artworks.getByIDsFn = func(_ context.Context, ids []int64) ([]*entities.Artwork, error) {
		assert.Equal(t, []int64{1}, ids, "only the caller's own artworks are resolved")
		return []*entities.Artwork{{ID: 1, Title: "Dusk"}}, nil
	}

	w := f.do(http.MethodGet, "/api/v1/gallery/inquiries/7", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dusk")
}

func TestGalleryInquiryHandler_UpdateStatus(t *testing.T) {
	f := newGalleryHandlerFixture(t)
	current := entities.InquiryStatusVerified
	f.inquiries.getByIDFn = func(_ context.Context, id int64) (*entities.Inquiry, error) {
		return &entities.Inquiry{ID: id, Status: current, ArtworkIDs: []int64{1}}, nil
	}
	f.inquiries.updateStatusFn = func(_ context.Context, id int64, status entities.InquiryStatus) error {
		current = status
		return nil
	}

	w := f.do(http.MethodPatch, "/api/v1/gallery/inquiries/7/status", `{"status":"read"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"read"`)
}

func TestGalleryInquiryHandler_UpdateStatus_BackwardRejected(t *testing.T) {
	f := newGalleryHandlerFixture(t)
	f.inquiries.getByIDFn = func(_ context.Context, id int64) (*entities.Inquiry, error) {
		return &entities.Inquiry{ID: id, Status: entities.InquiryStatusCompleted, ArtworkIDs: []int64{1}}, nil
	}

	w := f.do(http.MethodPatch, "/api/v1/gallery/inquiries/7/status", `{"status":"read"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
