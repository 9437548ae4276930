package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"artmarket.backend/internal/domain/entities"
	domainerrors "artmarket.backend/internal/domain/errors"
	"artmarket.backend/internal/interfaces/http/middleware"
	"artmarket.backend/internal/interfaces/http/response"
	"artmarket.backend/internal/usecases"
)

// GalleryInquiryHandler handles the gallery staff inquiry endpoints
type GalleryInquiryHandler struct {
	galleryUsecase *usecases.GalleryInquiryUsecase
}

// NewGalleryInquiryHandler creates a new gallery inquiry handler
func NewGalleryInquiryHandler(galleryUsecase *usecases.GalleryInquiryUsecase) *GalleryInquiryHandler {
	return &GalleryInquiryHandler{galleryUsecase: galleryUsecase}
}

// List lists the caller's inquiries
// GET /api/v1/gallery/inquiries
func (h *GalleryInquiryHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	status := entities.InquiryStatus(c.Query("status"))

	inquiries, meta, err := h.galleryUsecase.List(c.Request.Context(), userID, status, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"data": inquiries,
		"meta": meta,
	})
}

// Show returns one inquiry scoped to the caller's gallery
// GET /api/v1/gallery/inquiries/:id
func (h *GalleryInquiryHandler) Show(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid inquiry id")
		return
	}

	detail, err := h.galleryUsecase.Show(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// UpdateStatus moves an inquiry along the staff lifecycle
// PATCH /api/v1/gallery/inquiries/:id/status
func (h *GalleryInquiryHandler) UpdateStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid inquiry id")
		return
	}

	var input entities.UpdateInquiryStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	inquiry, err := h.galleryUsecase.UpdateStatus(c.Request.Context(), userID, id, &input, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, inquiry)
}
