package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"artmarket.backend/internal/domain/entities"
	domainerrors "artmarket.backend/internal/domain/errors"
	"artmarket.backend/internal/domain/repositories"
	"artmarket.backend/internal/interfaces/http/middleware"
	"artmarket.backend/internal/interfaces/http/response"
	"artmarket.backend/internal/usecases"
)

// AdminHandler handles the cross-tenant admin endpoints
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// ListInquiries lists all inquiries
// GET /api/v1/admin/inquiries
func (h *AdminHandler) ListInquiries(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	filter := repositories.InquiryFilter{
		Search: c.Query("search"),
		Status: entities.InquiryStatus(c.Query("status")),
	}

	inquiries, meta, err := h.adminUsecase.ListInquiries(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"data": inquiries,
		"meta": meta,
	})
}

// GetInquiry returns one inquiry with artworks and history
// GET /api/v1/admin/inquiries/:id
func (h *AdminHandler) GetInquiry(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid inquiry id")
		return
	}

	detail, err := h.adminUsecase.GetInquiry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// UpdateInquiryStatus sets an inquiry's status
// PATCH /api/v1/admin/inquiries/:id/status
func (h *AdminHandler) UpdateInquiryStatus(c *gin.Context) {
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

	inquiry, err := h.adminUsecase.UpdateInquiryStatus(c.Request.Context(), userID, id, &input, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, inquiry)
}

// DeleteInquiry removes an inquiry
// DELETE /api/v1/admin/inquiries/:id
func (h *AdminHandler) DeleteInquiry(c *gin.Context) {
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

	if err := h.adminUsecase.DeleteInquiry(c.Request.Context(), userID, id, requestMeta(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "inquiry deleted"})
}

// ListActionLogs lists audit entries
// GET /api/v1/admin/action-logs
func (h *AdminHandler) ListActionLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	var filter entities.ActionLogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entries, meta, err := h.adminUsecase.ListActionLogs(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"data": entries,
		"meta": meta,
	})
}

// ActionLogActions returns the distinct audit action tags
// GET /api/v1/admin/action-logs/actions
func (h *AdminHandler) ActionLogActions(c *gin.Context) {
	actions, err := h.adminUsecase.ActionLogActions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"data": actions})
}

// SetArtworkApproval flips an artwork's approval flag
// PATCH /api/v1/admin/artworks/:id/approval
func (h *AdminHandler) SetArtworkApproval(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid artwork id")
		return
	}

	var input entities.ArtworkApprovalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	artwork, err := h.adminUsecase.SetArtworkApproval(c.Request.Context(), userID, id, *input.Approved, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, artwork)
}
