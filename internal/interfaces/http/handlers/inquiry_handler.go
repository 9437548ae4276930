package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"artmarket.backend/internal/domain/entities"
	"artmarket.backend/internal/interfaces/http/response"
	"artmarket.backend/internal/usecases"
)

// InquiryHandler handles the public inquiry endpoints
type InquiryHandler struct {
	inquiryUsecase *usecases.InquiryUsecase
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiryUsecase *usecases.InquiryUsecase) *InquiryHandler {
	return &InquiryHandler{inquiryUsecase: inquiryUsecase}
}

// Create handles inquiry submission
// POST /api/v1/inquiries
func (h *InquiryHandler) Create(c *gin.Context) {
	var input entities.CreateInquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.inquiryUsecase.Create(c.Request.Context(), &input, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Inquiry received. Please check your inbox to verify your email address.",
		"data":    result,
	})
}

// Verify handles the emailed verification link and renders an HTML page
// GET /inquiry/verify/:id
func (h *InquiryHandler) Verify(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusOK, "verify_error.html", gin.H{
			"Title":   "Invalid link",
			"Message": "This verification link is not valid.",
		})
		return
	}

	result, err := h.inquiryUsecase.Verify(c.Request.Context(), id, c.Request.URL, requestMeta(c))
	if err != nil {
		c.HTML(http.StatusOK, "verify_error.html", gin.H{
			"Title":   "Something went wrong",
			"Message": "We could not verify your inquiry right now. Please try the link again later.",
		})
		return
	}

	switch result.Outcome {
	case usecases.VerifyOutcomeVerified:
		c.HTML(http.StatusOK, "verify_success.html", gin.H{
			"Title":    "Email verified",
			"Message":  "Thank you! Your inquiry has been sent to the galleries. They will contact you directly.",
			"Inquiry":  result.Inquiry,
			"Artworks": result.Artworks,
		})
	case usecases.VerifyOutcomeAlreadyVerified:
		c.HTML(http.StatusOK, "verify_success.html", gin.H{
			"Title":    "Already verified",
			"Message":  "This inquiry was already verified. The galleries have been notified.",
			"Inquiry":  result.Inquiry,
			"Artworks": result.Artworks,
		})
	case usecases.VerifyOutcomeTokenMismatch:
		c.HTML(http.StatusOK, "verify_error.html", gin.H{
			"Title":   "Invalid link",
			"Message": "This verification link does not match our records. Please use the most recent email we sent you.",
		})
	default:
		c.HTML(http.StatusOK, "verify_error.html", gin.H{
			"Title":   "Link expired",
			"Message": "This verification link is invalid or has expired.",
		})
	}
}

// Status returns the public status of an inquiry
// GET /api/v1/inquiries/:id/status
func (h *InquiryHandler) Status(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid inquiry id")
		return
	}

	info, err := h.inquiryUsecase.Status(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, info)
}

// requestMeta extracts the caller's address and agent for audit records
func requestMeta(c *gin.Context) usecases.RequestMeta {
	return usecases.RequestMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
