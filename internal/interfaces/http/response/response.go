package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "artmarket.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps a domain error to an HTTP status and sends the JSON error body
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"message": appErr.Message})
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		status = http.StatusNotFound
		message = "resource not found"
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = "invalid credentials"
	case errors.Is(err, domainerrors.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = "unauthorized"
	case errors.Is(err, domainerrors.ErrForbidden):
		status = http.StatusForbidden
		message = "forbidden"
	case errors.Is(err, domainerrors.ErrGalleryNotFound):
		status = http.StatusForbidden
		message = "no gallery associated with this account"
	case errors.Is(err, domainerrors.ErrInvalidStatus):
		status = http.StatusBadRequest
		message = "invalid status"
	case errors.Is(err, domainerrors.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
		message = "status transition not allowed"
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest):
		status = http.StatusBadRequest
		message = "invalid input"
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		status = http.StatusConflict
		message = "resource already exists"
	}

	c.JSON(status, gin.H{"message": message})
}

// BadRequest sends a 400 with a validation message
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}
