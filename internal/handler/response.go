package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripfolio/internal/domain"
	"tripfolio/internal/logger"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response. Details carries per-field
// messages for validation failures.
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrTripNotFound):
		return http.StatusNotFound, "NOT_FOUND", "trip not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrCredentialRequired):
		return http.StatusBadRequest, "CREDENTIAL_REQUIRED", "extraction credential required; add one in settings"
	case errors.Is(err, domain.ErrInvalidCredential):
		return http.StatusUnauthorized, "INVALID_CREDENTIAL", "invalid extraction credential; check your key in settings"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: jpeg, png, gif, webp, pdf"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds the 10 MiB limit"
	case errors.Is(err, domain.ErrExtractionFailed):
		return http.StatusInternalServerError, "EXTRACTION_FAILED", "failed to extract document"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
// Validation errors carry their per-field detail; 5xx detail is logged for
// operators and never leaked to the caller.
func HandleError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Error: &APIError{
				Code:    "VALIDATION_FAILED",
				Message: "validation failed",
				Details: ve.Fields,
			},
		})
		return
	}

	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		logger.Get().Errorw("internal error", "request_id", requestID, "error", err)
	}
	RespondError(c, status, code, msg)
}
