package errors

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"codeberg.org/visualmath/server/internal/animation"
	"codeberg.org/visualmath/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), errors.PipelineFailed() etc.
//     These functions handle both logging and HTTP response automatically
//   - Never call both logger.ErrorErr() and one of these helpers for the same error
//
// For services/clients/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond

// represents a standardized error response.
// Error always carries the human-readable message so clients can show it as-is
type ErrorResponse struct {
	Error   string `json:"error"`             // user-facing message
	Code    string `json:"code"`              // machine-readable code (e.g., "generation_failed")
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

// standard error codes
const (
	CodeValidationError  = "validation_error"
	CodeServerError      = "server_error"
	CodeBadRequest       = "bad_request"
	CodeNotFound         = "not_found"
	CodeMethodNotAllowed = "method_not_allowed"
)

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error: message,
		Code:  CodeBadRequest,
	}

	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, response)
}

// returns a 400 bad request error for validation failures
func ValidationError(c *gin.Context, err error) {
	message := "validation failed"
	details := ""

	if err != nil {
		details = sanitizeError(err)
		if strings.Contains(err.Error(), "binding") || strings.Contains(err.Error(), "validation") {
			message = "request validation failed"
		}
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error:   message,
		Code:    CodeValidationError,
		Details: details,
	})
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{
		Error: message,
		Code:  CodeNotFound,
	})
}

// returns a 405 with the Allow header listing the accepted methods
func MethodNotAllowed(c *gin.Context, allowed ...string) {
	c.Header("Allow", strings.Join(allowed, ", "))

	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, ErrorResponse{
		Error: "Method " + c.Request.Method + " Not Allowed",
		Code:  CodeMethodNotAllowed,
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	logger.FromContext(c.Request.Context()).Error(message,
		"error", err,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error:   message,
		Code:    CodeServerError,
		Details: sanitizeError(err),
	})
}

// returns a 500 for a failed generate → render run, keeping the failure kind
func PipelineFailed(c *gin.Context, err error) {
	kind := animation.KindOf(err)

	logger.FromContext(c.Request.Context()).Error("animation pipeline failed",
		"error", err,
		"kind", kind,
		"path", c.Request.URL.Path,
	)

	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error:   animation.UserMessage(err),
		Code:    string(kind),
		Details: sanitizeError(errors.Unwrap(err)),
	})
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()

	if os.Getenv("ENVIRONMENT") != "production" {
		return errMsg
	}

	if errors.Is(err, context.DeadlineExceeded) || strings.Contains(errMsg, "timeout") {
		return "request timed out"
	}

	if errors.Is(err, context.Canceled) {
		return "request canceled"
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") ||
		strings.Contains(errMsg, "dial") {
		return "connection error occurred"
	}

	if strings.Contains(errMsg, "status") {
		return "upstream service error"
	}

	return "an error occurred"
}
