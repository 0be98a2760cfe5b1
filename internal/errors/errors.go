package errors

import (
	"net/http"
	"os"
	"strings"

	"codeberg.org/glowreview/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for critical errors
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For services/repositories/internal packages:
//   - Return typed sentinel errors from the package's errors.go, or wrap with
//     fmt.Errorf("context: %w", err) for unexpected failures
//   - Let the caller (handler) decide how to log and respond
//   - Do not log errors in non-handler code (avoid double logging)
//
// Authentication failures are deliberately collapsed into a single generic
// message at the HTTP boundary; the specific cause is only logged server-side.

// represents a standardized error response
type ErrorResponse struct {
	Error   string   `json:"error"`             // error code (e.g., "unauthorized", "not_found")
	Message string   `json:"message"`           // user-friendly message
	Details []string `json:"details,omitempty"` // optional details (sanitized in production)
}

// standard error codes
const (
	CodeUnauthorized    = "unauthorized"
	CodeForbidden       = "forbidden"
	CodeNotFound        = "not_found"
	CodeValidationError = "validation_error"
	CodeServerError     = "server_error"
	CodeBadRequest      = "bad_request"
	CodeConflict        = "conflict"
	CodeTooManyRequests = "too_many_requests"
	CodeLoginFailed     = "login_failed"
	CodeAccountLocked   = "account_locked"
	CodeProviderError   = "provider_error"
)

// returns a 401 unauthorized error
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "authentication required"
	}

	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error:   CodeUnauthorized,
		Message: message,
	})
}

// returns a 403 forbidden error
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "permission denied"
	}

	c.JSON(http.StatusForbidden, ErrorResponse{
		Error:   CodeForbidden,
		Message: message,
	})
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeNotFound,
		Message: message,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	if err != nil {
		response.Details = []string{sanitizeError(err)}
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 400 bad request error for validation failures
func ValidationError(c *gin.Context, err error) {
	message := "validation failed"
	details := []string{}

	if err != nil {
		details = append(details, sanitizeError(err))
		if strings.Contains(err.Error(), "binding") || strings.Contains(err.Error(), "validation") {
			message = "request validation failed"
		}
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: message,
		Details: details,
	})
}

// returns a 400 validation error with an explicit list of violation messages
func ValidationMessages(c *gin.Context, message string, details []string) {
	if message == "" {
		message = "validation failed"
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: message,
		Details: details,
	})
}

// returns a 401 with the generic login-failure message; the specific
// cause must never reach the client (account enumeration)
func LoginFailed(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error:   CodeLoginFailed,
		Message: "invalid login attempt",
	})
}

// returns a 401 for a locked-out account
func AccountLocked(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error:   CodeAccountLocked,
		Message: "account locked, try again later",
	})
}

// returns a 502 for an upstream identity-provider failure
func ProviderError(c *gin.Context, err error) {
	logger.ErrorErr(err, "external sign-in failed",
		"path", c.Request.URL.Path,
	)

	c.JSON(http.StatusBadGateway, ErrorResponse{
		Error:   CodeProviderError,
		Message: "could not complete external sign-in",
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString("user_id"),
	)

	// return sanitized error to client
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: []string{sanitizeError(err)},
	})
}

// returns a 409 conflict error
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "resource conflict"
	}

	c.JSON(http.StatusConflict, ErrorResponse{
		Error:   CodeConflict,
		Message: message,
	})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: message,
	})
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()
	env := os.Getenv("ENVIRONMENT")

	if env != "production" {
		return errMsg
	}

	if strings.Contains(errMsg, "database") || strings.Contains(errMsg, "sql") {
		return "database operation failed"
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") {
		return "connection error occurred"
	}

	if strings.Contains(errMsg, "timeout") {
		return "request timed out"
	}

	if strings.Contains(errMsg, "permission") || strings.Contains(errMsg, "unauthorized") {
		return "permission denied"
	}

	if strings.Contains(errMsg, "not found") {
		return "resource not found"
	}

	return "an error occurred"
}
