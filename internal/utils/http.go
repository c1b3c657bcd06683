package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/logger"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Message: errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// DomainErrorResponse maps a domain error to the HTTP contract. Unknown
// errors are logged server-side and reported as a generic internal error.
func DomainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return UnauthorizedResponse(c, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		return ForbiddenResponse(c, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		return NotFoundResponse(c, err.Error())
	case errors.Is(err, apperr.ErrValidation),
		errors.Is(err, apperr.ErrDuplicateIdentity),
		errors.Is(err, apperr.ErrAlreadyTaken),
		errors.Is(err, apperr.ErrUnavailable),
		errors.Is(err, apperr.ErrExpired),
		errors.Is(err, apperr.ErrInvalidState):
		return BadRequestResponse(c, err.Error())
	default:
		logger.Error("unhandled error",
			logger.ErrorField(err),
			logger.String("path", c.Path()),
		)
		return InternalServerErrorResponse(c, "")
	}
}
