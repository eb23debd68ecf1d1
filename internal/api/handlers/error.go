package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xzzpig/cronlist/internal/api/context"
	"github.com/xzzpig/cronlist/internal/core/errs"
	"github.com/xzzpig/cronlist/internal/i18n"
)

// AppError represents a structured error response
type AppError struct {
	Code    int    `json:"code"`
	Key     string `json:"key,omitempty"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewError creates a new AppError
func NewError(code int, message string, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// HandleError writes err as a JSON AppError. Translatable errors are rendered
// in the request's locale; domain sentinels pick the status code.
func HandleError(c *gin.Context, err error) {
	_ = c.Error(err)

	var appErr *AppError
	if errors.As(err, &appErr) {
		c.AbortWithStatusJSON(appErr.Code, appErr)
		return
	}

	localizer := context.GetLocalizer(c)

	if i18nErr, ok := i18n.AsError(err); ok {
		resp := &AppError{
			Code:    i18nErr.StatusCode,
			Key:     i18nErr.MsgID,
			Message: i18nErr.Translate(localizer),
		}
		if i18nErr.Cause != nil {
			resp.Details = i18nErr.Cause.Error()
		}
		c.AbortWithStatusJSON(resp.Code, resp)
		return
	}

	if errors.Is(err, errs.ErrInvalidInput) {
		c.AbortWithStatusJSON(http.StatusBadRequest, &AppError{
			Code:    http.StatusBadRequest,
			Key:     i18n.ErrInvalidInput,
			Message: i18n.T(localizer, i18n.ErrInvalidInput),
			Details: err.Error(),
		})
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, &AppError{
		Code:    http.StatusInternalServerError,
		Key:     i18n.ErrGeneric,
		Message: i18n.T(localizer, i18n.ErrGeneric),
		Details: err.Error(),
	})
}

// NotFoundHandler handles 404 errors
func NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, &AppError{
		Code:    http.StatusNotFound,
		Message: "Resource Not Found",
	})
}
