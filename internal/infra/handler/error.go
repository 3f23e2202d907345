package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-class-remind/internal/app"
)

func bindError(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "request validation failed",
		"error", err,
		"path", c.Request.URL.Path,
	)

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}

func handleError(c *gin.Context, err error) {
	var validationErr *app.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})

		return
	}

	var resolutionErr *app.SlotResolutionError
	if errors.As(err, &resolutionErr) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "slot_resolution_error",
			Message: "one or more slots could not be resolved",
			Details: resolutionErr.Messages,
		})

		return
	}

	if errors.Is(err, app.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "resource not found",
		})

		return
	}

	if errors.Is(err, app.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "already_exists",
			Message: "resource already exists",
		})

		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		"error", err,
		"path", c.Request.URL.Path,
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "an internal error occurred",
	})
}
