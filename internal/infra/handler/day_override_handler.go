package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-class-remind/internal/app"
)

type DayOverrideHandler struct {
	useCase app.DayOverrideUseCase
}

func NewDayOverrideHandler(useCase app.DayOverrideUseCase) *DayOverrideHandler {
	return &DayOverrideHandler{
		useCase: useCase,
	}
}

func (h *DayOverrideHandler) ListDayOverrides(c *gin.Context) {
	userID := c.Param("user_id")

	slog.InfoContext(c.Request.Context(), "handling list day overrides request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"user_id", userID,
	)

	output, err := h.useCase.ListDayOverrides(c.Request.Context(), app.ListDayOverridesInput{
		UserID: userID,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDayOverrides(output))
}

func (h *DayOverrideHandler) CreateDayOverride(c *gin.Context) {
	userID := c.Param("user_id")

	slog.InfoContext(c.Request.Context(), "handling create day override request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"user_id", userID,
	)

	var req DayOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.CreateDayOverride(c.Request.Context(), app.CreateDayOverrideInput{
		UserID: userID,
		Date:   req.Date,
		Day:    req.Day,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "day override created successfully",
		"user_id", userID,
		"date", output.Date,
		"day", output.Day,
	)
	c.JSON(http.StatusCreated, FromDayOverride(output))
}

func (h *DayOverrideHandler) DeleteDayOverride(c *gin.Context) {
	userID := c.Param("user_id")
	date := c.Param("date")

	slog.InfoContext(c.Request.Context(), "handling delete day override request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"user_id", userID,
		"date", date,
	)

	err := h.useCase.DeleteDayOverride(c.Request.Context(), app.DeleteDayOverrideInput{
		UserID: userID,
		Date:   date,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DayOverrideHandler) RegisterRoutes(router *gin.RouterGroup) {
	overrides := router.Group("/users/:user_id/day-overrides")
	{
		overrides.GET("", h.ListDayOverrides)
		overrides.POST("", h.CreateDayOverride)
		overrides.DELETE("/:date", h.DeleteDayOverride)
	}
}
