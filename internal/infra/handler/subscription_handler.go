package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-class-remind/internal/app"
)

type SubscriptionHandler struct {
	useCase app.SubscriptionUseCase
}

func NewSubscriptionHandler(useCase app.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{
		useCase: useCase,
	}
}

func (h *SubscriptionHandler) SaveSubscription(c *gin.Context) {
	userID := c.Param("user_id")

	slog.InfoContext(c.Request.Context(), "handling save push subscription request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"user_id", userID,
	)

	var req PushSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	err := h.useCase.SaveSubscription(c.Request.Context(), app.SaveSubscriptionInput{
		UserID:   userID,
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	userID := c.Param("user_id")

	slog.InfoContext(c.Request.Context(), "handling delete push subscription request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"user_id", userID,
	)

	err := h.useCase.DeleteSubscription(c.Request.Context(), app.DeleteSubscriptionInput{
		UserID: userID,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SubscriptionHandler) RegisterRoutes(router *gin.RouterGroup) {
	sub := router.Group("/users/:user_id/push-subscription")
	{
		sub.PUT("", h.SaveSubscription)
		sub.DELETE("", h.DeleteSubscription)
	}
}
