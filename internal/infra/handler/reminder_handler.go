package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-class-remind/internal/app"
)

type ReminderHandler struct {
	useCase app.ReminderUseCase
}

func NewReminderHandler(useCase app.ReminderUseCase) *ReminderHandler {
	return &ReminderHandler{
		useCase: useCase,
	}
}

// EvaluateReminders accepts an empty body, which evaluates against the
// current time with nothing notified yet.
func (h *ReminderHandler) EvaluateReminders(c *gin.Context) {
	userID := c.Param("user_id")

	slog.InfoContext(c.Request.Context(), "handling evaluate reminders request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"user_id", userID,
	)

	var req EvaluateRemindersRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindError(c, err)

		return
	}

	input := app.EvaluateRemindersInput{
		UserID:   userID,
		Notified: req.Notified,
	}
	if req.Now != nil {
		input.Now = *req.Now
	}

	output, err := h.useCase.EvaluateReminders(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "reminders evaluated",
		"user_id", userID,
		"due", len(output.Due),
	)
	c.JSON(http.StatusOK, FromEvaluation(output))
}

func (h *ReminderHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/users/:user_id/reminders/evaluate", h.EvaluateReminders)
}
