package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-class-remind/internal/app"
)

type TimetableHandler struct {
	useCase app.TimetableUseCase
}

func NewTimetableHandler(useCase app.TimetableUseCase) *TimetableHandler {
	return &TimetableHandler{
		useCase: useCase,
	}
}

func toCourseInputs(reqs []CourseRequest) []app.CourseInput {
	courses := make([]app.CourseInput, 0, len(reqs))
	for _, r := range reqs {
		courses = append(courses, app.CourseInput{
			SubjectName:    r.SubjectName,
			SubjectCode:    r.SubjectCode,
			SessionType:    r.SessionType,
			SlotExpression: r.Slot,
			RoomNumber:     r.RoomNumber,
			Credit:         r.Credit,
		})
	}

	return courses
}

func toEntryInput(req EntryRequest) app.EntryInput {
	return app.EntryInput{
		SubjectName: req.SubjectName,
		SubjectCode: req.SubjectCode,
		SessionType: req.SessionType,
		SlotCode:    req.SlotCode,
		SlotLabel:   req.SlotLabel,
		RoomNumber:  req.RoomNumber,
		Credit:      req.Credit,
		Day:         req.Day,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
}

// ResolveCourses previews the resolution without persisting anything.
// Unresolvable slots are reported in the body, not as an error status.
func (h *TimetableHandler) ResolveCourses(c *gin.Context) {
	slog.InfoContext(c.Request.Context(), "handling resolve courses request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req CoursesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.PreviewCourses(c.Request.Context(), app.PreviewCoursesInput{
		Courses: toCourseInputs(req.Courses),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "courses resolved",
		"entries", len(output.Entries),
		"errors", len(output.Errors),
	)
	c.JSON(http.StatusOK, FromPreview(output))
}

func (h *TimetableHandler) RegisterCourses(c *gin.Context) {
	userID := c.Param("user_id")

	slog.InfoContext(c.Request.Context(), "handling register courses request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"user_id", userID,
	)

	var query RegisterCoursesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)

		return
	}

	var req CoursesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.RegisterCourses(c.Request.Context(), app.RegisterCoursesInput{
		UserID:  userID,
		Courses: toCourseInputs(req.Courses),
		Replace: query.Replace,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "courses registered successfully",
		"user_id", userID,
		"count", output.Count,
		"replace", query.Replace,
	)
	c.JSON(http.StatusCreated, FromDTOs(output))
}

func (h *TimetableHandler) ListEntries(c *gin.Context) {
	userID := c.Param("user_id")

	slog.InfoContext(c.Request.Context(), "handling list entries request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"user_id", userID,
	)

	var query ListEntriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.ListEntries(c.Request.Context(), app.ListEntriesInput{
		UserID: userID,
		Day:    query.Day,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "entries retrieved successfully",
		"user_id", userID,
		"count", output.Count,
	)
	c.JSON(http.StatusOK, FromDTOs(output))
}

func (h *TimetableHandler) ListTodayEntries(c *gin.Context) {
	userID := c.Param("user_id")

	slog.InfoContext(c.Request.Context(), "handling list today entries request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"user_id", userID,
	)

	output, err := h.useCase.ListTodayEntries(c.Request.Context(), app.ListTodayEntriesInput{
		UserID: userID,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromToday(output))
}

func (h *TimetableHandler) CreateEntry(c *gin.Context) {
	userID := c.Param("user_id")

	slog.InfoContext(c.Request.Context(), "handling create entry request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"user_id", userID,
	)

	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.CreateManualEntry(c.Request.Context(), app.CreateEntryInput{
		UserID: userID,
		Entry:  toEntryInput(req),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "entry created successfully",
		"user_id", userID,
		"entry_id", output.ID,
	)
	c.JSON(http.StatusCreated, FromDTO(output))
}

func (h *TimetableHandler) UpdateEntry(c *gin.Context) {
	userID := c.Param("user_id")
	id := c.Param("id")

	slog.InfoContext(c.Request.Context(), "handling update entry request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"user_id", userID,
		"entry_id", id,
	)

	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.UpdateEntry(c.Request.Context(), app.UpdateEntryInput{
		UserID: userID,
		ID:     id,
		Entry:  toEntryInput(req),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "entry updated successfully",
		"user_id", userID,
		"entry_id", output.ID,
	)
	c.JSON(http.StatusOK, FromDTO(output))
}

func (h *TimetableHandler) DeleteEntry(c *gin.Context) {
	userID := c.Param("user_id")
	id := c.Param("id")

	slog.InfoContext(c.Request.Context(), "handling delete entry request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"user_id", userID,
		"entry_id", id,
	)

	err := h.useCase.DeleteEntry(c.Request.Context(), app.DeleteEntryInput{
		UserID: userID,
		ID:     id,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "entry deleted successfully",
		"user_id", userID,
		"entry_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *TimetableHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/courses/resolve", h.ResolveCourses)

	users := router.Group("/users/:user_id")
	{
		users.POST("/courses", h.RegisterCourses)
		users.GET("/entries", h.ListEntries)
		users.GET("/entries/today", h.ListTodayEntries)
		users.POST("/entries", h.CreateEntry)
		users.PUT("/entries/:id", h.UpdateEntry)
		users.DELETE("/entries/:id", h.DeleteEntry)
	}
}
