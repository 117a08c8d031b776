package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"study-planner/internal/app"
	"study-planner/internal/model"
	"study-planner/internal/service"
)

// Handler serves the planner over JSON.
type Handler struct {
	app *app.App
}

// NewHandler creates a new Handler
func NewHandler(a *app.App) *Handler {
	return &Handler{app: a}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Name        string `json:"name" binding:"required"`
	DueDate     string `json:"dueDate" binding:"required"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Course      string `json:"course"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
}

type ToggleRequest struct {
	ItemID string `json:"itemId" binding:"required"`
	Date   string `json:"date" binding:"required"`
}

type WakeRequest struct {
	WakeTime string `json:"wakeTime"`
}

type WorkoutRequest struct {
	Days []string `json:"days"`
	Time string   `json:"time"`
}

type TennisRequest struct {
	Enabled *bool  `json:"enabled"`
	Day     string `json:"day"`
	Time    string `json:"time"`
}

type NotificationsRequest struct {
	Enabled         bool `json:"enabled"`
	ReminderMinutes int  `json:"reminderMinutes"`
}

type StudyBlockRequest struct {
	Course    string   `json:"course" binding:"required"`
	Days      []string `json:"days"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
}

type ExtractRequest struct {
	Course string `json:"course"`
	Text   string `json:"text"`
}

type ConfirmRequest struct {
	Tasks []model.Task `json:"tasks"`
}

// respondError maps service errors onto status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotificationsUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GetDay returns the display-ordered items of a date
// GET /api/days/:date
func (h *Handler) GetDay(c *gin.Context) {
	date, err := h.app.Schedule.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.app.Schedule.Day(date))
}

// GetWeek returns the week containing a date
// GET /api/weeks/:date
func (h *Handler) GetWeek(c *gin.Context) {
	date, err := h.app.Schedule.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": h.app.Schedule.Week(date)})
}

// GET /api/dashboard
func (h *Handler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.Schedule.Dashboard(h.app.Schedule.Today()))
}

// GET /api/briefing
func (h *Handler) GetBriefing(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.Schedule.Briefing(h.app.Schedule.Today()))
}

// GetUpcoming lists open deadlines
// GET /api/upcoming?type=quiz
func (h *Handler) GetUpcoming(c *gin.Context) {
	filter := model.TaskType(strings.ToLower(c.Query("type")))
	if filter == "all" {
		filter = ""
	}
	if filter != "" && !filter.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown task type"})
		return
	}
	tasks := h.app.Schedule.Upcoming(h.app.Schedule.Today(), filter)
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "total": len(tasks)})
}

// GET /api/tasks
func (h *Handler) GetTasks(c *gin.Context) {
	tasks := h.app.Tasks.ListTasks()
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "total": len(tasks)})
}

// CreateTask creates a new task manually
// POST /api/tasks
func (h *Handler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.app.Tasks.CreateTask(c.Request.Context(), service.TaskInput{
		Name:        req.Name,
		DueDate:     req.DueDate,
		Time:        req.Time,
		Type:        model.TaskType(strings.ToLower(req.Type)),
		Course:      req.Course,
		Priority:    req.Priority,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// DeleteTask deletes a task and its completion records
// DELETE /api/tasks/:id
func (h *Handler) DeleteTask(c *gin.Context) {
	if _, err := h.app.Tasks.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// ToggleCompletion flips one occurrence
// POST /api/completions/toggle
func (h *Handler) ToggleCompletion(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	done, err := h.app.Completions.Toggle(c.Request.Context(), req.ItemID, req.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"itemId": req.ItemID, "date": req.Date, "completed": done})
}

// GET /api/routine
func (h *Handler) GetRoutine(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.Routines.Routine())
}

// PUT /api/routine/wake
func (h *Handler) UpdateWake(c *gin.Context) {
	var req WakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondRoutine(c)(h.app.Routines.SetWakeTime(c.Request.Context(), req.WakeTime))
}

// PUT /api/routine/workout
func (h *Handler) UpdateWorkout(c *gin.Context) {
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondRoutine(c)(h.app.Routines.SetWorkout(c.Request.Context(), req.Days, req.Time))
}

// PUT /api/routine/tennis
func (h *Handler) UpdateTennis(c *gin.Context) {
	var req TennisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Enabled != nil && !*req.Enabled {
		h.respondRoutine(c)(h.app.Routines.DisableTennis(c.Request.Context()))
		return
	}
	h.respondRoutine(c)(h.app.Routines.SetTennis(c.Request.Context(), req.Day, req.Time))
}

// PUT /api/routine/notifications
func (h *Handler) UpdateNotifications(c *gin.Context) {
	var req NotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondRoutine(c)(h.app.Routines.SetNotifications(c.Request.Context(), req.Enabled, req.ReminderMinutes))
}

func (h *Handler) respondRoutine(c *gin.Context) func(model.Routine, error) {
	return func(r model.Routine, err error) {
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

// GET /api/study-blocks
func (h *Handler) GetStudyBlocks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"blocks": h.app.StudyBlocks.ListBlocks()})
}

// POST /api/study-blocks
func (h *Handler) CreateStudyBlock(c *gin.Context) {
	var req StudyBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	block, err := h.app.StudyBlocks.AddBlock(c.Request.Context(), service.StudyBlockInput{
		Course:    req.Course,
		Days:      req.Days,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, block)
}

// DELETE /api/study-blocks/:id
func (h *Handler) DeleteStudyBlock(c *gin.Context) {
	if _, err := h.app.StudyBlocks.DeleteBlock(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Study block removed"})
}

// ExtractSyllabus stages candidates without saving them
// POST /api/syllabus/extract
func (h *Handler) ExtractSyllabus(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	candidates, err := h.app.Syllabus.Extract(req.Course, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": candidates, "total": len(candidates)})
}

// ConfirmSyllabus commits a staged batch
// POST /api/syllabus/confirm
func (h *Handler) ConfirmSyllabus(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	added, err := h.app.Syllabus.Confirm(c.Request.Context(), req.Tasks)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tasks": added, "total": len(added)})
}

// GET /api/courses
func (h *Handler) GetCourses(c *gin.Context) {
	courses := h.app.Courses.Courses()
	out := make([]gin.H, 0, len(courses))
	for _, course := range courses {
		out = append(out, gin.H{"code": course.Code, "course": course.Course, "items": len(course.Items)})
	}
	c.JSON(http.StatusOK, gin.H{"courses": out})
}

// POST /api/courses/:code/load
func (h *Handler) LoadCourse(c *gin.Context) {
	course, n, err := h.app.Courses.LoadCourse(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": course.Code, "course": course.Course, "loaded": n})
}

// POST /api/notifications/test
func (h *Handler) TestNotification(c *gin.Context) {
	if err := h.app.Reminders.SendTest(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification sent"})
}
