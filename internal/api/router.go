package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every planner endpoint under /api.
func SetupRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.GET("/days/:date", h.GetDay)
		api.GET("/weeks/:date", h.GetWeek)
		api.GET("/dashboard", h.GetDashboard)
		api.GET("/briefing", h.GetBriefing)
		api.GET("/upcoming", h.GetUpcoming)

		tasks := api.Group("/tasks")
		{
			tasks.GET("", h.GetTasks)
			tasks.POST("", h.CreateTask)
			tasks.DELETE("/:id", h.DeleteTask)
		}

		api.POST("/completions/toggle", h.ToggleCompletion)

		routine := api.Group("/routine")
		{
			routine.GET("", h.GetRoutine)
			routine.PUT("/wake", h.UpdateWake)
			routine.PUT("/workout", h.UpdateWorkout)
			routine.PUT("/tennis", h.UpdateTennis)
			routine.PUT("/notifications", h.UpdateNotifications)
		}

		blocks := api.Group("/study-blocks")
		{
			blocks.GET("", h.GetStudyBlocks)
			blocks.POST("", h.CreateStudyBlock)
			blocks.DELETE("/:id", h.DeleteStudyBlock)
		}

		syllabus := api.Group("/syllabus")
		{
			syllabus.POST("/extract", h.ExtractSyllabus)
			syllabus.POST("/confirm", h.ConfirmSyllabus)
		}

		api.GET("/courses", h.GetCourses)
		api.POST("/courses/:code/load", h.LoadCourse)
		api.POST("/notifications/test", h.TestNotification)
	}
}

// NewEngine builds a gin engine with all routes.
func NewEngine(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	SetupRoutes(r, h)
	return r
}

// Serve runs the HTTP server until ctx is cancelled.
func Serve(ctx context.Context, addr string, h *Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewEngine(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[info] http api listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
