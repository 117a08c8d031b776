// Package app wires configuration, storage and services together. Every
// surface (bot, HTTP API, CLI) is built on one App.
package app

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"study-planner/internal/config"
	"study-planner/internal/planner"
	"study-planner/internal/repository"
	"study-planner/internal/service"
)

type App struct {
	Config   config.Config
	DB       *gorm.DB
	Calendar planner.Calendar

	Entries     *repository.EntryRepository
	Store       *service.Store
	Tasks       *service.TaskService
	Courses     *service.CourseService
	Completions *service.CompletionService
	Routines    *service.RoutineService
	StudyBlocks *service.StudyBlockService
	Syllabus    *service.SyllabusService
	Schedule    *service.ScheduleService
	Reminders   *service.ReminderService
}

// New opens the database, loads state and builds all services.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	calendar, err := planner.LoadCalendar(cfg.CalendarFile)
	if err != nil {
		return nil, fmt.Errorf("calendar: %w", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}

	entries := repository.NewEntryRepository(db)
	store := service.NewStore(repository.NewStateRepository(entries), service.NewID)
	if err := store.Load(ctx); err != nil {
		closeDB(db)
		return nil, err
	}

	tasks := service.NewTaskService(store, service.NewID)
	a := &App{
		Config:      cfg,
		DB:          db,
		Calendar:    calendar,
		Entries:     entries,
		Store:       store,
		Tasks:       tasks,
		Courses:     service.NewCourseService(store, calendar, service.NewID),
		Completions: service.NewCompletionService(store),
		Routines:    service.NewRoutineService(store),
		StudyBlocks: service.NewStudyBlockService(store, service.NewID),
		Syllabus:    service.NewSyllabusService(planner.NewExtractor(calendar.FallbackYear, service.NewID), tasks),
		Schedule:    service.NewScheduleService(store, calendar.Semester, cfg.Location),
		Reminders:   service.NewReminderService(store, entries, cfg.ReminderInterval, cfg.Location),
	}
	return a, nil
}

// Close releases the database connection.
func (a *App) Close() error {
	return closeDB(a.DB)
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
