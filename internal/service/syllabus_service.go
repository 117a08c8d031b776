package service

import (
	"context"
	"fmt"
	"strings"

	"study-planner/internal/model"
	"study-planner/internal/planner"
)

// SyllabusService extracts candidate tasks and commits confirmed batches.
type SyllabusService struct {
	extractor *planner.Extractor
	tasks     *TaskService
}

func NewSyllabusService(extractor *planner.Extractor, tasks *TaskService) *SyllabusService {
	return &SyllabusService{extractor: extractor, tasks: tasks}
}

// Extract returns staged candidates. An empty result is not an error.
func (s *SyllabusService) Extract(course, text string) ([]model.Task, error) {
	course = strings.TrimSpace(course)
	text = strings.TrimSpace(text)
	if course == "" {
		return nil, fmt.Errorf("%w: course name is required", ErrInvalidInput)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: syllabus text is required", ErrInvalidInput)
	}
	return s.extractor.Extract(text, course), nil
}

// Confirm adds the staged candidates to the task collection.
func (s *SyllabusService) Confirm(ctx context.Context, candidates []model.Task) ([]model.Task, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: nothing to confirm", ErrInvalidInput)
	}
	return s.tasks.AddTasks(ctx, candidates)
}
